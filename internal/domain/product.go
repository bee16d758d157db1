package domain

// ProductSlim is the listing-page projection of a product.
type ProductSlim struct {
	SKU               string  `json:"sku"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	Category          string  `json:"category"`
	QuantityAvailable int     `json:"quantityAvailable"`
}

// ProductFull is the detail-page projection.
type ProductFull struct {
	SKU               string                            `json:"sku"`
	Name              string                            `json:"name"`
	Price             float64                           `json:"price"`
	Category          string                            `json:"category"`
	QuantityAvailable int                               `json:"quantityAvailable"`
	Description       string                            `json:"description"`
	WarehouseID       string                            `json:"warehouseId"`
	Media             []string                          `json:"media"`
	Bundles           []map[string]interface{}          `json:"bundles"`
	Variants          []map[string]interface{}          `json:"variants"`
	Events            []interface{}                     `json:"events"`
	Attributes        map[string]interface{}            `json:"attributes"`
	Compliance        map[string]interface{}            `json:"compliance"`
	Inventory         map[string]interface{}            `json:"inventory"`
	Options           map[string]interface{}            `json:"options"`
	Relationships     map[string]interface{}            `json:"relationships"`
	Localizations     map[string]Localization           `json:"localizations"`
}

type Localization struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
