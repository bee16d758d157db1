package domain

import "time"

// Cart is the server-side cart projection. Totals are computed by the
// backend; the client never derives them from the lines.
type Cart struct {
	ID           string        `json:"cartId"`
	Status       string        `json:"status"`
	Lines        []LineItem    `json:"lines"`
	TotalItems   int           `json:"totalItems"`
	GrandTotal   float64       `json:"grandTotal"`
	GuestContact *GuestContact `json:"guestContact,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// LineItem is one cart line. SKU is the line key, uniqueness is enforced
// by the backend.
type LineItem struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"qty"`
}

type AddLineRequest struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"qty"`
}

// TechnicalIDResponse is the envelope the backend returns from every
// mutating operation.
type TechnicalIDResponse struct {
	TechnicalID string `json:"technicalId"`
}
