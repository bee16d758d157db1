package domain

import "time"

// Order is created exactly once per successful checkout and is read-only
// to the client afterwards. Status transitions are server-driven
// fulfillment states.
type Order struct {
	ID           string       `json:"orderId"`
	OrderNumber  string       `json:"orderNumber"`
	Status       string       `json:"status"`
	GuestContact GuestContact `json:"guestContact"`
	Lines        []OrderLine  `json:"lines"`
	Totals       OrderTotals  `json:"totals"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type OrderLine struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Quantity  int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

type OrderTotals struct {
	Items int     `json:"items"`
	Grand float64 `json:"grand"`
}

type CreateOrderRequest struct {
	PaymentID string `json:"paymentId"`
	CartID    string `json:"cartId"`
}
