package domain

import "time"

const (
	// PaymentStatusPaid is the only status the client treats as terminal
	// success. Everything else counts as still pending.
	PaymentStatusPaid = "PAID"

	// PaymentStatusInitiated is the status a new payment is created with.
	PaymentStatusInitiated = "INITIATED"

	// DefaultProvider tags payment requests; the provider itself is a
	// black box to this client.
	DefaultProvider = "DUMMY"
)

type Payment struct {
	ID        string    `json:"paymentId"`
	CartID    string    `json:"cartId"`
	Amount    float64   `json:"amount"`
	Provider  string    `json:"provider"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type StartPaymentRequest struct {
	CartID   string  `json:"cartId"`
	Amount   float64 `json:"amount"`
	Provider string  `json:"provider"`
	Status   string  `json:"status"`
}
