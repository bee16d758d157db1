package domain

import "strings"

// GuestContact is the identity + shipping address collected at checkout.
// All seven leaf fields are mandatory; the backend does any deeper
// validation.
type GuestContact struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

type Address struct {
	Line1    string `json:"line1"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// Complete reports whether every required field is non-empty after trimming.
func (c GuestContact) Complete() bool {
	fields := []string{
		c.Name,
		c.Email,
		c.Phone,
		c.Address.Line1,
		c.Address.City,
		c.Address.Postcode,
		c.Address.Country,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}

type CheckoutRequest struct {
	GuestContact GuestContact `json:"guestContact"`
}
