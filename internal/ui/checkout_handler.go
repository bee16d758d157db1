package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
)

// CheckoutRunner is the orchestrator's single entry point.
type CheckoutRunner interface {
	Run(ctx context.Context, cartID string, contact domain.GuestContact) (string, error)
}

type CheckoutHandler struct {
	runner  CheckoutRunner
	cart    CartService
	timeout time.Duration
}

func NewCheckoutHandler(runner CheckoutRunner, cart CartService, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		runner:  runner,
		cart:    cart,
		timeout: timeout,
	}
}

type CheckoutResponseDTO struct {
	OrderID  string `json:"orderId"`
	Location string `json:"location"`
}

// Submit runs the whole pipeline and answers with where to find the new
// order. A failed run requires the shopper to resubmit; there are no
// stage-level retries.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	orderID, err := h.runner.Run(ctx, h.cart.CartID(), req.GuestContact)
	if err != nil {
		respondCoreError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		OrderID:  orderID,
		Location: "/orders/" + orderID,
	})
}
