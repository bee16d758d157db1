package ui

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/go-chi/chi/v5"
)

type OrderAPI interface {
	Order(ctx context.Context, id string) (*domain.Order, error)
}

type SessionCleaner interface {
	Clear(ctx context.Context) error
}

type OrderHandler struct {
	orders  OrderAPI
	session SessionCleaner
	timeout time.Duration
}

func NewOrderHandler(orders OrderAPI, session SessionCleaner, timeout time.Duration) *OrderHandler {
	return &OrderHandler{
		orders:  orders,
		session: session,
		timeout: timeout,
	}
}

// Get loads the order confirmation. The cart session is cleared only
// after the order loaded successfully; a failed load keeps the cart so
// the shopper can retry.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order id is required")
		return
	}

	order, err := h.orders.Order(ctx, id)
	if err != nil {
		respondCoreError(w, err)
		return
	}

	if e2 := h.session.Clear(ctx); e2 != nil {
		log.Printf("failed to clear cart session after order %s: %v", id, e2)
	}

	respondJSON(w, http.StatusOK, order)
}
