package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CartService is the synchronizer surface the renderer needs.
type CartService interface {
	EnsureCart(ctx context.Context) (string, error)
	AddLine(ctx context.Context, sku string, qty int) error
	SetLineQuantity(ctx context.Context, sku string, qty int) error
	Current() *domain.Cart
	CartID() string
}

type CartHandler struct {
	cart    CartService
	timeout time.Duration
}

func NewCartHandler(cart CartService, timeout time.Duration) *CartHandler {
	return &CartHandler{
		cart:    cart,
		timeout: timeout,
	}
}

type AddLineRequestDTO struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"qty"`
}

type UpdateLineRequestDTO struct {
	Quantity *int `json:"qty"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if _, err := h.cart.EnsureCart(ctx); err != nil {
		respondCoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.cart.Current())
}

func (h *CartHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddLineRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.SKU == "" {
		respondError(w, http.StatusBadRequest, "invalid_sku", "sku is required")
		return
	}
	if req.Quantity <= 0 {
		// The form defaults to one; zero only makes sense for updates.
		req.Quantity = 1
	}

	if err := h.cart.AddLine(ctx, req.SKU, req.Quantity); err != nil {
		respondCoreError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, h.cart.Current())
}

func (h *CartHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sku := chi.URLParam(r, "sku")
	if sku == "" {
		respondError(w, http.StatusBadRequest, "invalid_sku", "sku is required")
		return
	}

	var req UpdateLineRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity == nil || *req.Quantity < 0 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "qty must be zero or positive")
		return
	}

	if err := h.cart.SetLineQuantity(ctx, sku, *req.Quantity); err != nil {
		respondCoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.cart.Current())
}
