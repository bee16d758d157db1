package ui

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/fjod/go_storefront/internal/api"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/go-chi/chi/v5"
)

type ProductAPI interface {
	Products(ctx context.Context, filters api.Filters) ([]domain.ProductSlim, error)
	ProductBySKU(ctx context.Context, sku string) (*domain.ProductFull, error)
}

type ProductHandler struct {
	products ProductAPI
	timeout  time.Duration
}

func NewProductHandler(products ProductAPI, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		products: products,
		timeout:  timeout,
	}
}

// List is a pass-through: the backend does the actual filtering.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	filters := api.Filters{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}
	if v, ok := parseFloatParam(r, "minPrice"); ok {
		filters.MinPrice = &v
	}
	if v, ok := parseFloatParam(r, "maxPrice"); ok {
		filters.MaxPrice = &v
	}
	if v, ok := parseIntParam(r, "page"); ok {
		filters.Page = &v
	}
	if v, ok := parseIntParam(r, "pageSize"); ok {
		filters.PageSize = &v
	}

	products, err := h.products.Products(ctx, filters)
	if err != nil {
		respondCoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sku := chi.URLParam(r, "sku")
	if sku == "" {
		respondError(w, http.StatusBadRequest, "invalid_sku", "sku is required")
		return
	}

	product, err := h.products.ProductBySKU(ctx, sku)
	if err != nil {
		respondCoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func parseFloatParam(r *http.Request, name string) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseIntParam(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
