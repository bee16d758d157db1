package ui

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the renderer-facing routes onto the core handlers.
func NewRouter(products *ProductHandler, cart *CartHandler, co *CheckoutHandler, orders *OrderHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(RequestIDMiddleware)

	r.Get("/products", products.List)
	r.Get("/products/{sku}", products.Get)

	r.Get("/cart", cart.Get)
	r.Post("/cart/lines", cart.AddLine)
	r.Patch("/cart/lines/{sku}", cart.UpdateLine)

	r.Post("/checkout", co.Submit)

	r.Get("/orders/{id}", orders.Get)

	return r
}
