// Package cart keeps the client-side cart projection in sync with the
// backend. The backend owns lines and totals; after every mutation the
// full cart is reloaded before anything is displayed.
package cart

import (
	"context"
	"log"
	"sync"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/notify"
)

type CartAPI interface {
	Cart(ctx context.Context, id string) (*domain.Cart, error)
	AddLine(ctx context.Context, cartID, sku string, qty int) (string, error)
	UpdateLine(ctx context.Context, cartID, sku string, qty int) (string, error)
}

type IdentityStore interface {
	Resolve(ctx context.Context) (string, *domain.Cart, error)
	Current() string
	Clear(ctx context.Context) error
}

type Synchronizer struct {
	api      CartAPI
	identity IdentityStore
	notifier notify.Notifier

	// mu serializes mutations across mutate+reload, so back-to-back
	// updates apply in order and totals always belong to the last one.
	mu   sync.Mutex
	cart *domain.Cart
}

func NewSynchronizer(api CartAPI, identity IdentityStore, notifier notify.Notifier) *Synchronizer {
	return &Synchronizer{
		api:      api,
		identity: identity,
		notifier: notifier,
	}
}

// Load fetches the authoritative cart state. A failure means callers
// must treat the id as potentially invalid.
func (s *Synchronizer) Load(ctx context.Context, id string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reload(ctx, id)
}

// EnsureCart resolves the session's cart id and warms the projection.
// When Resolve already validated the id with a load, that projection is
// adopted instead of fetching the same cart a second time.
func (s *Synchronizer) EnsureCart(ctx context.Context) (string, error) {
	id, loaded, err := s.identity.Resolve(ctx)
	if err != nil {
		log.Printf("failed to create cart: %v", err)
		s.notifier.Error("Failed to create cart")
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if loaded != nil {
		s.cart = loaded
		return id, nil
	}
	if _, e2 := s.reload(ctx, id); e2 != nil {
		return "", e2
	}
	return id, nil
}

func (s *Synchronizer) AddLine(ctx context.Context, sku string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.identity.Current()
	if id == "" {
		resolved, _, err := s.identity.Resolve(ctx)
		if err != nil {
			log.Printf("failed to create cart: %v", err)
			s.notifier.Error("Failed to create cart")
			return err
		}
		id = resolved
	}

	if _, err := s.api.AddLine(ctx, id, sku, qty); err != nil {
		log.Printf("failed to add to cart: %v", err)
		s.notifier.Error("Failed to add to cart")
		return err
	}

	// Never trust the mutation response for totals.
	if _, err := s.reload(ctx, id); err != nil {
		return err
	}

	s.notifier.Success("Added to cart")
	return nil
}

// SetLineQuantity updates one line; qty 0 removes it. Without a known
// cart id this is a no-op.
func (s *Synchronizer) SetLineQuantity(ctx context.Context, sku string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.identity.Current()
	if id == "" {
		return nil
	}

	if _, err := s.api.UpdateLine(ctx, id, sku, qty); err != nil {
		log.Printf("failed to update cart: %v", err)
		s.notifier.Error("Failed to update cart")
		return err
	}

	if _, err := s.reload(ctx, id); err != nil {
		return err
	}

	if qty == 0 {
		s.notifier.Success("Item removed from cart")
	} else {
		s.notifier.Success("Cart updated")
	}
	return nil
}

// Current returns the last loaded projection; nil when nothing loaded.
func (s *Synchronizer) Current() *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

func (s *Synchronizer) CartID() string {
	return s.identity.Current()
}

func (s *Synchronizer) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return 0
	}
	return s.cart.TotalItems
}

func (s *Synchronizer) GrandTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return 0
	}
	return s.cart.GrandTotal
}

// Clear drops the projection and the session's cart id. Called once the
// order view confirmed the new order loaded.
func (s *Synchronizer) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
	return s.identity.Clear(ctx)
}

func (s *Synchronizer) reload(ctx context.Context, id string) (*domain.Cart, error) {
	loaded, err := s.api.Cart(ctx, id)
	if err != nil {
		log.Printf("failed to load cart: %v", err)
		s.notifier.Error("Failed to load cart")
		return nil, err
	}
	s.cart = loaded
	return loaded, nil
}
