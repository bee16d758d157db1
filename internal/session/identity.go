package session

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/fjod/go_storefront/internal/domain"
	"golang.org/x/sync/singleflight"
)

// cartAPI is the slice of the backend client the identity store needs.
type cartAPI interface {
	CreateOrReturnCart(ctx context.Context) (string, error)
	Cart(ctx context.Context, id string) (*domain.Cart, error)
}

// Identity resolves and owns the one cart id of this session. The
// in-memory id and the durable slot are updated together on every path
// so a restart sees the same state.
type Identity struct {
	store Store
	api   cartAPI
	sfg   singleflight.Group // collapses concurrent resolves into one flight

	mu      sync.RWMutex
	current string
}

func NewIdentity(store Store, api cartAPI) *Identity {
	return &Identity{store: store, api: api}
}

// resolution is the singleflight payload: the id plus the projection
// the validating load produced, when there was one.
type resolution struct {
	id   string
	cart *domain.Cart
}

// Resolve returns the session's cart id. A persisted id is validated by
// loading the cart, and that loaded projection is handed back so callers
// do not fetch the same cart again; any remote failure discards the id
// and a fresh one is requested with the backend's create-or-return
// semantic. A freshly minted id carries no projection.
func (i *Identity) Resolve(ctx context.Context) (string, *domain.Cart, error) {
	v, err, _ := i.sfg.Do("cart-id", func() (interface{}, error) {
		id, errGet := i.store.Get(ctx)
		if errGet == nil {
			loaded, errLoad := i.api.Cart(ctx, id)
			if errLoad == nil {
				i.setCurrent(id)
				return resolution{id: id, cart: loaded}, nil
			}
			// Backend no longer recognises the id, start fresh.
			log.Printf("stored cart id %q rejected, discarding: %v", id, errLoad)
			i.discard(ctx)
		} else if !errors.Is(errGet, ErrNoCartID) {
			log.Printf("session store get error: %v", errGet)
		}

		newID, errCreate := i.api.CreateOrReturnCart(ctx)
		if errCreate != nil {
			return resolution{}, errCreate
		}
		if errSet := i.store.Set(ctx, newID); errSet != nil {
			return resolution{}, errSet
		}
		i.setCurrent(newID)
		return resolution{id: newID}, nil
	})
	if err != nil {
		return "", nil, err
	}
	res := v.(resolution)
	return res.id, res.cart, nil
}

// Current returns the resolved id without touching the backend; empty
// when nothing is resolved yet.
func (i *Identity) Current() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.current
}

// Clear drops the persisted id. Called once the order view confirmed the
// new order loaded.
func (i *Identity) Clear(ctx context.Context) error {
	i.mu.Lock()
	i.current = ""
	i.mu.Unlock()
	return i.store.Delete(ctx)
}

func (i *Identity) setCurrent(id string) {
	i.mu.Lock()
	i.current = id
	i.mu.Unlock()
}

func (i *Identity) discard(ctx context.Context) {
	i.mu.Lock()
	i.current = ""
	i.mu.Unlock()
	if err := i.store.Delete(ctx); err != nil {
		log.Printf("session store delete error: %v", err)
	}
}
