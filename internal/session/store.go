// Package session owns the durable, single-slot cart identifier for one
// shopping session. Absence of the slot means "no active cart".
package session

import (
	"context"
	"errors"
)

// Store persists the current cart identifier across restarts.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, id string) error
	Delete(ctx context.Context) error
}

var ErrNoCartID = errors.New("no cart id stored")
