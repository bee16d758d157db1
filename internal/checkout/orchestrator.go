// Package checkout drives the five-stage checkout pipeline:
// open-checkout -> submit-contact -> start-payment -> poll-payment ->
// create-order. Stages run strictly in order; any failure aborts the
// rest and surfaces one human-readable message.
package checkout

import (
	"context"
	"log"
	"strings"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/notify"
)

// StoreAPI is the slice of the backend client the pipeline needs.
type StoreAPI interface {
	OpenCheckout(ctx context.Context, cartID string) (string, error)
	SubmitContact(ctx context.Context, cartID string, contact domain.GuestContact) (string, error)
	StartPayment(ctx context.Context, cartID string, amount float64) (string, error)
	CreateOrder(ctx context.Context, paymentID, cartID string) (string, error)
}

// CartState exposes the synchronizer's last loaded projection. The grand
// total passed to StartPayment comes from here, never from a local sum.
type CartState interface {
	Current() *domain.Cart
	GrandTotal() float64
}

type PaymentPoller interface {
	Poll(ctx context.Context, paymentID string) error
}

// EventSink receives a fire-and-forget notification after order
// creation; implementations must not block the pipeline result.
type EventSink interface {
	OrderCreated(ctx context.Context, orderID, cartID string)
}

type Orchestrator struct {
	api      StoreAPI
	cart     CartState
	notifier notify.Notifier
	poller   PaymentPoller
	events   EventSink // optional
}

func NewOrchestrator(api StoreAPI, cart CartState, notifier notify.Notifier, poller PaymentPoller) *Orchestrator {
	return &Orchestrator{
		api:      api,
		cart:     cart,
		notifier: notifier,
		poller:   poller,
	}
}

// WithEvents attaches an optional sink for order-created events.
func (o *Orchestrator) WithEvents(events EventSink) *Orchestrator {
	o.events = events
	return o
}

// Run executes the pipeline for the given cart and returns the new order
// id. Preconditions are checked before any network call: a cart id, a
// cart with at least one line, and a complete guest contact.
func (o *Orchestrator) Run(ctx context.Context, cartID string, contact domain.GuestContact) (string, error) {
	if err := o.checkPreconditions(cartID, contact); err != nil {
		o.notifier.Error("Please fill in all required fields")
		return "", err
	}

	// Stage 1: mark the cart as entering checkout. The ack id is not
	// used further.
	if _, err := o.api.OpenCheckout(ctx, cartID); err != nil {
		return "", o.fail(err)
	}

	// Stage 2: attach the guest contact to the cart.
	if _, err := o.api.SubmitContact(ctx, cartID, contact); err != nil {
		return "", o.fail(err)
	}

	// Stage 3: initiate payment for the server-computed grand total.
	paymentID, err := o.api.StartPayment(ctx, cartID, o.cart.GrandTotal())
	if err != nil {
		return "", o.fail(err)
	}

	// Stage 4: block until the payment settles or the budget runs out.
	o.notifier.Loading("Processing payment...")
	if e2 := o.poller.Poll(ctx, paymentID); e2 != nil {
		return "", o.fail(e2)
	}
	o.notifier.Success("Payment successful!")

	// Stage 5: create the order, the pipeline's terminal artifact.
	orderID, err := o.api.CreateOrder(ctx, paymentID, cartID)
	if err != nil {
		return "", o.fail(err)
	}

	if o.events != nil {
		o.events.OrderCreated(ctx, orderID, cartID)
	}
	return orderID, nil
}

func (o *Orchestrator) checkPreconditions(cartID string, contact domain.GuestContact) error {
	if strings.TrimSpace(cartID) == "" {
		return ErrNoCart
	}
	current := o.cart.Current()
	if current == nil || len(current.Lines) == 0 {
		return ErrEmptyCart
	}
	if !contact.Complete() {
		return ErrIncompleteContact
	}
	return nil
}

// fail surfaces one message for the whole pipeline, to the notifier and
// the returned error alike. No stage is retried.
func (o *Orchestrator) fail(err error) error {
	msg := "checkout failed"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	log.Printf("checkout failed: %v", err)
	o.notifier.Error(msg)
	return err
}
