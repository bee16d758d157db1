package checkout

import (
	"context"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
)

const (
	pollInterval    = time.Second
	pollMaxAttempts = 20
)

type PaymentFetcher interface {
	Payment(ctx context.Context, id string) (*domain.Payment, error)
}

// Poller watches a payment until it settles. The budget is fixed: one
// fetch per attempt, a sleep between attempts, 20 attempts in total.
type Poller struct {
	payments    PaymentFetcher
	interval    time.Duration
	maxAttempts int
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewPoller(payments PaymentFetcher) *Poller {
	return &Poller{
		payments:    payments,
		interval:    pollInterval,
		maxAttempts: pollMaxAttempts,
		sleep:       sleepOrDone,
	}
}

// Poll resolves as soon as a fetch reports the terminal success status.
// A fetch failure is fatal immediately; it is not retried within the
// budget. Exhausting the budget yields ErrPaymentTimeout, which is
// distinct from a remote error so the caller can offer a retry.
func (p *Poller) Poll(ctx context.Context, paymentID string) error {
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		payment, err := p.payments.Payment(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment.Status == domain.PaymentStatusPaid {
			return nil
		}
		if e2 := p.sleep(ctx, p.interval); e2 != nil {
			return e2
		}
	}
	return ErrPaymentTimeout
}
