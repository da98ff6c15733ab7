package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/clinicscrape"
	"golang.org/x/time/rate"
)

var _ clinicscrape.Throttle = (*Throttle)(nil)

// Throttle enforces a fixed minimum delay between successive page fetches.
// The first Wait returns immediately and each later Wait returns at least
// one delay after the previous one. It is safe for concurrent use.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a Throttle allowing one fetch per delay.
// A delay of zero or less disables throttling.
func NewThrottle(delay time.Duration) *Throttle {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Throttle{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the next fetch is allowed.
// Returns an error if the context is canceled before the wait completes.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
