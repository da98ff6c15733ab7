package clinicscrape

import "context"

// Throttle spaces out successive top-level page fetches.
type Throttle interface {
	// Wait blocks until the next fetch is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
