package mock

import (
	"context"

	"github.com/fwojciec/clinicscrape"
)

var _ clinicscrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of clinicscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ clinicscrape.Throttle = (*Throttle)(nil)

// Throttle is a mock implementation of clinicscrape.Throttle.
type Throttle struct {
	WaitFn func(ctx context.Context) error
}

func (t *Throttle) Wait(ctx context.Context) error {
	return t.WaitFn(ctx)
}
