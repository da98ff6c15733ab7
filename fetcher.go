package clinicscrape

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the page body decoded to UTF-8.
	// A non-2xx status is an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any held resources.
	Close() error
}
