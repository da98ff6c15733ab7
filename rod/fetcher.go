// Package rod fetches script-rendered clinic pages through headless Chrome.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/clinicscrape"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds navigation and load for one page.
const DefaultFetchTimeout = 10 * time.Second

// acceptLanguage matches the HTTP fetcher so both render the Korean site.
const acceptLanguage = "ko-KR,ko;q=0.9,en;q=0.8"

// Ensure Fetcher implements clinicscrape.Fetcher at compile time.
var _ clinicscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML. It is safe for concurrent use.
type Fetcher struct {
	manager     *BrowserManager
	managerOpts []ManagerOption
	timeout     time.Duration
	userAgent   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser user agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithManagerOptions configures the underlying BrowserManager.
func WithManagerOptions(opts ...ManagerOption) Option {
	return func(f *Fetcher) {
		f.managerOpts = append(f.managerOpts, opts...)
	}
}

// NewFetcher launches a headless browser. Close must be called when the
// Fetcher is no longer needed.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	m, err := NewBrowserManager(f.managerOpts...)
	if err != nil {
		return nil, err
	}
	f.manager = m
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, release, err := f.manager.Acquire()
	if err != nil {
		return "", err
	}
	defer release()

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent:      f.userAgent,
			AcceptLanguage: acceptLanguage,
		}); err != nil {
			return "", ctxErr(ctx, err)
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", ctxErr(ctx, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", ctxErr(ctx, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", ctxErr(ctx, err)
	}
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// ctxErr prefers the context error so callers can match deadlines.
func ctxErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
