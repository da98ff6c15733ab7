// Package http provides an HTTP-based implementation of clinicscrape.Fetcher
// for clinic sites that don't require JavaScript rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/clinicscrape"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout bounds a whole request, body included. It matches
// rod.DefaultFetchTimeout.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is a desktop Chrome user agent. Many clinic sites serve
// an empty page or a block notice to unknown clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 << 20

var _ clinicscrape.Fetcher = (*Fetcher)(nil)

// Fetcher downloads clinic pages with a plain GET, without running scripts.
// Bodies are decoded to UTF-8 using the Content-Type charset or the
// document's meta charset, so EUC-KR pages come back readable.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout overrides DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// NewFetcher returns a Fetcher with its own http.Client.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{timeout: DefaultFetchTimeout, userAgent: DefaultUserAgent}
	for _, o := range opts {
		o(f)
	}
	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// Fetch returns the UTF-8 body of url. Any status outside 2xx is an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", clinicscrape.Errorf(clinicscrape.EINVALID, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	}

	utf8Body, err := charset.NewReader(io.LimitReader(resp.Body, maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", url, err)
	}
	b, err := io.ReadAll(utf8Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(b), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
