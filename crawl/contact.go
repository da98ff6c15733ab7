package crawl

import (
	"context"
	"log/slog"

	"github.com/fwojciec/clinicscrape"
)

// DefaultMaxContactPages bounds how many contact pages are fetched per
// clinic page.
const DefaultMaxContactPages = 2

// ContactFollower looks for an address on a page's contact and location
// pages. Pages are fetched one at a time, never concurrently.
type ContactFollower struct {
	Fetcher  clinicscrape.Fetcher
	Resolver clinicscrape.AddressResolver
	Selector clinicscrape.LinkSelector
	MaxPages int
	Logger   *slog.Logger
}

// ResolveViaLinks resolves the address of the first candidate page that has
// one. Fetch and parse failures on a candidate are logged and the next
// candidate is tried. A validated address is preferred over a
// low-confidence one from an earlier page. Returns nil when no candidate
// yields an address.
func (f *ContactFollower) ResolveViaLinks(ctx context.Context, html, baseURL string) (*clinicscrape.AddressCandidate, error) {
	links, err := f.Selector.ExtractLinks(html, baseURL)
	if err != nil {
		return nil, err
	}

	maxPages := f.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxContactPages
	}
	if len(links) > maxPages {
		links = links[:maxPages]
	}

	logger := f.logger()
	var fallback *clinicscrape.AddressCandidate
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return fallback, err
		}

		logger.Debug("trying contact page", "url", link.URL, "from", baseURL)

		page, err := f.Fetcher.Fetch(ctx, link.URL)
		if err != nil {
			logger.Warn("contact page fetch failed", "url", link.URL, "err", err)
			continue
		}

		c, err := f.Resolver.ResolveHTML(page, link.URL)
		if err != nil {
			logger.Warn("contact page parse failed", "url", link.URL, "err", err)
			continue
		}
		if c == nil {
			continue
		}
		if !c.IsLowConfidence() {
			return c, nil
		}
		if fallback == nil {
			fallback = c
		}
	}

	return fallback, nil
}

func (f *ContactFollower) logger() *slog.Logger {
	if f.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return f.Logger
}
