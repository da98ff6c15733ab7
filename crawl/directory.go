package crawl

import (
	"context"
	"log/slog"

	"github.com/fwojciec/clinicscrape"
	"github.com/fwojciec/clinicscrape/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultDirectoryConcurrency bounds parallel directory page fetches.
const DefaultDirectoryConcurrency = 3

// Directory discovers clinic URLs from directory listing pages.
type Directory struct {
	Fetcher     clinicscrape.Fetcher
	Selector    clinicscrape.LinkSelector
	Concurrency int
	Logger      *slog.Logger
}

// Discover fetches each directory page and returns the clinic URLs found,
// deduplicated, in directory order then document order. A directory page
// that fails to fetch or parse is logged and skipped.
func (d *Directory) Discover(ctx context.Context, directoryURLs []string) ([]string, error) {
	directoryURLs = bloom.Unique(directoryURLs)

	concurrency := d.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultDirectoryConcurrency
	}

	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Each goroutine writes only its own slot.
	found := make([][]clinicscrape.DiscoveredLink, len(directoryURLs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, u := range directoryURLs {
		g.Go(func() error {
			html, err := d.Fetcher.Fetch(gctx, u)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				logger.Warn("directory fetch failed", "url", u, "err", err)
				return nil
			}

			links, err := d.Selector.ExtractLinks(html, u)
			if err != nil {
				logger.Warn("directory parse failed", "url", u, "err", err)
				return nil
			}
			found[i] = links
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var urls []string
	for _, links := range found {
		for _, link := range links {
			urls = append(urls, link.URL)
		}
	}
	return bloom.Unique(urls), nil
}
