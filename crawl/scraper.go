// Package crawl assembles clinic records from fetched pages.
// It coordinates fetching, address resolution, contact page following and
// listing extraction for single pages and batches.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/clinicscrape"
	"github.com/fwojciec/clinicscrape/bloom"
)

// Scraper builds clinic records.
type Scraper struct {
	Fetcher  clinicscrape.Fetcher
	Resolver clinicscrape.AddressResolver
	Listings clinicscrape.ListingExtractor

	// Contacts follows contact pages when the page itself has no
	// validated address. Optional.
	Contacts *ContactFollower

	// Throttle spaces out top-level pages in ScrapeAll. Optional.
	Throttle clinicscrape.Throttle

	// RetryDelays are the backoff delays for the page fetch. Nil disables
	// retries.
	RetryDelays []time.Duration
	Logger      *slog.Logger

	// Now returns the scrape time. Defaults to time.Now.
	Now func() time.Time
}

// Progress reports the outcome of one page in ScrapeAll.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Record    *clinicscrape.ClinicRecord
	Error     error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(p Progress)

// Scrape fetches url and assembles its record.
// Failure to fetch or parse the page itself is an error; failures on
// contact pages are not.
func (s *Scraper) Scrape(ctx context.Context, url string) (*clinicscrape.ClinicRecord, error) {
	html, err := FetchWithRetry(ctx, s.Fetcher, url, s.RetryDelays, s.Logger)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	candidate, err := s.Resolver.ResolveHTML(html, url)
	if err != nil {
		return nil, fmt.Errorf("resolve address %s: %w", url, err)
	}

	listing, err := s.Listings.ExtractListing(html, url)
	if err != nil {
		return nil, fmt.Errorf("extract listing %s: %w", url, err)
	}

	if candidate.IsLowConfidence() && s.Contacts != nil {
		c, err := s.Contacts.ResolveViaLinks(ctx, html, url)
		switch {
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case err != nil:
			s.logger().Warn("contact pages skipped", "url", url, "err", err)
		case c != nil && (candidate == nil || !c.IsLowConfidence()):
			candidate = c
		}
	}

	record := &clinicscrape.ClinicRecord{
		Name:        listing.Name,
		Phone:       listing.Phone,
		Services:    listing.Services,
		Description: listing.Description,
		URL:         url,
		ScrapedAt:   s.now(),
	}
	record.SetAddress(candidate)

	return record, nil
}

// ScrapeAll scrapes urls one at a time, skipping duplicates, and returns
// records in input order. A page that fails is reported through progress
// and skipped. If ctx is canceled, the records collected so far are
// returned with the context error.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress ProgressFunc) ([]*clinicscrape.ClinicRecord, error) {
	urls = bloom.Unique(urls)
	total := len(urls)
	logger := s.logger()

	records := make([]*clinicscrape.ClinicRecord, 0, total)
	for i, url := range urls {
		// Throttle hands out its first slot immediately, so every page
		// waits and consecutive page starts are at least one delay apart.
		if s.Throttle != nil {
			if err := s.Throttle.Wait(ctx); err != nil {
				return records, err
			}
		}
		if err := ctx.Err(); err != nil {
			return records, err
		}

		record, err := s.Scrape(ctx, url)
		if err != nil && ctx.Err() != nil {
			return records, ctx.Err()
		}

		if err != nil {
			logger.Warn("page skipped", "url", url, "err", err)
		} else {
			records = append(records, record)
			if record.Address == "" {
				logger.Info("no address found", "url", url, "name", record.Name)
			}
		}

		if progress != nil {
			progress(Progress{
				URL:       url,
				Completed: i + 1,
				Total:     total,
				Record:    record,
				Error:     err,
			})
		}
	}

	return records, nil
}

func (s *Scraper) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
