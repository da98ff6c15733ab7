// Package slog provides logging decorators for clinicscrape services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clinicscrape"
)

// Ensure LoggingFetcher implements clinicscrape.Fetcher.
var _ clinicscrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   clinicscrape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next clinicscrape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the page size and
// latency. err is only attached for failed fetches.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "bytes", len(html), "duration", time.Since(begin)}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
