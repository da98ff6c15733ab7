package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/clinicscrape"
)

// Ensure LoggingResolver implements clinicscrape.AddressResolver.
var _ clinicscrape.AddressResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps an AddressResolver with debug logging.
type LoggingResolver struct {
	next   clinicscrape.AddressResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next clinicscrape.AddressResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// ResolveHTML delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) ResolveHTML(html, url string) (c *clinicscrape.AddressCandidate, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if c != nil {
			attrs = append(attrs,
				"strategy", string(c.Strategy),
				"confidence", string(c.Confidence),
				"address", c.Text,
			)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		r.logger.Debug("resolve address", attrs...)
	}(time.Now())
	return r.next.ResolveHTML(html, url)
}
