package goquery

import (
	"log/slog"

	"github.com/fwojciec/clinicscrape"
)

// Ensure Resolver implements clinicscrape.AddressResolver.
var _ clinicscrape.AddressResolver = (*Resolver)(nil)

// Resolver runs the address strategies in order and returns the first hit.
type Resolver struct {
	strategies []Strategy
	lenient    Strategy
	logger     *slog.Logger
	debug      bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithStrategies replaces the in-page strategies.
func WithStrategies(strategies ...Strategy) ResolverOption {
	return func(r *Resolver) {
		r.strategies = strategies
	}
}

// WithLenient enables the low-confidence line search after every other
// strategy has failed.
func WithLenient(enabled bool) ResolverOption {
	return func(r *Resolver) {
		if enabled {
			r.lenient = &LenientReader{}
		} else {
			r.lenient = nil
		}
	}
}

// WithLogger sets the logger used for per-strategy tracing.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithDebug marks every page parsed by ResolveHTML for tracing.
func WithDebug(enabled bool) ResolverOption {
	return func(r *Resolver) {
		r.debug = enabled
	}
}

// NewResolver creates a Resolver with DefaultStrategies.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{strategies: DefaultStrategies()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveHTML parses html and resolves its address.
func (r *Resolver) ResolveHTML(html, url string) (*clinicscrape.AddressCandidate, error) {
	p, err := NewPage(html, url, r.debug)
	if err != nil {
		return nil, err
	}
	return r.Resolve(p), nil
}

// Resolve returns the first address found by the strategies, or nil if none
// found one. Later strategies do not run once one succeeds.
func (r *Resolver) Resolve(p *Page) *clinicscrape.AddressCandidate {
	for _, s := range r.strategies {
		if c := r.attempt(p, s, clinicscrape.ConfidenceHigh); c != nil {
			return c
		}
	}
	if r.lenient != nil {
		return r.attempt(p, r.lenient, clinicscrape.ConfidenceLow)
	}
	return nil
}

func (r *Resolver) attempt(p *Page, s Strategy, confidence clinicscrape.Confidence) *clinicscrape.AddressCandidate {
	text, ok := s.Attempt(p)
	if p.Debug && r.logger != nil {
		r.logger.Debug("address strategy",
			"strategy", string(s.Name()),
			"url", p.URL,
			"found", ok,
			"address", text,
		)
	}
	if !ok {
		return nil
	}
	return &clinicscrape.AddressCandidate{
		Text:       text,
		Strategy:   s.Name(),
		OriginURL:  p.URL,
		Confidence: confidence,
	}
}
