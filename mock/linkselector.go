package mock

import "github.com/fwojciec/clinicscrape"

var _ clinicscrape.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of clinicscrape.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]clinicscrape.DiscoveredLink, error)
	NameFn         func() string
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]clinicscrape.DiscoveredLink, error) {
	return s.ExtractLinksFn(html, baseURL)
}

func (s *LinkSelector) Name() string {
	return s.NameFn()
}
