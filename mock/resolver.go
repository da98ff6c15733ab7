package mock

import "github.com/fwojciec/clinicscrape"

var _ clinicscrape.AddressResolver = (*AddressResolver)(nil)

// AddressResolver is a mock implementation of clinicscrape.AddressResolver.
type AddressResolver struct {
	ResolveHTMLFn func(html, url string) (*clinicscrape.AddressCandidate, error)
}

func (r *AddressResolver) ResolveHTML(html, url string) (*clinicscrape.AddressCandidate, error) {
	return r.ResolveHTMLFn(html, url)
}
