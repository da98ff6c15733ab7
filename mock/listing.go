package mock

import "github.com/fwojciec/clinicscrape"

var _ clinicscrape.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor is a mock implementation of clinicscrape.ListingExtractor.
type ListingExtractor struct {
	ExtractListingFn func(html, url string) (*clinicscrape.Listing, error)
}

func (e *ListingExtractor) ExtractListing(html, url string) (*clinicscrape.Listing, error) {
	return e.ExtractListingFn(html, url)
}

var _ clinicscrape.DescriptionExtractor = (*DescriptionExtractor)(nil)

// DescriptionExtractor is a mock implementation of clinicscrape.DescriptionExtractor.
type DescriptionExtractor struct {
	DescribeFn func(html, url string) (string, error)
}

func (d *DescriptionExtractor) Describe(html, url string) (string, error) {
	return d.DescribeFn(html, url)
}
