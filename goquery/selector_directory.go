package goquery

import "github.com/fwojciec/clinicscrape"

// Ensure DirectorySelector implements clinicscrape.LinkSelector.
var _ clinicscrape.LinkSelector = (*DirectorySelector)(nil)

// DirectorySelector finds clinic links on directory pages. Clinic sites
// usually live on their own domains, so links to other hosts are kept.
type DirectorySelector struct{}

// NewDirectorySelector creates a new DirectorySelector.
func NewDirectorySelector() *DirectorySelector {
	return &DirectorySelector{}
}

// Name returns the selector's identifier.
func (s *DirectorySelector) Name() string {
	return "directory"
}

// ExtractLinks returns clinic links, deduplicated, in selector order.
func (s *DirectorySelector) ExtractLinks(html string, baseURL string) ([]clinicscrape.DiscoveredLink, error) {
	configs := []linkConfig{
		{Selector: `a[href*="clinic"]`, Source: "directory"},
		{Selector: `a[href*="hospital"]`, Source: "directory"},
		{Selector: ".clinic-item a[href]", Source: "directory"},
		{Selector: ".listing a[href]", Source: "directory"},
	}
	return extractLinks(html, baseURL, configs, false)
}
