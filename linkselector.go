package clinicscrape

// DiscoveredLink is an absolute URL found on a page.
type DiscoveredLink struct {
	URL    string
	Text   string
	Source string // "contact", "directory"
}

// LinkSelector extracts links of interest from HTML.
type LinkSelector interface {
	// ExtractLinks parses HTML and returns matching links in document order.
	// The baseURL is used to resolve relative URLs.
	ExtractLinks(html string, baseURL string) ([]DiscoveredLink, error)

	// Name returns the selector's identifier (e.g., "contact", "directory").
	Name() string
}
