package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/clinicscrape"
)

// Ensure ContactSelector implements clinicscrape.LinkSelector.
var _ clinicscrape.LinkSelector = (*ContactSelector)(nil)

// contactKeywords mark links likely to lead to contact or location pages.
var contactKeywords = []string{
	"contact", "location", "directions", "address", "find us", "visit",
	"오시는길", "찾아오시는길", "위치", "연락처", "주소", "방문",
	"about", "clinic-info", "information",
}

// ContactSelector finds same-host links to contact, location and about
// pages by keyword in the link text or href.
type ContactSelector struct{}

// NewContactSelector creates a new ContactSelector.
func NewContactSelector() *ContactSelector {
	return &ContactSelector{}
}

// Name returns the selector's identifier.
func (s *ContactSelector) Name() string {
	return "contact"
}

// ExtractLinks returns contact links in document order without duplicates.
func (s *ContactSelector) ExtractLinks(html string, baseURL string) ([]clinicscrape.DiscoveredLink, error) {
	configs := []linkConfig{
		{Selector: "a[href]", Source: "contact", Filter: isContactLink},
	}
	return extractLinks(html, baseURL, configs, true)
}

func isContactLink(text, href string) bool {
	text = strings.ToLower(text)
	href = strings.ToLower(href)
	// Korean paths are usually percent-encoded.
	decoded, err := url.PathUnescape(href)
	if err != nil {
		decoded = href
	}
	for _, kw := range contactKeywords {
		if strings.Contains(text, kw) || strings.Contains(href, kw) || strings.Contains(decoded, kw) {
			return true
		}
	}
	return false
}
