package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clinicscrape"
)

// linkFilter decides whether an anchor is of interest.
type linkFilter func(text, href string) bool

// linkConfig describes one pass of link extraction.
type linkConfig struct {
	Selector string
	Source   string
	Filter   linkFilter // nil accepts every anchor
}

// extractLinks collects anchors matched by configs, in config order and
// then document order. A URL is kept once, with the text and source of its
// first anchor. Links that resolve to a non-web scheme or back to baseURL
// are dropped, and with sameHost so are links to any other host.
func extractLinks(html string, baseURL string, configs []linkConfig, sameHost bool) ([]clinicscrape.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, clinicscrape.Errorf(clinicscrape.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, clinicscrape.Errorf(clinicscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	self := stripFragment(base).String()
	seen := map[string]bool{self: true}
	var links []clinicscrape.DiscoveredLink

	for _, cfg := range configs {
		doc.Find(cfg.Selector).Each(func(_ int, a *goquery.Selection) {
			href := strings.TrimSpace(a.AttrOr("href", ""))
			if href == "" {
				return
			}
			text := collapseSpace(a.Text())
			if cfg.Filter != nil && !cfg.Filter(text, href) {
				return
			}

			target := absoluteWebURL(base, href)
			if target == nil {
				return
			}
			if sameHost && !sameHostname(target, base) {
				return
			}
			key := target.String()
			if seen[key] {
				return
			}
			seen[key] = true
			links = append(links, clinicscrape.DiscoveredLink{
				URL:    key,
				Text:   text,
				Source: cfg.Source,
			})
		})
	}

	return links, nil
}

// absoluteWebURL resolves href against base without its fragment. It
// returns nil for unparsable hrefs and for schemes other than http(s),
// which covers javascript:, mailto:, tel: and data: anchors.
func absoluteWebURL(base *url.URL, href string) *url.URL {
	ref, err := url.Parse(href)
	if err != nil {
		return nil
	}
	u := stripFragment(base.ResolveReference(ref))
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u
	}
	return nil
}

// stripFragment copies u without its fragment. The host is lowercased so
// links differing only in host case dedupe to one URL.
func stripFragment(u *url.URL) *url.URL {
	c := *u
	c.Fragment = ""
	c.RawFragment = ""
	c.Host = strings.ToLower(c.Host)
	return &c
}

// sameHostname compares host names case-insensitively, ports exactly.
func sameHostname(a, b *url.URL) bool {
	return strings.EqualFold(a.Hostname(), b.Hostname()) && a.Port() == b.Port()
}
