package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clinicscrape"
)

// Ensure ListingExtractor implements clinicscrape.ListingExtractor.
var _ clinicscrape.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor extracts the name, phone, services and description of a
// clinic page.
type ListingExtractor struct {
	// Describer derives a description when the page has no description
	// markup. Optional.
	Describer clinicscrape.DescriptionExtractor
}

// NewListingExtractor creates a ListingExtractor.
func NewListingExtractor(describer clinicscrape.DescriptionExtractor) *ListingExtractor {
	return &ListingExtractor{Describer: describer}
}

// ExtractListing parses html and extracts its listing fields.
func (e *ListingExtractor) ExtractListing(html, url string) (*clinicscrape.Listing, error) {
	p, err := NewPage(html, url, false)
	if err != nil {
		return nil, err
	}

	listing := &clinicscrape.Listing{
		Name:        extractName(p.doc),
		Phone:       extractPhone(p),
		Services:    extractServices(p),
		Description: extractFirstText(p.doc, descriptionSelectors),
	}

	if listing.Description == "" && e.Describer != nil {
		// Best effort: a failed fallback leaves the description empty.
		if desc, err := e.Describer.Describe(html, url); err == nil {
			listing.Description = collapseSpace(desc)
		}
	}

	return listing, nil
}

var nameSelectors = []string{
	"h1", ".clinic-name", ".title", ".logo-text", ".brand-name",
	".site-title", ".hospital-name", ".main-title", "title",
	".navbar-brand", ".header-title", ".clinic-title",
}

var descriptionSelectors = []string{
	".description", ".about", ".intro", ".clinic-intro", `meta[name="description"]`,
}

// maxNameLength is the longest name taken from nameSelectors before falling
// back to the document title.
const maxNameLength = 100

// extractFirstText returns the collapsed text of the first selector with a
// non-empty match. Meta selectors yield their content attribute.
func extractFirstText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		el := doc.Find(selector).First()
		if el.Length() == 0 {
			continue
		}
		var text string
		if goquery.NodeName(el) == "meta" {
			text = strings.TrimSpace(el.AttrOr("content", ""))
		} else {
			text = collapseSpace(el.Text())
		}
		if text != "" {
			return text
		}
	}
	return ""
}

func extractName(doc *goquery.Document) string {
	name := extractFirstText(doc, nameSelectors)
	if name != "" && utf8.RuneCountInString(name) <= maxNameLength {
		return name
	}

	title := doc.Find("title").First()
	if title.Length() == 0 {
		return name
	}
	t := strings.TrimSpace(title.Text())
	t = strings.ReplaceAll(t, " - Home", "")
	t = strings.ReplaceAll(t, " | Home", "")
	t, _, _ = strings.Cut(t, "|")
	t, _, _ = strings.Cut(t, "-")
	return collapseSpace(t)
}

var phoneSelectors = []string{
	".phone", ".tel", ".contact-phone", `[href^="tel:"]`,
	".contact-number", ".call", ".telephone", `[class*="phone"]`,
	`[class*="tel"]`, `[id*="phone"]`, `[id*="tel"]`,
}

// phonePatterns are tried in order against the page text.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+82[-.\s]?\d{1,2}[-.\s]?\d{3,4}[-.\s]?\d{4}`), // international
	regexp.MustCompile(`0\d{1,2}[-.\s]?\d{3,4}[-.\s]?\d{4}`),           // local
	regexp.MustCompile(`\d{2,3}[-.\s]?\d{3,4}[-.\s]?\d{4}`),            // basic
	regexp.MustCompile(`010[-.\s]?\d{4}[-.\s]?\d{4}`),                  // mobile
}

func extractPhone(p *Page) string {
	for _, selector := range phoneSelectors {
		el := p.doc.Find(selector).First()
		if el.Length() == 0 {
			continue
		}
		if href, ok := el.Attr("href"); ok && goquery.NodeName(el) == "a" {
			if number, found := strings.CutPrefix(strings.TrimSpace(href), "tel:"); found {
				return strings.TrimSpace(number)
			}
		}
		if text := collapseSpace(el.Text()); text != "" {
			return text
		}
	}

	for _, re := range phonePatterns {
		if m := re.FindString(p.Text()); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

var serviceListSelectors = []string{
	".services li", ".procedures li", ".treatments li",
	".service-list li", ".treatment-list li", ".menu li",
	".procedure-list li", ".surgery-list li", ".care-list li",
	`[class*="service"] li`, `[class*="treatment"] li`,
	".nav-menu li a", ".main-menu li a",
}

var serviceItemSelectors = []string{
	".service-item", ".treatment-item", ".procedure-item",
	`[class*="service-"]`, `[class*="treatment-"]`,
}

// procedureVocabulary is searched in page text when no service markup exists.
var procedureVocabulary = []string{
	"성형외과", "피부과", "보톡스", "필러", "리프팅", "레이저",
	"쌍꺼풀", "코성형", "안면윤곽", "가슴성형", "지방흡입",
	"Botox", "Filler", "Lifting", "Laser", "Rhinoplasty",
	"Blepharoplasty", "Breast", "Liposuction", "Facelift",
}

// Service text bounds, in characters.
const (
	minServiceLength = 3
	maxServiceLength = 100
)

func extractServices(p *Page) []string {
	var services []string
	for _, selectors := range [][]string{serviceListSelectors, serviceItemSelectors} {
		for _, selector := range selectors {
			p.doc.Find(selector).Each(func(_ int, el *goquery.Selection) {
				text := collapseSpace(el.Text())
				if text != "" && utf8.RuneCountInString(text) < maxServiceLength {
					services = append(services, text)
				}
			})
		}
	}

	if len(services) == 0 {
		text := p.Text()
		for _, procedure := range procedureVocabulary {
			if strings.Contains(text, procedure) {
				services = append(services, procedure)
			}
		}
	}

	return dedupeServices(services)
}

// dedupeServices keeps the first occurrence of each service, drops items
// shorter than minServiceLength and caps the result at MaxServices.
func dedupeServices(services []string) []string {
	seen := make(map[string]bool, len(services))
	out := make([]string, 0, min(len(services), clinicscrape.MaxServices))
	for _, s := range services {
		if seen[s] || utf8.RuneCountInString(s) < minServiceLength {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == clinicscrape.MaxServices {
			break
		}
	}
	return out
}
