package goquery

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clinicscrape"
	"github.com/kaptinlin/jsonrepair"
)

// Strategy is one step of the address waterfall.
type Strategy interface {
	// Name identifies the strategy in results and logs.
	Name() clinicscrape.Strategy

	// Attempt returns an address found on the page. The bool result is
	// false when the strategy found nothing.
	Attempt(p *Page) (string, bool)
}

// DefaultStrategies returns the in-page strategies in waterfall order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		&MetaReader{},
		&FullTextReader{},
		&MicrodataReader{},
		&JSONLDReader{},
		&ScriptReader{},
		&ContentHintReader{},
		&ContentScanReader{},
	}
}

// Ensure readers implement Strategy.
var (
	_ Strategy = (*MetaReader)(nil)
	_ Strategy = (*FullTextReader)(nil)
	_ Strategy = (*MicrodataReader)(nil)
	_ Strategy = (*JSONLDReader)(nil)
	_ Strategy = (*ScriptReader)(nil)
	_ Strategy = (*ContentHintReader)(nil)
	_ Strategy = (*ContentScanReader)(nil)
	_ Strategy = (*LenientReader)(nil)
)

// acceptAddress cleans raw and reports whether it validates.
func acceptAddress(raw string) (string, bool) {
	cleaned := clinicscrape.CleanAddress(raw)
	if !clinicscrape.IsPlausibleAddress(cleaned) {
		return "", false
	}
	return cleaned, true
}

// metaSelectors are checked in order.
var metaSelectors = []string{
	`meta[name="address"]`,
	`meta[name="location"]`,
	`meta[property="business:contact_data:street_address"]`,
	`meta[property="og:street-address"]`,
	`meta[name="geo.address"]`,
}

// MetaReader reads the content attribute of address meta tags.
type MetaReader struct{}

func (r *MetaReader) Name() clinicscrape.Strategy { return clinicscrape.StrategyMeta }

func (r *MetaReader) Attempt(p *Page) (string, bool) {
	for _, selector := range metaSelectors {
		content, ok := p.doc.Find(selector).First().Attr("content")
		if !ok || content == "" {
			continue
		}
		if address, ok := acceptAddress(content); ok {
			return address, true
		}
	}
	return "", false
}

// FullTextReader runs the pattern matcher over the page's visible text.
type FullTextReader struct{}

func (r *FullTextReader) Name() clinicscrape.Strategy { return clinicscrape.StrategyFullText }

func (r *FullTextReader) Attempt(p *Page) (string, bool) {
	return clinicscrape.FindAddress(p.Text())
}

// microdataParts are joined in this order when there is no single
// itemprop="address" element.
var microdataParts = []string{"streetAddress", "addressLocality", "addressRegion", "postalCode"}

// MicrodataReader reads Schema.org microdata.
type MicrodataReader struct{}

func (r *MicrodataReader) Name() clinicscrape.Strategy { return clinicscrape.StrategyMicrodata }

func (r *MicrodataReader) Attempt(p *Page) (string, bool) {
	if full := p.doc.Find(`[itemprop="address"]`).First(); full.Length() > 0 {
		if address, ok := acceptAddress(full.Text()); ok {
			return address, true
		}
	}

	var parts []string
	for _, prop := range microdataParts {
		el := p.doc.Find(`[itemprop="` + prop + `"]`).First()
		if el.Length() == 0 {
			continue
		}
		if part := clinicscrape.CleanAddress(el.Text()); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return acceptAddress(strings.Join(parts, " "))
}

// jsonLDAddressParts are joined in this order for object addresses.
var jsonLDAddressParts = []string{"streetAddress", "addressLocality", "addressRegion"}

// JSONLDReader reads the address field of JSON-LD payloads. Payloads that
// fail to parse are repaired once and skipped if still invalid.
type JSONLDReader struct{}

func (r *JSONLDReader) Name() clinicscrape.Strategy { return clinicscrape.StrategyJSONLD }

func (r *JSONLDReader) Attempt(p *Page) (string, bool) {
	var found string
	p.doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		data, ok := decodeJSONLD(s.Text())
		if !ok {
			return true
		}
		raw := jsonLDAddress(data)
		if raw == "" {
			return true
		}
		if address, ok := acceptAddress(raw); ok {
			found = address
			return false
		}
		return true
	})
	return found, found != ""
}

func decodeJSONLD(payload string) (any, bool) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, false
	}

	var data any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		repaired, rerr := jsonrepair.JSONRepair(payload)
		if rerr != nil {
			return nil, false
		}
		if err := json.Unmarshal([]byte(repaired), &data); err != nil {
			return nil, false
		}
	}
	return data, true
}

// jsonLDAddress extracts the address text from a decoded payload. Only the
// first element of a top-level array is considered.
func jsonLDAddress(data any) string {
	if list, ok := data.([]any); ok {
		if len(list) == 0 {
			return ""
		}
		data = list[0]
	}

	obj, ok := data.(map[string]any)
	if !ok {
		return ""
	}

	switch addr := obj["address"].(type) {
	case string:
		return addr
	case map[string]any:
		var parts []string
		for _, key := range jsonLDAddressParts {
			if s := scalarString(addr[key]); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	}
	return ""
}

func scalarString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// scriptPatterns find address-like assignments in inline scripts.
var scriptPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)address["']?\s*[:=]\s*["']([^"']{20,100})["']`),
	regexp.MustCompile(`(?i)location["']?\s*[:=]\s*["']([^"']{20,100})["']`),
	regexp.MustCompile(`(?i)["']address["']?\s*[:=]\s*["']([^"']{20,100})["']`),
	regexp.MustCompile(`(?i)street["']?\s*[:=]\s*["']([^"']{10,100})["']`),
}

// ScriptReader reads address assignments from inline script bodies.
type ScriptReader struct{}

func (r *ScriptReader) Name() clinicscrape.Strategy { return clinicscrape.StrategyScript }

func (r *ScriptReader) Attempt(p *Page) (string, bool) {
	var found string
	p.doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		body := s.Text()
		if body == "" {
			return true
		}
		for _, re := range scriptPatterns {
			for _, m := range re.FindAllStringSubmatch(body, -1) {
				if address, ok := acceptAddress(m[1]); ok {
					found = address
					return false
				}
			}
		}
		return true
	})
	return found, found != ""
}

// contentHintSelectors are containers whose class or id suggests address,
// location or contact content.
var contentHintSelectors = []string{
	".address", ".location", ".addr", ".contact-address",
	".clinic-address", ".hospital-address", ".venue-address",
	".contact-info", ".info", ".clinic-info", ".location-info",
	`[class*="address"]`, `[class*="location"]`, `[class*="contact"]`,
	`[id*="address"]`, `[id*="location"]`, `[id*="contact"]`,
}

// ContentHintReader runs the pattern matcher over address-hinted containers.
type ContentHintReader struct{}

func (r *ContentHintReader) Name() clinicscrape.Strategy { return clinicscrape.StrategyContentHint }

func (r *ContentHintReader) Attempt(p *Page) (string, bool) {
	for _, selector := range contentHintSelectors {
		if address, ok := firstAddressIn(p.doc.Find(selector), nil); ok {
			return address, true
		}
	}
	return "", false
}

// Text length bounds, in characters, for ContentScanReader fragments.
const (
	minScanLength = 15
	maxScanLength = 200
)

// ContentScanReader runs the pattern matcher over every paragraph, div,
// span and list item of reasonable length. It scans the whole document and
// runs last.
type ContentScanReader struct{}

func (r *ContentScanReader) Name() clinicscrape.Strategy { return clinicscrape.StrategyContentScan }

func (r *ContentScanReader) Attempt(p *Page) (string, bool) {
	return firstAddressIn(p.doc.Find("p, div, span, li"), func(text string) bool {
		n := utf8.RuneCountInString(text)
		return n >= minScanLength && n < maxScanLength
	})
}

// firstAddressIn returns the first address found in the text of sel's
// elements, in document order. keep filters the trimmed text when non-nil.
func firstAddressIn(sel *goquery.Selection, keep func(string) bool) (string, bool) {
	var found string
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text == "" || (keep != nil && !keep(text)) {
			return true
		}
		if address, ok := clinicscrape.FindAddress(text); ok {
			found = address
			return false
		}
		return true
	})
	return found, found != ""
}

// maxLenientLine is the longest line LenientReader searches.
const maxLenientLine = 300

// LenientReader is the last-resort search over individual lines of text.
// Its results bypass IsPlausibleAddress and must be reported as low
// confidence.
type LenientReader struct{}

func (r *LenientReader) Name() clinicscrape.Strategy { return clinicscrape.StrategyLenient }

func (r *LenientReader) Attempt(p *Page) (string, bool) {
	for _, line := range p.Lines() {
		line = strings.TrimSpace(line)
		if !strings.ContainsAny(line, "0123456789") || utf8.RuneCountInString(line) >= maxLenientLine {
			continue
		}
		if address, ok := clinicscrape.FindAddressLenient(line); ok {
			return address, true
		}
	}
	return "", false
}
