// Package trafilatura derives clinic descriptions with go-trafilatura.
package trafilatura

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/clinicscrape"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Describer implements clinicscrape.DescriptionExtractor at compile time.
var _ clinicscrape.DescriptionExtractor = (*Describer)(nil)

// MaxDescriptionLength caps descriptions taken from main content.
const MaxDescriptionLength = 300

// Describer extracts a description from page metadata, falling back to the
// opening of the main content.
type Describer struct{}

// NewDescriber creates a new Describer.
func NewDescriber() *Describer {
	return &Describer{}
}

// Describe processes raw HTML and returns a short description.
func (d *Describer) Describe(rawHTML, pageURL string) (string, error) {
	if rawHTML == "" {
		return "", errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	if desc := strings.TrimSpace(result.Metadata.Description); desc != "" {
		return desc, nil
	}
	return truncateWords(strings.Join(strings.Fields(result.ContentText), " "), MaxDescriptionLength), nil
}

// truncateWords shortens s to at most n characters, cutting at a word
// boundary when one exists.
func truncateWords(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:n])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
