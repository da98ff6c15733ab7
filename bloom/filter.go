// Package bloom provides URL deduplication using Bloom filters.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// DefaultFalsePositiveRate keeps accidental drops negligible for batches of
// a few thousand URLs.
const DefaultFalsePositiveRate = 1e-6

// Filter wraps a Bloom filter for URL deduplication.
// It is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a URL to the filter.
func (f *Filter) Add(url string) {
	f.f.AddString(Normalize(url))
}

// Test returns true if the URL might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(Normalize(url))
}

// TestAndAdd adds the URL and reports whether it might have been present.
func (f *Filter) TestAndAdd(url string) bool {
	return f.f.TestAndAddString(Normalize(url))
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// Normalize returns the form of rawURL used for deduplication: surrounding
// space and the fragment are removed and the scheme and host are
// lowercased. Unparsable input is only trimmed.
func Normalize(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return u.String()
}

// Unique returns urls with duplicates and blank entries removed, keeping
// the first occurrence of each. Entries are returned as given, not
// normalized.
func Unique(urls []string) []string {
	f := NewFilter(uint(len(urls)), DefaultFalsePositiveRate)
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.TrimSpace(u) == "" {
			continue
		}
		if f.TestAndAdd(u) {
			continue
		}
		out = append(out, u)
	}
	return out
}
