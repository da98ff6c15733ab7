package clinicscrape

// Strategy names the reader that produced an address.
type Strategy string

// Address strategies in waterfall order.
const (
	StrategyMeta        Strategy = "meta"
	StrategyFullText    Strategy = "fulltext"
	StrategyMicrodata   Strategy = "microdata"
	StrategyJSONLD      Strategy = "jsonld"
	StrategyScript      Strategy = "script"
	StrategyContentHint Strategy = "content-hint"
	StrategyContentScan Strategy = "content-scan"
	StrategyLenient     Strategy = "lenient"
)

// Confidence grades an accepted address.
type Confidence string

// Confidence levels.
const (
	// ConfidenceHigh means the text passed IsPlausibleAddress.
	ConfidenceHigh Confidence = "high"
	// ConfidenceLow means the text came from the lenient search and was
	// only length checked.
	ConfidenceLow Confidence = "low"
)

// AddressCandidate is an address accepted for a page.
type AddressCandidate struct {
	Text       string
	Strategy   Strategy
	OriginURL  string
	Confidence Confidence
}

// IsLowConfidence reports whether c is missing or low confidence.
func (c *AddressCandidate) IsLowConfidence() bool {
	return c == nil || c.Confidence == ConfidenceLow
}

// AddressResolver locates the single best address in an HTML document.
type AddressResolver interface {
	// ResolveHTML runs the strategy waterfall over html fetched from url.
	// A nil candidate with a nil error means the page has no discoverable
	// address.
	ResolveHTML(html, url string) (*AddressCandidate, error)
}
