package clinicscrape

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// MaxServices caps the number of services kept per record.
const MaxServices = 10

// ClinicRecord is the assembled listing for one scraped page.
type ClinicRecord struct {
	ID                string     `json:"-"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	Address           string     `json:"address"`
	AddressStrategy   Strategy   `json:"address_strategy,omitempty"`
	AddressConfidence Confidence `json:"address_confidence,omitempty"`
	Services          []string   `json:"services"`
	Description       string     `json:"description"`
	URL               string     `json:"url"`
	ScrapedAt         time.Time  `json:"scraped_at"`
}

// SetAddress copies an accepted candidate onto the record. A nil candidate
// clears the address fields.
func (r *ClinicRecord) SetAddress(c *AddressCandidate) {
	if c == nil {
		r.Address, r.AddressStrategy, r.AddressConfidence = "", "", ""
		return
	}
	r.Address = c.Text
	r.AddressStrategy = c.Strategy
	r.AddressConfidence = c.Confidence
}

// Validate returns an error if the record is missing required fields.
func (r *ClinicRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record url required")
	}
	if len(r.Services) > MaxServices {
		return Errorf(EINVALID, "record has %d services, at most %d allowed", len(r.Services), MaxServices)
	}
	return nil
}

// ContentHash returns a stable hash of the record's extracted fields.
// ScrapedAt and ID are excluded so re-scrapes of unchanged pages hash equal.
func (r *ClinicRecord) ContentHash() string {
	h := xxhash.New()
	for _, s := range []string{r.Name, r.Phone, r.Address, strings.Join(r.Services, "\n"), r.Description, r.URL} {
		_, _ = h.WriteString(s)
		_, _ = h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// Listing holds the non-address fields extracted from a page.
type Listing struct {
	Name        string
	Phone       string
	Services    []string
	Description string
}

// ListingExtractor pulls name, phone, services and description from HTML.
type ListingExtractor interface {
	ExtractListing(html, url string) (*Listing, error)
}

// DescriptionExtractor derives a description when the page has no
// description markup.
type DescriptionExtractor interface {
	Describe(html, url string) (string, error)
}

// RecordStore writes a batch of records to a destination.
type RecordStore interface {
	SaveRecords(ctx context.Context, records []*ClinicRecord) error
}

// RecordService manages persisted records.
type RecordService interface {
	// CreateRecord stores a record and assigns its ID.
	CreateRecord(ctx context.Context, record *ClinicRecord) error

	// FindRecordByID returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*ClinicRecord, error)

	// FindRecords returns records ordered by scrape time, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*ClinicRecord, error)

	// DeleteRecord returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter narrows FindRecords.
type RecordFilter struct {
	ID  *string
	URL *string

	Offset int
	Limit  int
}
