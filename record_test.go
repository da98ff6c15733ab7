package clinicscrape_test

import (
	"testing"
	"time"

	"github.com/fwojciec/clinicscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClinicRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires url", func(t *testing.T) {
		t.Parallel()

		err := (&clinicscrape.ClinicRecord{Name: "Clinic"}).Validate()

		require.Error(t, err)
		assert.Equal(t, clinicscrape.EINVALID, clinicscrape.ErrorCode(err))
	})

	t.Run("rejects more than ten services", func(t *testing.T) {
		t.Parallel()

		r := &clinicscrape.ClinicRecord{URL: "https://c.example.kr", Services: make([]string, 11)}

		assert.Equal(t, clinicscrape.EINVALID, clinicscrape.ErrorCode(r.Validate()))
	})

	t.Run("accepts minimal record", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, (&clinicscrape.ClinicRecord{URL: "https://c.example.kr"}).Validate())
	})
}

func TestClinicRecord_SetAddress(t *testing.T) {
	t.Parallel()

	r := &clinicscrape.ClinicRecord{}
	r.SetAddress(&clinicscrape.AddressCandidate{
		Text:       "640 Samseong-ro, Gangnam-gu, Seoul",
		Strategy:   clinicscrape.StrategyJSONLD,
		Confidence: clinicscrape.ConfidenceHigh,
	})

	assert.Equal(t, "640 Samseong-ro, Gangnam-gu, Seoul", r.Address)
	assert.Equal(t, clinicscrape.StrategyJSONLD, r.AddressStrategy)
	assert.Equal(t, clinicscrape.ConfidenceHigh, r.AddressConfidence)

	r.SetAddress(nil)

	assert.Empty(t, r.Address)
	assert.Empty(t, r.AddressStrategy)
	assert.Empty(t, r.AddressConfidence)
}

func TestClinicRecord_ContentHash(t *testing.T) {
	t.Parallel()

	t.Run("ignores scrape time and id", func(t *testing.T) {
		t.Parallel()

		a := &clinicscrape.ClinicRecord{ID: "a", Name: "Clinic", URL: "https://c.example.kr", ScrapedAt: time.Unix(1, 0)}
		b := &clinicscrape.ClinicRecord{ID: "b", Name: "Clinic", URL: "https://c.example.kr", ScrapedAt: time.Unix(2, 0)}

		assert.Equal(t, a.ContentHash(), b.ContentHash())
	})

	t.Run("changes when a field changes", func(t *testing.T) {
		t.Parallel()

		a := &clinicscrape.ClinicRecord{Name: "Clinic", URL: "https://c.example.kr"}
		b := &clinicscrape.ClinicRecord{Name: "Clinic", URL: "https://c.example.kr", Phone: "02-555-1234"}

		assert.NotEqual(t, a.ContentHash(), b.ContentHash())
	})

	t.Run("does not confuse field boundaries", func(t *testing.T) {
		t.Parallel()

		a := &clinicscrape.ClinicRecord{Name: "ab", Phone: "c"}
		b := &clinicscrape.ClinicRecord{Name: "a", Phone: "bc"}

		assert.NotEqual(t, a.ContentHash(), b.ContentHash())
	})
}

func TestAddressCandidate_IsLowConfidence(t *testing.T) {
	t.Parallel()

	var missing *clinicscrape.AddressCandidate

	assert.True(t, missing.IsLowConfidence())
	assert.True(t, (&clinicscrape.AddressCandidate{Confidence: clinicscrape.ConfidenceLow}).IsLowConfidence())
	assert.False(t, (&clinicscrape.AddressCandidate{Confidence: clinicscrape.ConfidenceHigh}).IsLowConfidence())
}
