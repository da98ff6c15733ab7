package clinicscrape_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/clinicscrape"
	"github.com/stretchr/testify/assert"
)

func TestIsPlausibleAddress(t *testing.T) {
	t.Parallel()

	t.Run("accepts Korean address with comma", func(t *testing.T) {
		t.Parallel()

		assert.True(t, clinicscrape.IsPlausibleAddress("서울특별시 강남구 테헤란로 123, 4층"))
	})

	t.Run("accepts romanized address", func(t *testing.T) {
		t.Parallel()

		assert.True(t, clinicscrape.IsPlausibleAddress("123 Nonhyeon-ro, Gangnam-gu, Seoul, South Korea"))
	})

	t.Run("accepts Korean structure without comma", func(t *testing.T) {
		t.Parallel()

		assert.True(t, clinicscrape.IsPlausibleAddress("서울 강남구 123 테헤란로 Gangnam-gu"))
	})

	t.Run("rejects booking text", func(t *testing.T) {
		t.Parallel()

		assert.False(t, clinicscrape.IsPlausibleAddress("예약 문의: 02-555-1234, 상담 시간 평일 10시-19시"))
	})

	t.Run("rejects text without digits", func(t *testing.T) {
		t.Parallel()

		assert.False(t, clinicscrape.IsPlausibleAddress("서울특별시 강남구 테헤란로, 역삼동"))
	})

	t.Run("rejects text without indicator", func(t *testing.T) {
		t.Parallel()

		assert.False(t, clinicscrape.IsPlausibleAddress("12345, 67890, abcdef"))
	})

	t.Run("rejects English text without street shape", func(t *testing.T) {
		t.Parallel()

		assert.False(t, clinicscrape.IsPlausibleAddress("Suite 5, Building A, Floor"))
	})

	t.Run("rejects text without comma or Korean structure", func(t *testing.T) {
		t.Parallel()

		assert.False(t, clinicscrape.IsPlausibleAddress("서울특별시 강남구 4층 123"))
	})

	t.Run("rejects short text", func(t *testing.T) {
		t.Parallel()

		assert.False(t, clinicscrape.IsPlausibleAddress("1 로, 구"))
	})

	t.Run("rejects text over the length bound", func(t *testing.T) {
		t.Parallel()

		long := "서울특별시 강남구 테헤란로 123, " + strings.Repeat("가", clinicscrape.MaxAddressLength)

		assert.False(t, clinicscrape.IsPlausibleAddress(long))
	})

	t.Run("rejects address with URL", func(t *testing.T) {
		t.Parallel()

		assert.False(t, clinicscrape.IsPlausibleAddress("서울 강남구 테헤란로 123, www.clinic.kr"))
	})

	t.Run("rejects negative vocabulary case insensitively", func(t *testing.T) {
		t.Parallel()

		assert.False(t, clinicscrape.IsPlausibleAddress("123 Teheran-ro, Gangnam-gu, Seoul, Phone"))
	})
}

func TestIsPlausibleAddress_RemovingNegativeKeywordIsNotEnough(t *testing.T) {
	t.Parallel()

	// Story: Negative vocabulary is not the only gate
	//
	// Given strings rejected for containing a negative keyword
	// When the keyword is removed
	// Then strings lacking indicator, digit or structure stay invalid

	cases := []struct {
		withKeyword string
		without     string
	}{
		{"예약 문의 바랍니다", " 바랍니다"},
		{"상담 예약 가능, 평일", "상담  가능, 평일"},
		{"Call us today, friendly staff", " us today, friendly staff"},
		{"booking open 24, please", " open 24, please"},
	}

	for _, c := range cases {
		assert.False(t, clinicscrape.IsPlausibleAddress(c.withKeyword), c.withKeyword)
		assert.False(t, clinicscrape.IsPlausibleAddress(c.without), c.without)
	}
}
