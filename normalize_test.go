package clinicscrape_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/clinicscrape"
	"github.com/stretchr/testify/assert"
)

func TestCleanAddress(t *testing.T) {
	t.Parallel()

	t.Run("strips Korean address label", func(t *testing.T) {
		t.Parallel()

		got := clinicscrape.CleanAddress("주소: 서울특별시 강남구 테헤란로 123, 4층")

		assert.Equal(t, "서울특별시 강남구 테헤란로 123, 4층", got)
	})

	t.Run("removes phone parenthetical", func(t *testing.T) {
		t.Parallel()

		got := clinicscrape.CleanAddress("123 Nonhyeon-ro, Gangnam-gu, Seoul, South Korea (tel: 02-1234-5678)")

		assert.Equal(t, "123 Nonhyeon-ro, Gangnam-gu, Seoul, South Korea", got)
	})

	t.Run("collapses whitespace and newlines", func(t *testing.T) {
		t.Parallel()

		got := clinicscrape.CleanAddress("  서울특별시   강남구\n\t테헤란로 123  ")

		assert.Equal(t, "서울특별시 강남구 테헤란로 123", got)
	})

	t.Run("removes only the leading label", func(t *testing.T) {
		t.Parallel()

		got := clinicscrape.CleanAddress("Address: 12 Dosan-daero, Address Building, Seoul")

		assert.Equal(t, "12 Dosan-daero, Address Building, Seoul", got)
	})

	t.Run("strips every stacked label", func(t *testing.T) {
		t.Parallel()

		got := clinicscrape.CleanAddress("주소: 위치: 서울특별시 서초구 서초대로 77, 2층")

		assert.Equal(t, "서울특별시 서초구 서초대로 77, 2층", got)
	})

	t.Run("strips a long run of repeated labels", func(t *testing.T) {
		t.Parallel()

		got := clinicscrape.CleanAddress(strings.Repeat("주소 ", 9) + "서울 강남구")

		assert.Equal(t, "서울 강남구", got)
	})

	t.Run("strips leading asterisk", func(t *testing.T) {
		t.Parallel()

		got := clinicscrape.CleanAddress("* 640 Samseong-ro, Gangnam-gu, Seoul")

		assert.Equal(t, "640 Samseong-ro, Gangnam-gu, Seoul", got)
	})

	t.Run("removes embedded phone number and email", func(t *testing.T) {
		t.Parallel()

		got := clinicscrape.CleanAddress("서울 강남구 테헤란로 123, 02-555-1234, info@clinic.kr")

		assert.Equal(t, "서울 강남구 테헤란로 123", got)
	})

	t.Run("removes operational keyword up to next comma", func(t *testing.T) {
		t.Parallel()

		got := clinicscrape.CleanAddress("서울 강남구 테헤란로 123, 진료시간 평일 10시 19시, 4층")

		assert.Equal(t, "서울 강남구 테헤란로 123, 4층", got)
	})

	t.Run("trims trailing punctuation", func(t *testing.T) {
		t.Parallel()

		got := clinicscrape.CleanAddress("서울 강남구 테헤란로 123.")

		assert.Equal(t, "서울 강남구 테헤란로 123", got)
	})

	t.Run("returns empty string for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, clinicscrape.CleanAddress(""))
		assert.Empty(t, clinicscrape.CleanAddress("   \n "))
	})
}

func TestCleanAddress_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"주소: 서울특별시 강남구 테헤란로 123, 4층",
		"123 Nonhyeon-ro, Gangnam-gu, Seoul, South Korea (tel: 02-1234-5678)",
		"예약 문의: 02-555-1234, 상담 시간 평일 10시-19시",
		"주소: 위치: Address: 서울 강남구",
		"* * 640 Samseong-ro,, , Gangnam-gu.,;",
		"Location: 02.555.1234 010 1234 5678 foo@bar.com",
		",,, ,",
		strings.Repeat("* ", 10) + "640 Samseong-ro, Gangnam-gu, Seoul",
		strings.Repeat("주소 ", 9) + "서울 강남구",
		strings.Repeat("Address: ", 12) + strings.Repeat(", ", 5) + "서울 강남구",
		"오시는길: 찾아오시는길: 서울특별시 서초구 서초대로 77길 55, 3층 (예약 02-123-4567)",
		"",
	}

	for _, in := range inputs {
		once := clinicscrape.CleanAddress(in)
		twice := clinicscrape.CleanAddress(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}
