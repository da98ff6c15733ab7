package clinicscrape

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Length bounds, in characters, for a plausible address.
const (
	MinAddressLength = 10
	MaxAddressLength = 200
)

// addressIndicators is the bilingual vocabulary of administrative, street,
// building, floor and city tokens. At least one must be present.
var addressIndicators = []string{
	// Administrative divisions
	"시", "도", "구", "군", "동", "면", "읍", "리",
	// Street types
	"로", "길", "대로", "ro", "Road", "Street", "Ave", "Avenue",
	// Buildings
	"빌딩", "타워", "센터", "병원", "의원", "Building", "Tower", "Center",
	// Floors and rooms
	"층", "호", "실", "Floor", "floor",
	// Cities and districts
	"서울", "부산", "대구", "인천", "광주", "대전", "울산", "경기", "강남",
	"Seoul", "Busan", "Daegu", "Incheon", "Gwangju", "Daejeon", "Ulsan",
	"Gangnam", "gu", "Gu", "dong", "Dong", "South Korea", "Republic of Korea",
	"Nonhyeon", "Teheran", "Samseong", "Yanghwa", "Mapo", "Seocho",
	"District", "Disctrict",
}

// negativeIndicators disqualify a fragment regardless of other signals.
// Matched against the lowercased text.
var negativeIndicators = []string{
	"email", "@", "http", "www", "전화", "연락처", "tel:", "phone",
	"진료시간", "영업시간", "운영시간", "hours", "time", "consultation",
	"예약", "appointment", "booking", "문의", "inquiry", "call", "contact us",
}

var (
	englishAddressShape = regexp.MustCompile(`(?i)\d+.*(?:ro|Road|Street|Ave|gu|Gu|Seoul)`)
	koreanAddressShape  = regexp.MustCompile(`(?i)\d+.*(?:로|ro|Road).*(?:구|gu|Seoul)`)
)

// IsPlausibleAddress reports whether text looks like a Korean postal address.
// It requires a length within bounds, an address indicator, a digit, Hangul
// or an English street shape, comma or Korean address structure, and no
// negative vocabulary.
func IsPlausibleAddress(text string) bool {
	n := utf8.RuneCountInString(text)
	if n < MinAddressLength || n > MaxAddressLength {
		return false
	}

	if !containsAny(text, addressIndicators) {
		return false
	}

	if !strings.ContainsAny(text, "0123456789") {
		return false
	}

	if !hasHangul(text) && !englishAddressShape.MatchString(text) {
		return false
	}

	if !strings.Contains(text, ",") && !koreanAddressShape.MatchString(text) {
		return false
	}

	return !containsAny(strings.ToLower(text), negativeIndicators)
}

// hasHangul reports whether s contains a Hangul syllable or compatibility jamo.
func hasHangul(s string) bool {
	for _, r := range s {
		if (r >= 'ㄱ' && r <= 'ㅣ') || (r >= '가' && r <= '힣') {
			return true
		}
	}
	return false
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
