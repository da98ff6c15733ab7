package clinicscrape

import (
	"regexp"
	"strings"
)

// addressPrefixes are label prefixes stripped from the start of an address
// fragment. Only the first match is removed per pass; longer labels come
// before their colon-less forms.
var addressPrefixes = []string{
	"주소:", "위치:", "Address:", "Location:", "찾아오시는길:", "오시는길:",
	"주소", "위치", "Address", "Location", "*", "＊",
}

var (
	// phoneInParensPattern matches a parenthetical that carries a phone
	// number, e.g. "(tel: 02-1234-5678)".
	phoneInParensPattern = regexp.MustCompile(`\s*\([^()]*\b\d{2,3}[-.\s]?\d{3,4}[-.\s]?\d{4}\b[^()]*\)`)

	phoneNumberPattern  = regexp.MustCompile(`\b\d{2,3}[-.\s]?\d{3,4}[-.\s]?\d{4}\b`)
	emailAddressPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// operationalKeywordPattern removes a Korean operational keyword
	// (phone, contact, inquiry, booking, consultation, treatment, business
	// hours, operation) and everything up to the next comma.
	operationalKeywordPattern = regexp.MustCompile(`(?:전화번호|연락처|문의|예약|상담|진료|영업|운영)[:\s]*[^,]*`)

	doubleCommaPattern = regexp.MustCompile(`\s*,\s*,\s*`)
	spaceRunPattern    = regexp.MustCompile(`\s+`)
)

// CleanAddress normalizes a raw text fragment into address form: whitespace
// is collapsed, a leading label such as "주소:" or "Address:" is stripped,
// embedded phone numbers, emails and Korean operational keywords are removed,
// and stray commas are tidied up.
//
// Passes repeat until the text stops changing, so stacked labels like
// "주소: 위치:" are all stripped and CleanAddress(CleanAddress(x)) ==
// CleanAddress(x). Each changing pass only removes characters or folds
// whitespace and commas, so the loop terminates.
func CleanAddress(raw string) string {
	text := raw
	for {
		next := cleanOnce(text)
		if next == text {
			return next
		}
		text = next
	}
}

func cleanOnce(text string) string {
	if text == "" {
		return ""
	}

	text = collapseWhitespace(text)

	for _, prefix := range addressPrefixes {
		if strings.HasPrefix(text, prefix) {
			text = strings.TrimSpace(text[len(prefix):])
			break
		}
	}

	text = strings.TrimRight(text, ".,;:")

	text = phoneInParensPattern.ReplaceAllString(text, "")
	text = phoneNumberPattern.ReplaceAllString(text, "")
	text = emailAddressPattern.ReplaceAllString(text, "")
	text = operationalKeywordPattern.ReplaceAllString(text, "")

	text = doubleCommaPattern.ReplaceAllString(text, ", ")
	text = spaceRunPattern.ReplaceAllString(text, " ")
	text = strings.Trim(text, ", ")

	return strings.TrimSpace(text)
}

// collapseWhitespace replaces every whitespace run, newlines included, with
// a single space and trims both ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
