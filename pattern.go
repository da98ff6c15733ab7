package clinicscrape

import (
	"regexp"
	"unicode/utf8"
)

// addressPatterns are the address grammars in precedence order. Tighter
// grammars come first; the last entries are progressively looser supersets
// of earlier ones and must stay in this order so the same grammar wins for
// a given input.
var addressPatterns = []*regexp.Regexp{
	// "123, Nonhyeon-ro, Gangnam-gu, Seoul, South Korea"
	regexp.MustCompile(`(?i)\d+,\s+[A-Za-z가-힣-]+(?:ro|로|Road|Street|Ave|Avenue),?\s+[A-Za-z가-힣-]+(?:gu|구|Gu|dong|Dong),?\s+(?:Seoul|서울),?\s*(?:South\s+Korea|Republic\s+of\s+Korea|대한민국)?`),

	// "123 Nonhyeon-ro, Gangnam-gu, Seoul, South Korea (3rd floor)"
	regexp.MustCompile(`(?i)\d+\s+[A-Za-z가-힣-]+(?:ro|로|Road|Street|Ave|Avenue),?\s+[A-Za-z가-힣-]+(?:gu|구|Gu|dong|Dong),?\s+(?:Seoul|서울),?\s*(?:South\s+Korea|Republic\s+of\s+Korea)?(?:\s*\([^)]+\))?`),

	// "Star Tower 5th Floor, 123 Teheran-ro, Gangnam-gu, Seoul"
	regexp.MustCompile(`(?i)[A-Za-z가-힣\s]+(?:Building|Tower|Center|빌딩|타워|센터)\s+\d+(?:st|nd|rd|th)?\s+Floor,?\s+\d+,?\s*[A-Za-z가-힣-]+(?:ro|로|daero|대로),?\s+[A-Za-z가-힣-]+(?:gu|구|Gu),?\s+(?:Seoul|서울),?\s*(?:South\s+Korea|Republic\s+of\s+Korea)?`),

	// "123 Teheran-ro, 5th Floor, Gangnam-gu, Seoul"
	regexp.MustCompile(`(?i)\d+,?\s*[A-Za-z가-힣-]+(?:ro|로|Road|Street),?\s+\d+(?:st|nd|rd|th)?\s+Floor,?\s+[A-Za-z가-힣-]+(?:gu|구|District|Disctrict),?\s+(?:Seoul|서울)`),

	// "123 테헤란로, 강남구, 서울"
	regexp.MustCompile(`(?i)\d+,?\s*[가-힣A-Za-z-]+(?:로|길|대로),?\s+[가-힣A-Za-z-]+(?:구|시|동),?\s+(?:서울|Seoul)(?:\s*,?\s*(?:South\s+Korea|Republic\s+of\s+Korea|대한민국))?`),

	// "서울특별시 강남구 테헤란로 123 (역삼동, 4층)"
	regexp.MustCompile(`(?i)서울특?별?시\s+[가-힣]+구\s+[가-힣\s]+(?:로|길|대로)\s*\d+[-\d\s]*(?:[가-힣\s\d,()]+)?`),

	// "123 Teheran-ro, Gangnam-gu, Seoul"
	regexp.MustCompile(`(?i)\d+,?\s*[A-Za-z가-힣-]+(?:ro|로|길),?\s+[A-Za-z가-힣-]+(?:gu|구),?\s+(?:Seoul|서울)`),

	// Same with a parenthesized floor qualifier.
	regexp.MustCompile(`(?i)\d+,?\s*[A-Za-z가-힣-]+(?:ro|로),?\s+[A-Za-z가-힣-]+(?:gu|구),?\s+(?:Seoul|서울)(?:\s*\([^)]*[Ff]loor[^)]*\))?`),

	// Other metropolitan cities.
	regexp.MustCompile(`(?i)\d+[-\d\s]*,?\s*[가-힣A-Za-z\s]+(?:로|길|Road|Street),?\s*[가-힣A-Za-z\s]+(?:구|시|동|District),?\s*(?:부산|대구|인천|광주|대전|울산|Busan|Daegu|Incheon)`),

	// Gangnam, with or without a trailing city.
	regexp.MustCompile(`(?i)\d+,?\s*[A-Za-z가-힣-]+(?:ro|로),?\s+강남(?:구|gu|Gu),?\s*(?:서울|Seoul)?`),

	// Optional floor, tolerates the "Disctrict" misspelling.
	regexp.MustCompile(`(?i)\d+,?\s*[A-Za-z가-힣-]+(?:ro|로|Road|Street),?\s*(?:\d+(?:st|nd|rd|th)?\s*Floor,?\s*)?[A-Za-z가-힣-]+(?:gu|구|District|Disctrict),?\s*(?:Seoul|서울|Gangnam|강남)`),

	// Catch-all.
	regexp.MustCompile(`(?i)(?:\*\s*)?\d+,?\s*[A-Za-z가-힣-]+(?:ro|로),?\s*(?:\d+(?:st|nd|rd|th)?\s*Floor,?\s*)?[A-Za-z가-힣\s-]+(?:gu|구|District|Disctrict),?\s*(?:Seoul|서울)`),
}

// lenientPatterns trade precision for recall. Matches are only length
// checked, never validated.
var lenientPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)\b\d+,?\s*[A-Za-z가-힣-]+(?:ro|로)[^.]*?(?:gu|구|Seoul|서울|Gangnam|강남)`),
	regexp.MustCompile(`(?is)\b(?:835|640)[^.]*?(?:Nonhyeon|Samseong)[^.]*?(?:Gangnam|Seoul)`),
	regexp.MustCompile(`(?is)[^.]*?\b\d+,?\s*[A-Za-z가-힣-]+(?:ro|로)[^.]*?(?:Seoul|서울)[^.]*`),
}

const (
	// minSearchLength is the shortest text worth searching.
	minSearchLength = 10
	// minMatchLength is the shortest cleaned match accepted by FindAddress.
	minMatchLength = 15
	// minLenientLength is the shortest cleaned match accepted by FindAddressLenient.
	minLenientLength = 20
)

// FindAddress searches text for the first address, trying each grammar in
// precedence order and every non-overlapping match of a grammar in text
// order. A match is cleaned with CleanAddress and must pass
// IsPlausibleAddress. The bool result is false when nothing matches.
func FindAddress(text string) (string, bool) {
	if utf8.RuneCountInString(text) < minSearchLength {
		return "", false
	}
	text = collapseWhitespace(text)

	for _, re := range addressPatterns {
		for _, match := range re.FindAllString(text, -1) {
			cleaned := CleanAddress(match)
			if utf8.RuneCountInString(cleaned) > minMatchLength && IsPlausibleAddress(cleaned) {
				return cleaned, true
			}
		}
	}
	return "", false
}

// FindAddressLenient is a last-resort search using looser grammars. The
// first cleaned match longer than 20 characters is accepted without
// IsPlausibleAddress, so callers must treat the result as low confidence.
func FindAddressLenient(text string) (string, bool) {
	if utf8.RuneCountInString(text) < minSearchLength {
		return "", false
	}

	for _, re := range lenientPatterns {
		for _, match := range re.FindAllString(text, -1) {
			cleaned := CleanAddress(match)
			if utf8.RuneCountInString(cleaned) > minLenientLength {
				return cleaned, true
			}
		}
	}
	return "", false
}
