package ocr

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultPlatePattern matches Indian-style registrations such as
// MH15GF5187 or DL8CAF5098: two letters, one or two digits, a one to three
// letter series, three or four digits. The grammar is a policy choice per
// deployment region, so it is configuration rather than a constant of the
// extractor.
const DefaultPlatePattern = `[A-Z]{2}[0-9]{1,2}[A-Z]{1,3}[0-9]{3,4}`

// CleanText uppercases raw OCR output and strips every character outside
// A-Z0-9. Spaces, punctuation, and newlines do not survive.
func CleanText(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, strings.ToUpper(s))
}

// MatchPlate cleans raw OCR output and searches it for the first substring
// matching pattern. An empty pattern skips the grammar filter and returns
// the cleaned text. ErrNoPlate is returned when nothing matches.
func MatchPlate(raw, pattern string) (string, error) {
	cleaned := CleanText(raw)
	if pattern == "" {
		if cleaned == "" {
			return "", ErrNoPlate
		}
		return cleaned, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("plate pattern %q: %w", pattern, err)
	}
	match := re.FindString(cleaned)
	if match == "" {
		return "", ErrNoPlate
	}
	return match, nil
}
