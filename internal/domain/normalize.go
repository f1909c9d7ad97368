package domain

import (
	"strings"
)

// NormalizeWord prepares a headword for lookup:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case is preserved: page titles are case-sensitive ("Polish" vs "polish").
func NormalizeWord(word string) string {
	return strings.Join(strings.Fields(word), " ")
}

// NormalizeText prepares text for case-insensitive comparison:
// NormalizeWord followed by lowercasing. Diacritics, hyphens, and
// apostrophes are preserved.
func NormalizeText(text string) string {
	return strings.ToLower(NormalizeWord(text))
}
