package wikiparse

import (
	"strings"

	"github.com/heartmarshall/wikiparse/internal/domain"
)

// SummarizeTranslations gathers, for each requested language code, every
// translation across all entries and senses. A trailing qualifier such as
// "Maus (f)" is cut at the first parenthesis and duplicates are removed,
// keeping first-seen order. Every requested language is present in the result.
func SummarizeTranslations(entries []domain.LexicalEntry, languages []string) map[string][]string {
	summary := make(map[string][]string, len(languages))
	for _, lang := range languages {
		summary[lang] = []string{}
	}

	for _, entry := range entries {
		for _, sense := range entry.Senses {
			for _, lang := range languages {
				for _, word := range sense.Translations[lang] {
					word, _, _ = strings.Cut(word, "(")
					if word = strings.TrimSpace(word); word != "" {
						summary[lang] = append(summary[lang], word)
					}
				}
			}
		}
	}

	for lang, words := range summary {
		summary[lang] = DeduplicateStrings(words)
	}
	return summary
}

// DeduplicateStrings returns a new slice with duplicate strings removed,
// preserving the order of first occurrence. Returns nil for nil input.
func DeduplicateStrings(ss []string) []string {
	if ss == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(ss))
	result := make([]string, 0, len(ss))

	for _, s := range ss {
		if _, exists := seen[s]; exists {
			continue
		}
		seen[s] = struct{}{}
		result = append(result, s)
	}

	return result
}
