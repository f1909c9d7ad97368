package lookup

import (
	"context"
	"strings"

	"github.com/heartmarshall/wikiparse/internal/domain"
	"github.com/heartmarshall/wikiparse/internal/wikiparse"
)

// MaxTranslationLanguages bounds the language codes accepted per request.
const MaxTranslationLanguages = 20

// Translations looks the word up in the default language and gathers its
// translations into each requested language code.
func (s *Service) Translations(ctx context.Context, word string, codes []string) (map[string][]string, error) {
	codes = normalizeCodes(codes)
	if len(codes) == 0 {
		return nil, domain.NewValidationError("languages", "at least one language code is required")
	}
	if len(codes) > MaxTranslationLanguages {
		return nil, domain.NewValidationError("languages", "too many language codes")
	}

	entries, err := s.Lookup(ctx, word, "")
	if err != nil {
		return nil, err
	}
	return wikiparse.SummarizeTranslations(entries, codes), nil
}

// normalizeCodes trims codes and drops blanks and duplicates. Codes are
// matched against lang attributes verbatim, so case is kept.
func normalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return wikiparse.DeduplicateStrings(out)
}
