package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wikiparse/internal/domain"
	"github.com/heartmarshall/wikiparse/internal/metrics"
)

func TestTranslations_Summarizes(t *testing.T) {
	t.Parallel()

	parser := parserReturning(sampleEntries())
	svc := NewService(discardLogger(), fetcherReturning(rodentPage, nil), parser, metrics.New(), Config{})

	got, err := svc.Translations(context.Background(), "vole", []string{"de", " fr ", "de", "es"})
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"de": {"Maus", "Wühlmaus"},
		"fr": {"souris"},
		"es": {},
	}, got)
	assert.Equal(t, "english", parser.ParseCalls()[0].Language)
}

func TestTranslations_Validation(t *testing.T) {
	t.Parallel()

	tooMany := make([]string, MaxTranslationLanguages+1)
	for i := range tooMany {
		tooMany[i] = string(rune('a'+i%26)) + string(rune('a'+i/26))
	}

	tests := []struct {
		name  string
		word  string
		codes []string
		field string
	}{
		{"no codes", "vole", nil, "languages"},
		{"blank codes", "vole", []string{" ", ""}, "languages"},
		{"too many codes", "vole", tooMany, "languages"},
		{"empty word", "", []string{"de"}, "word"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fetcher := fetcherReturning(rodentPage, nil)
			svc := NewService(discardLogger(), fetcher, parserReturning(nil), metrics.New(), Config{})

			_, err := svc.Translations(context.Background(), tt.word, tt.codes)
			require.ErrorIs(t, err, domain.ErrValidation)

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Errors[0].Field)
			assert.Empty(t, fetcher.FetchPageCalls())
		})
	}
}

func TestTranslations_PropagatesLookupError(t *testing.T) {
	t.Parallel()

	upstream := errors.New("status 500")
	svc := NewService(discardLogger(), fetcherReturning("", upstream), parserReturning(nil), metrics.New(), Config{})

	_, err := svc.Translations(context.Background(), "vole", []string{"de"})
	require.ErrorIs(t, err, upstream)
}
