package wikiparse

import (
	"reflect"
	"testing"

	"github.com/heartmarshall/wikiparse/internal/domain"
)

func TestSummarizeTranslations(t *testing.T) {
	t.Parallel()

	entries := []domain.LexicalEntry{
		{Senses: []domain.Sense{
			{Translations: map[string][]string{"de": {"rennen", "laufen (ugs.)"}, "fr": {"courir"}}},
			{Translations: map[string][]string{"de": {"laufen"}}},
		}},
		{Senses: []domain.Sense{
			{Translations: map[string][]string{"de": {"  (veraltet)"}, "es": {"correr"}}},
		}},
	}

	got := SummarizeTranslations(entries, []string{"de", "fr", "it"})
	want := map[string][]string{
		"de": {"rennen", "laufen"},
		"fr": {"courir"},
		"it": {},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SummarizeTranslations() = %v, want %v", got, want)
	}
}

func TestDeduplicateStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil", nil, nil},
		{"empty", []string{}, []string{}},
		{"no duplicates", []string{"a", "b"}, []string{"a", "b"}},
		{"keeps first occurrence", []string{"b", "a", "b", "c", "a"}, []string{"b", "a", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeduplicateStrings(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DeduplicateStrings(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
