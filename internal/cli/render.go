package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/heartmarshall/wikiparse/internal/domain"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

type entriesOutput struct {
	Word     string                `json:"word"`
	Language string                `json:"language"`
	Entries  []domain.LexicalEntry `json:"entries"`
}

func renderEntries(w io.Writer, format, word, language string, entries []domain.LexicalEntry) error {
	if format == formatJSON {
		return writeJSON(w, entriesOutput{Word: word, Language: language, Entries: entries})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", word, language)
	if len(entries) == 0 {
		b.WriteString("  no entries\n")
	}
	for i, entry := range entries {
		fmt.Fprintf(&b, "\nEntry %d\n", i+1)
		if text := strings.TrimSpace(entry.Etymology); text != "" {
			fmt.Fprintf(&b, "  Etymology: %s\n", oneLine(text))
		}
		if len(entry.Pronunciations) > 0 {
			fmt.Fprintf(&b, "  Pronunciation: %s\n", strings.Join(entry.Pronunciations, "; "))
		}
		if len(entry.AudioLinks) > 0 {
			fmt.Fprintf(&b, "  Audio: %s\n", strings.Join(entry.AudioLinks, " "))
		}
		for _, sense := range entry.Senses {
			writeSense(&b, sense)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSense(b *strings.Builder, sense domain.Sense) {
	fmt.Fprintf(b, "  [%s]\n", sense.PartOfSpeech)
	for _, line := range strings.Split(sense.Text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			fmt.Fprintf(b, "    %s\n", line)
		}
	}
	for _, ex := range sense.Examples {
		fmt.Fprintf(b, "      e.g. %s\n", ex)
	}
	for _, relation := range sortedKeys(sense.RelatedWords) {
		fmt.Fprintf(b, "    %s: %s\n", relation, strings.Join(sense.RelatedWords[relation], ", "))
	}
	for _, lang := range sortedKeys(sense.Translations) {
		fmt.Fprintf(b, "    -> %s: %s\n", lang, strings.Join(sense.Translations[lang], ", "))
	}
}

func renderTranslations(w io.Writer, format string, codes []string, summary map[string][]string) error {
	if format == formatJSON {
		return writeJSON(w, summary)
	}
	for _, code := range codes {
		if _, err := fmt.Fprintf(w, "%s: %s\n", code, strings.Join(summary[code], ", ")); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
