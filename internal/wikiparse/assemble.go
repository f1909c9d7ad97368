package wikiparse

import (
	"github.com/heartmarshall/wikiparse/internal/domain"
)

// Fragments extracted from one language section, each tagged with the outline
// path it came from. They live only for the duration of one parse.

type etymologySection struct {
	path string
	text string
}

type pronunciationSection struct {
	path  string
	texts []string
	audio []string
}

type definitionSection struct {
	path         string
	partOfSpeech string
	text         string
	translations map[string][]string
}

type exampleSection struct {
	path     string
	examples []string
}

type relatedSection struct {
	path     string
	relation string
	words    []string
}

type sections struct {
	etymologies    []etymologySection
	pronunciations []pronunciationSection
	definitions    []definitionSection
	examples       []exampleSection
	related        []relatedSection
}

// attachesTo reports whether a fragment at path belongs to the group rooted at
// groupPath: either nested under it or at the same outline depth.
func attachesTo(groupPath, path string) bool {
	return Owns(groupPath, path) || Depth(path) == Depth(groupPath)
}

// assemble builds one entry per etymology group, or a single implicit group
// when the section has no etymology headings.
func assemble(s sections) []domain.LexicalEntry {
	groups := s.etymologies
	if len(groups) == 0 {
		groups = []etymologySection{{}}
	}

	entries := make([]domain.LexicalEntry, 0, len(groups))
	for _, group := range groups {
		entry := domain.NewLexicalEntry(group.text)

		for _, p := range s.pronunciations {
			if attachesTo(group.path, p.path) {
				entry.Pronunciations = append(entry.Pronunciations, p.texts...)
				entry.AudioLinks = append(entry.AudioLinks, p.audio...)
			}
		}

		for _, def := range s.definitions {
			if !attachesTo(group.path, def.path) {
				continue
			}
			entry.Senses = append(entry.Senses, buildSense(group.path, def, s))
		}

		entries = append(entries, entry)
	}
	return entries
}

func buildSense(groupPath string, def definitionSection, s sections) domain.Sense {
	sense := domain.Sense{
		Text:         def.text,
		PartOfSpeech: def.partOfSpeech,
		Examples:     []string{},
		RelatedWords: make(map[string][]string),
		Translations: def.translations,
	}
	if sense.Translations == nil {
		sense.Translations = make(map[string][]string)
	}

	for _, ex := range s.examples {
		if Owns(def.path, ex.path) {
			sense.Examples = append(sense.Examples, ex.examples...)
		}
	}

	for _, rel := range s.related {
		nested := Owns(def.path, rel.path)
		sibling := Owns(groupPath, rel.path) && Depth(rel.path) == Depth(def.path)
		if !nested && !sibling {
			continue
		}
		sense.RelatedWords[rel.relation] = append(sense.RelatedWords[rel.relation], rel.words...)
	}
	return sense
}
