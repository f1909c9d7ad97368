package domain

import (
	"time"

	"github.com/google/uuid"
)

// LexicalEntry is one etymology group of a word in one language.
// A page without etymology sections yields a single implicit group.
type LexicalEntry struct {
	Etymology      string   `json:"etymology"`
	Pronunciations []string `json:"pronunciations"`
	AudioLinks     []string `json:"audioLinks"`
	Senses         []Sense  `json:"senses"`
}

// Sense is one definition block of a word under one part of speech.
// Text holds the qualifier line followed by one line per definition variant.
type Sense struct {
	Text         string              `json:"text"`
	PartOfSpeech string              `json:"partOfSpeech"`
	Examples     []string            `json:"examples"`
	RelatedWords map[string][]string `json:"relatedWords"`
	Translations map[string][]string `json:"translations"`
}

// NewLexicalEntry returns an entry with empty, non-nil collections.
func NewLexicalEntry(etymology string) LexicalEntry {
	return LexicalEntry{
		Etymology:      etymology,
		Pronunciations: []string{},
		AudioLinks:     []string{},
		Senses:         []Sense{},
	}
}

// Lookup is a stored parse result for a word in one language.
// UpdatedAt moves forward each time the word is parsed again.
type Lookup struct {
	ID        uuid.UUID
	Word      string
	Language  string
	Entries   []LexicalEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stale reports whether the stored result is older than maxAge at now.
// A non-positive maxAge never expires.
func (l Lookup) Stale(now time.Time, maxAge time.Duration) bool {
	return maxAge > 0 && now.Sub(l.UpdatedAt) > maxAge
}
