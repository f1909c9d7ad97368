package wikiparse

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// ErrUnknownContentType is returned when a section lookup is asked for a
// content type outside the closed ContentType set.
var ErrUnknownContentType = errors.New("unknown content type")

// partsOfSpeech is the vocabulary of headings that open a definition section.
var partsOfSpeech = []string{
	"noun", "verb", "adjective", "adverb", "determiner",
	"article", "preposition", "conjunction", "proper noun",
	"letter", "character", "phrase", "proverb", "idiom",
	"symbol", "syllable", "numeral", "initialism", "interjection",
}

// relationTypes is the vocabulary of headings that open a related-words section.
var relationTypes = []string{
	"synonyms", "antonyms", "hypernyms", "hyponyms",
	"meronyms", "holonyms", "troponyms", "related terms",
	"derived terms", "coordinate terms",
}

// unwantedSections are dropped before classification.
var unwantedSections = []string{
	"external links",
	"anagrams",
	"references",
	"statistics",
	"see also",
}

// Kind is the closed set of content categories a table-of-contents entry may represent.
type Kind int

const (
	KindUnknown Kind = iota
	KindEtymology
	KindPronunciation
	KindDefinition
	KindRelation
	KindTranslations
)

func (k Kind) String() string {
	switch k {
	case KindEtymology:
		return "etymology"
	case KindPronunciation:
		return "pronunciation"
	case KindDefinition:
		return "definition"
	case KindRelation:
		return "relation"
	case KindTranslations:
		return "translations"
	default:
		return "unknown"
	}
}

// Category is a classified outline label. Label carries the part of speech for
// KindDefinition and the relation type for KindRelation; for the other kinds it
// equals the kind name.
type Category struct {
	Kind  Kind
	Label string
}

// NormalizeLabel strips digits and surrounding whitespace and lowercases,
// so "Etymology 2" and "etymology" compare equal.
func NormalizeLabel(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		if unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(strings.TrimSpace(b.String()))
}

// Classify maps a normalized label to its category. It is total: every label
// either maps to exactly one category or reports false.
func Classify(normalized string) (Category, bool) {
	switch normalized {
	case "etymology":
		return Category{Kind: KindEtymology, Label: normalized}, true
	case "pronunciation":
		return Category{Kind: KindPronunciation, Label: normalized}, true
	case "translations":
		return Category{Kind: KindTranslations, Label: normalized}, true
	}
	if slices.Contains(partsOfSpeech, normalized) {
		return Category{Kind: KindDefinition, Label: normalized}, true
	}
	if slices.Contains(relationTypes, normalized) {
		return Category{Kind: KindRelation, Label: normalized}, true
	}
	return Category{}, false
}

// ContentType selects which outline entries a section lookup returns.
type ContentType int

const (
	ContentEtymologies ContentType = iota + 1
	ContentPronunciation
	ContentDefinitions
	ContentRelated
	ContentTranslations
)

// kind maps a content type to the category kind it selects.
func (c ContentType) kind() (Kind, error) {
	switch c {
	case ContentEtymologies:
		return KindEtymology, nil
	case ContentPronunciation:
		return KindPronunciation, nil
	case ContentDefinitions:
		return KindDefinition, nil
	case ContentRelated:
		return KindRelation, nil
	case ContentTranslations:
		return KindTranslations, nil
	}
	return KindUnknown, fmt.Errorf("content type %d: %w", int(c), ErrUnknownContentType)
}

func isUnwanted(label string) bool {
	return slices.Contains(unwantedSections, strings.ToLower(strings.TrimSpace(label)))
}

