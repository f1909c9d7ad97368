// Package wikiparse extracts lexical entries (etymologies, senses, examples,
// pronunciations, related words, translations) from a rendered Wiktionary page.
//
// Content is correlated through the page's table of contents: every heading
// carries a dotted outline path, and fragments are attached to senses and
// etymology groups by path ownership. Translation tables carry no sense id and
// are matched to definition lines heuristically.
//
// Parsing is read-only over the document and keeps no state between calls.
package wikiparse

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/heartmarshall/wikiparse/internal/domain"
)

// DefaultLanguage is used when neither the call nor the parser names one.
const DefaultLanguage = "english"

// Parser turns pages into lexical entries for a target language.
type Parser struct {
	log *slog.Logger

	mu       sync.RWMutex
	language string
}

// NewParser creates a Parser targeting DefaultLanguage.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{
		log:      logger.With("component", "wikiparse"),
		language: DefaultLanguage,
	}
}

// SetDefaultLanguage changes the language used when a call passes none.
// The name is lowercased; an empty name is ignored.
func (p *Parser) SetDefaultLanguage(language string) {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return
	}
	p.mu.Lock()
	p.language = language
	p.mu.Unlock()
}

// DefaultLanguage returns the language used when a call passes none.
func (p *Parser) DefaultLanguage() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.language
}

// Parse reads page markup and extracts the entries for language (or the
// default language when empty). A page without that language yields an empty
// slice, not an error.
func (p *Parser) Parse(r io.Reader, language string) ([]domain.LexicalEntry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("wikiparse: read document: %w", err)
	}
	return p.ParseDocument(doc, language), nil
}

// ParseDocument extracts entries from an already parsed page.
func (p *Parser) ParseDocument(doc *goquery.Document, language string) []domain.LexicalEntry {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		language = p.DefaultLanguage()
	}

	outline := ReadOutline(doc)
	heading, ok := FindLanguage(outline, language)
	if !ok {
		p.log.Debug("language not on page", slog.String("language", language))
		return []domain.LexicalEntry{}
	}
	scoped := ScopeToLanguage(outline, heading)

	loc := newLocator(doc, p.log)
	s := p.extract(doc, loc, scoped)
	entries := assemble(s)

	p.log.Debug("page parsed",
		slog.String("language", language),
		slog.Int("outline_entries", len(scoped)),
		slog.Int("entries", len(entries)),
	)
	return entries
}

// extract runs every category extractor over the scoped outline.
func (p *Parser) extract(doc *goquery.Document, loc *locator, scoped []OutlineEntry) sections {
	var s sections

	for _, ref := range mustIDList(scoped, ContentEtymologies) {
		s.etymologies = append(s.etymologies, etymologySection{
			path: ref.Path,
			text: extractEtymology(loc.etymologyRoot(ref.AnchorID)),
		})
	}

	for _, ref := range mustIDList(scoped, ContentPronunciation) {
		texts, audio := extractPronunciations(loc.pronunciationList(ref.AnchorID))
		s.pronunciations = append(s.pronunciations, pronunciationSection{
			path:  ref.Path,
			texts: texts,
			audio: audio,
		})
	}

	var blocks []TranslationBlock
	if len(mustIDList(scoped, ContentTranslations)) > 0 {
		blocks = readTranslationBlocks(doc)
	}

	for _, ref := range mustIDList(scoped, ContentDefinitions) {
		list, qualifier := loc.definitionList(ref.AnchorID)
		text := extractDefinitions(list, qualifier)
		s.definitions = append(s.definitions, definitionSection{
			path:         ref.Path,
			partOfSpeech: ref.Label,
			text:         text,
			translations: matchTranslations(ref.Label, text, blocks),
		})
		s.examples = append(s.examples, exampleSection{
			path:     ref.Path,
			examples: extractExamples(list),
		})
	}

	for _, ref := range mustIDList(scoped, ContentRelated) {
		s.related = append(s.related, relatedSection{
			path:     ref.Path,
			relation: ref.Label,
			words:    extractRelated(loc.relatedRoot(ref.AnchorID)),
		})
	}

	return s
}

// mustIDList is IDList for the content types declared in this package; an
// error here is a programming mistake.
func mustIDList(entries []OutlineEntry, ct ContentType) []SectionRef {
	refs, err := IDList(entries, ct)
	if err != nil {
		panic(err)
	}
	return refs
}
