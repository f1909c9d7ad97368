package wikiparse

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Matching thresholds. They are empirically tuned; change them only together
// with the boundary tests in translation_test.go.
const (
	// MaxTokenGap rejects a pairing when the token counts differ by this much or more.
	MaxTokenGap = 5
	// TranslationSlack is how many translation tokens may be missing for a
	// match on the translation side alone.
	TranslationSlack = 1
	// DefinitionSlack is how many definition tokens may be missing when the
	// match relies on both sides.
	DefinitionSlack = 2
	// LooseTranslationSlack is the translation-side allowance paired with DefinitionSlack.
	LooseTranslationSlack = 2
)

const (
	blockKeyPrefix    = "Translations-"
	anchorCommaEscape = ".2C"
	nounPartOfSpeech  = "noun"
)

var (
	stopwords = map[string]struct{}{
		"to": {}, "a": {}, "the": {}, "as": {}, "an": {},
	}
	asideRe = regexp.MustCompile(`[(\[].*?[)\]]`)
)

// TranslationBlock is one translation table, keyed by the id of its frame.
type TranslationBlock struct {
	Key        string
	ByLanguage map[string][]string
	Languages  []string // ByLanguage keys in first-seen order
}

// ComparisonString turns a block key such as "Translations-small_rodent.2C_mouse"
// into the gloss it encodes: "small rodent, mouse".
func (b TranslationBlock) ComparisonString() string {
	s := strings.Replace(b.Key, blockKeyPrefix, "", 1)
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ReplaceAll(s, anchorCommaEscape, ",")
}

// readTranslationBlocks collects every translation frame of the page in
// document order. Within a frame each language-tagged span holding a link
// contributes the link title.
func readTranslationBlocks(doc *goquery.Document) []TranslationBlock {
	var blocks []TranslationBlock
	doc.Find("div.NavFrame").Each(func(_ int, frame *goquery.Selection) {
		id, ok := frame.Attr("id")
		if !ok || !strings.Contains(id, "Translations") {
			return
		}
		block := TranslationBlock{Key: id, ByLanguage: make(map[string][]string)}
		frame.Find("li span[lang]").Each(func(_ int, span *goquery.Selection) {
			link := span.Find("a").First()
			if link.Length() == 0 {
				return
			}
			lang, _ := span.Attr("lang")
			title, _ := link.Attr("title")
			if _, seen := block.ByLanguage[lang]; !seen {
				block.Languages = append(block.Languages, lang)
			}
			block.ByLanguage[lang] = append(block.ByLanguage[lang], title)
		})
		blocks = append(blocks, block)
	})
	return blocks
}

// MatchDefinition finds the first definition line sufficiently similar to the
// translation gloss by bag-of-words overlap. It returns the trimmed line.
func MatchDefinition(definitions []string, transDefinition string) (string, bool) {
	transWords := tokenize(transDefinition)

	for _, definition := range definitions {
		filtered := asideRe.ReplaceAllString(strings.ToLower(definition), "")
		words := tokenize(filtered)

		if len(words) == 0 || (strings.Contains(definition, "(") && len(words) <= 1) {
			continue
		}
		if words[len(words)-1] == "." {
			words = words[:len(words)-1]
			if len(words) == 0 {
				continue
			}
		}

		if abs(len(words)-len(transWords)) >= MaxTokenGap {
			continue
		}

		overlap := countOverlap(words, transWords)
		if overlap == 0 {
			continue
		}
		if accept(overlap, len(words), len(transWords)) {
			return strings.TrimSpace(definition), true
		}
	}
	return "", false
}

func accept(overlap, defLen, transLen int) bool {
	if overlap >= transLen-TranslationSlack {
		return true
	}
	return overlap >= defLen-DefinitionSlack && overlap >= transLen-LooseTranslationSlack
}

// tokenize keeps the text after the first colon, drops commas and semicolons,
// lowercases, splits on whitespace and removes stopwords.
func tokenize(s string) []string {
	if _, after, found := strings.Cut(s, ":"); found {
		s = after
	}
	s = strings.NewReplacer(",", "", ";", "").Replace(strings.ToLower(s))

	var words []string
	for _, w := range strings.Fields(s) {
		if _, stop := stopwords[w]; stop {
			continue
		}
		words = append(words, w)
	}
	return words
}

// countOverlap counts translation tokens present among the definition tokens.
func countOverlap(defWords, transWords []string) int {
	set := make(map[string]struct{}, len(defWords))
	for _, w := range defWords {
		set[w] = struct{}{}
	}
	n := 0
	for _, w := range transWords {
		if _, ok := set[w]; ok {
			n++
		}
	}
	return n
}

// matchTranslations folds every block matching one of the sense's definition
// lines into a language → words mapping. Nouns are never matched.
func matchTranslations(partOfSpeech, senseText string, blocks []TranslationBlock) map[string][]string {
	translations := make(map[string][]string)
	if partOfSpeech == nounPartOfSpeech {
		return translations
	}

	lines := strings.Split(senseText, "\n")
	for _, block := range blocks {
		if _, ok := MatchDefinition(lines, block.ComparisonString()); !ok {
			continue
		}
		for _, lang := range block.Languages {
			translations[lang] = append(translations[lang], block.ByLanguage[lang]...)
		}
	}
	return translations
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
