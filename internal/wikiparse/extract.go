package wikiparse

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Extractors never modify the parsed document. Where content has to be
// dropped before reading text they work on a detached clone, and nodes already
// read are tracked in a consumed set instead of being cleared.

type consumedSet map[*html.Node]struct{}

func (c consumedSet) mark(s *goquery.Selection) {
	for _, n := range s.Nodes {
		c[n] = struct{}{}
	}
}

// covers reports whether s or one of its ancestors was already consumed.
func (c consumedSet) covers(s *goquery.Selection) bool {
	if s.Length() == 0 {
		return false
	}
	for n := s.Get(0); n != nil; n = n.Parent {
		if _, ok := c[n]; ok {
			return true
		}
	}
	return false
}

// extractEtymology reads a paragraph verbatim, or one line per list item.
func extractEtymology(root *goquery.Selection) string {
	if root == nil {
		return ""
	}
	if root.Is("p") {
		return root.Text()
	}
	var b strings.Builder
	root.Find("li").Each(func(_ int, li *goquery.Selection) {
		b.WriteString(li.Text())
		b.WriteString("\n")
	})
	return b.String()
}

// extractDefinitions renders the qualifier line followed by one line per list
// item, nested items included. A line carries the item's full text, so inline
// examples and quotations stay part of the definition variant.
func extractDefinitions(list, qualifier *goquery.Selection) string {
	var b strings.Builder
	if qualifier != nil {
		b.WriteString(strings.TrimSpace(qualifier.Text()))
	}
	b.WriteString("\n")
	if list == nil {
		return b.String()
	}

	list.Find("li").Each(func(_ int, li *goquery.Selection) {
		b.WriteString(stripNewlines(li.Text()))
		b.WriteString("\n")
	})
	return b.String()
}

// extractExamples collects description-detail texts under the definition
// list, skipping nested sub-example lists and bare usage labels like "(rare)".
func extractExamples(list *goquery.Selection) []string {
	examples := []string{}
	if list == nil {
		return examples
	}

	work := list.Clone()
	work.Find("ul").Remove()

	consumed := make(consumedSet)
	work.Find("dd").Each(func(_ int, dd *goquery.Selection) {
		if consumed.covers(dd) {
			return
		}
		consumed.mark(dd)

		text := strings.TrimSpace(dd.Text())
		if text == "" || isParenthetical(text) {
			return
		}
		examples = append(examples, text)
	})
	return examples
}

// extractPronunciations splits list items into spoken forms and audio links.
// Footnote markers are dropped first. An item carrying media contributes only
// its source URL.
func extractPronunciations(list *goquery.Selection) (texts, audio []string) {
	texts, audio = []string{}, []string{}
	if list == nil {
		return texts, audio
	}

	work := list.Clone()
	work.Find("sup").Remove()

	consumed := make(consumedSet)
	work.Find("li").Each(func(_ int, li *goquery.Selection) {
		if consumed.covers(li) {
			return
		}

		media := li.Find("div.mediaContainer")
		if media.Length() == 0 {
			media = li.Find("audio")
		}
		if media.Length() > 0 {
			media.Each(func(_ int, m *goquery.Selection) {
				if src := mediaSource(m); src != "" {
					audio = append(audio, src)
				}
			})
			consumed.mark(li)
			return
		}

		if text := strings.TrimSpace(li.Text()); text != "" {
			texts = append(texts, text)
		}
	})
	return texts, audio
}

func mediaSource(m *goquery.Selection) string {
	if src, ok := m.Find("source").First().Attr("src"); ok {
		return src
	}
	src, _ := m.Attr("src")
	return src
}

// extractRelated returns the text of every list item under root.
func extractRelated(root *goquery.Selection) []string {
	words := []string{}
	if root == nil {
		return words
	}
	root.Find("li").Each(func(_ int, li *goquery.Selection) {
		words = append(words, strings.TrimSpace(li.Text()))
	})
	return words
}

func stripNewlines(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", "")
}

// isParenthetical reports whether s opens with "(" and closes with ")". Text
// between two groups, as in "(a) text (b)", still counts.
func isParenthetical(s string) bool {
	return strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
}
