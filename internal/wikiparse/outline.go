package wikiparse

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// OutlineEntry is one table-of-contents entry.
type OutlineEntry struct {
	Path     string // dotted-decimal, e.g. "2.1.3"
	Label    string
	AnchorID string
}

// SectionRef is an outline entry that passed classification for a content type.
// Label is the normalized label (part of speech, relation type, ...).
type SectionRef struct {
	Path     string
	AnchorID string
	Label    string
}

// Depth returns the number of dots in an outline path.
func Depth(path string) int {
	return strings.Count(path, ".")
}

// Owns reports whether path lies within the outline subtree rooted at owner.
// The empty owner is the implicit root and owns every path. Matching respects
// segment boundaries: "1.1" owns "1.1.2" but not "1.10".
func Owns(owner, path string) bool {
	if owner == "" || owner == path {
		return true
	}
	return strings.HasPrefix(path, owner+".")
}

// ReadOutline collects the table-of-contents entries of a page in document
// order. Each label node is paired with the numbering node preceding it; the
// enclosing link supplies the anchor id.
func ReadOutline(doc *goquery.Document) []OutlineEntry {
	var entries []OutlineEntry
	doc.Find("span.toctext").Each(func(_ int, s *goquery.Selection) {
		path := strings.TrimSpace(s.Prev().Text())
		if path == "" {
			return
		}
		href, _ := s.Closest("a").Attr("href")
		entries = append(entries, OutlineEntry{
			Path:     path,
			Label:    strings.TrimSpace(s.Text()),
			AnchorID: strings.TrimPrefix(href, "#"),
		})
	})
	return entries
}

// FindLanguage returns the outline entry whose label names the language.
func FindLanguage(entries []OutlineEntry, language string) (OutlineEntry, bool) {
	language = strings.ToLower(strings.TrimSpace(language))
	for _, e := range entries {
		if strings.ToLower(e.Label) == language {
			return e, true
		}
	}
	return OutlineEntry{}, false
}

// ScopeToLanguage keeps the entries nested under the language heading and
// drops unwanted sections. When nothing is nested by path prefix, entries one
// level deeper than the heading are kept instead.
func ScopeToLanguage(entries []OutlineEntry, heading OutlineEntry) []OutlineEntry {
	prefix := heading.Path + "."

	var scoped []OutlineEntry
	for _, e := range entries {
		if strings.HasPrefix(e.Path, prefix) {
			scoped = append(scoped, e)
		}
	}
	if len(scoped) == 0 {
		want := Depth(heading.Path) + 1
		for _, e := range entries {
			if Depth(e.Path) == want {
				scoped = append(scoped, e)
			}
		}
	}

	kept := scoped[:0]
	for _, e := range scoped {
		if !isUnwanted(e.Label) {
			kept = append(kept, e)
		}
	}
	return kept
}

// IDList returns the entries of the requested content type as
// (path, anchor id, normalized label) references, preserving document order.
func IDList(entries []OutlineEntry, ct ContentType) ([]SectionRef, error) {
	want, err := ct.kind()
	if err != nil {
		return nil, err
	}

	var refs []SectionRef
	for _, e := range entries {
		cat, ok := Classify(NormalizeLabel(e.Label))
		if !ok || cat.Kind != want {
			continue
		}
		refs = append(refs, SectionRef{Path: e.Path, AnchorID: e.AnchorID, Label: cat.Label})
	}
	return refs, nil
}
