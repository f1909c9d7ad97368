package wikiparse

import (
	"log/slog"

	"github.com/PuerkitoBio/goquery"
)

// locator finds the nodes owning a section's content, starting from the
// heading an outline entry points at. It only reads the document.
type locator struct {
	anchors map[string]*goquery.Selection
	log     *slog.Logger
}

func newLocator(doc *goquery.Document, log *slog.Logger) *locator {
	anchors := make(map[string]*goquery.Selection)
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		if _, seen := anchors[id]; !seen {
			anchors[id] = s
		}
	})
	return &locator{anchors: anchors, log: log}
}

// block returns the heading node that encloses the anchor.
func (l *locator) block(anchorID string) *goquery.Selection {
	anchor, ok := l.anchors[anchorID]
	if !ok {
		l.log.Debug("anchor not found", slog.String("anchor", anchorID))
		return nil
	}

	block := anchor
	if !isHeading(block) {
		block = block.Parent()
	}
	// Newer skins wrap the <hN> in a div.mw-heading; siblings hang off the wrapper.
	if block.Parent().HasClass("mw-heading") {
		block = block.Parent()
	}
	return block
}

// walk advances through the siblings following start until match accepts one.
// A heading ends the walk unmatched. prev is the sibling visited just before
// the match, or nil when the match directly follows start.
func walk(start *goquery.Selection, match func(*goquery.Selection) bool) (found, prev *goquery.Selection) {
	for cur := start.Next(); cur.Length() > 0; cur = cur.Next() {
		if isHeading(cur) {
			return nil, nil
		}
		if match(cur) {
			return cur, prev
		}
		prev = cur
	}
	return nil, nil
}

// pronunciationList returns the first list container after the heading.
func (l *locator) pronunciationList(anchorID string) *goquery.Selection {
	block := l.block(anchorID)
	if block == nil {
		return nil
	}
	list, _ := walk(block, func(s *goquery.Selection) bool { return s.Is("ul") })
	if list == nil {
		l.log.Debug("pronunciation list not found", slog.String("anchor", anchorID))
	}
	return list
}

// definitionList returns the first ordered list after the heading and the
// node right before it, which usually carries the headword line.
func (l *locator) definitionList(anchorID string) (list, qualifier *goquery.Selection) {
	block := l.block(anchorID)
	if block == nil {
		return nil, nil
	}
	list, qualifier = walk(block, func(s *goquery.Selection) bool { return s.Is("ol") })
	if list == nil {
		l.log.Debug("definition list not found", slog.String("anchor", anchorID))
	}
	return list, qualifier
}

// etymologyRoot returns the last sibling before the next heading or division.
func (l *locator) etymologyRoot(anchorID string) *goquery.Selection {
	block := l.block(anchorID)
	if block == nil {
		return nil
	}
	var last *goquery.Selection
	for cur := block.Next(); cur.Length() > 0; cur = cur.Next() {
		if isHeading(cur) || cur.Is("div") {
			break
		}
		last = cur
	}
	return last
}

// relatedRoot returns the first sibling holding at least one list item.
func (l *locator) relatedRoot(anchorID string) *goquery.Selection {
	block := l.block(anchorID)
	if block == nil {
		return nil
	}
	root, _ := walk(block, func(s *goquery.Selection) bool { return s.Find("li").Length() > 0 })
	if root == nil {
		l.log.Debug("related words list not found", slog.String("anchor", anchorID))
	}
	return root
}

func isHeading(s *goquery.Selection) bool {
	return s.Is("h1, h2, h3, h4, h5, h6") || s.HasClass("mw-heading")
}
