package wikiparse

import (
	"errors"
	"reflect"
	"testing"
)

func TestDepth(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"":      0,
		"1":     0,
		"1.2":   1,
		"2.1.3": 2,
	}
	for path, want := range tests {
		if got := Depth(path); got != want {
			t.Errorf("Depth(%q) = %d, want %d", path, got, want)
		}
	}
}

func TestOwns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		owner, path string
		want        bool
	}{
		{"", "1.2", true},
		{"2", "2.1", true},
		{"1.1", "1.1.2", true},
		{"1.1", "1.1", true},
		{"1.1", "1.10", false},
		{"1.1", "1.2", false},
		{"2.1", "2.3", false},
		{"1.1.2", "1.1", false},
	}
	for _, tt := range tests {
		if got := Owns(tt.owner, tt.path); got != tt.want {
			t.Errorf("Owns(%q, %q) = %v, want %v", tt.owner, tt.path, got, tt.want)
		}
	}
}

func TestReadOutline(t *testing.T) {
	t.Parallel()

	doc := loadFixture(t, "mouse.html")
	outline := ReadOutline(doc)

	if len(outline) != 11 {
		t.Fatalf("len(outline) = %d, want 11", len(outline))
	}
	first := outline[0]
	if first.Path != "1" || first.Label != "English" || first.AnchorID != "English" {
		t.Errorf("outline[0] = %+v", first)
	}
	last := outline[len(outline)-1]
	if last.Path != "2.1" || last.Label != "Noun" || last.AnchorID != "Noun_2" {
		t.Errorf("outline[last] = %+v", last)
	}
}

func TestReadOutline_NoTOC(t *testing.T) {
	t.Parallel()

	doc := newDoc(t, `<html><body><h2>English</h2></body></html>`)
	if got := ReadOutline(doc); len(got) != 0 {
		t.Errorf("ReadOutline() = %v, want empty", got)
	}
}

func TestFindLanguage(t *testing.T) {
	t.Parallel()

	outline := []OutlineEntry{
		{Path: "1", Label: "English", AnchorID: "English"},
		{Path: "1.1", Label: "Noun", AnchorID: "Noun"},
		{Path: "2", Label: "German", AnchorID: "German"},
	}

	got, ok := FindLanguage(outline, "GERMAN")
	if !ok || got.Path != "2" {
		t.Errorf("FindLanguage(german) = %+v, %v", got, ok)
	}
	if _, ok := FindLanguage(outline, "french"); ok {
		t.Error("FindLanguage(french) found an entry")
	}
}

func TestScopeToLanguage(t *testing.T) {
	t.Parallel()

	outline := []OutlineEntry{
		{Path: "1", Label: "English"},
		{Path: "1.1", Label: "Etymology"},
		{Path: "1.2", Label: "Noun"},
		{Path: "1.3", Label: "Anagrams"},
		{Path: "1.4", Label: "See also"},
		{Path: "2", Label: "German"},
		{Path: "2.1", Label: "Noun"},
		{Path: "10", Label: "Latin"},
		{Path: "10.1", Label: "Verb"},
	}

	scoped := ScopeToLanguage(outline, outline[0])
	if len(scoped) != 2 {
		t.Fatalf("len(scoped) = %d, want 2: %v", len(scoped), scoped)
	}
	for _, e := range scoped {
		if !Owns("1", e.Path) {
			t.Errorf("entry %+v escaped the language section", e)
		}
	}
}

func TestScopeToLanguage_DepthFallbackOnlyWhenNothingNested(t *testing.T) {
	t.Parallel()

	outline := []OutlineEntry{
		{Path: "1", Label: "English"},
		{Path: "1.1", Label: "Noun"},
		{Path: "2", Label: "German"},
		{Path: "2.1", Label: "Noun"},
		{Path: "3", Label: "Latin"},
	}

	nested := ScopeToLanguage(outline, outline[0])
	if want := []OutlineEntry{{Path: "1.1", Label: "Noun"}}; !reflect.DeepEqual(nested, want) {
		t.Errorf("English scope = %v, want %v", nested, want)
	}

	// Latin has no nested entries, so every entry one level deeper is kept.
	fallback := ScopeToLanguage(outline, outline[4])
	if len(fallback) != 2 || fallback[0].Path != "1.1" || fallback[1].Path != "2.1" {
		t.Errorf("Latin scope = %v, want the depth-2 entries", fallback)
	}
}

func TestIDList(t *testing.T) {
	t.Parallel()

	doc := loadFixture(t, "mouse.html")
	heading, ok := FindLanguage(ReadOutline(doc), "english")
	if !ok {
		t.Fatal("english not found")
	}
	scoped := ScopeToLanguage(ReadOutline(doc), heading)

	defs, err := IDList(scoped, ContentDefinitions)
	if err != nil {
		t.Fatalf("IDList() error = %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("len(defs) = %d, want 2", len(defs))
	}
	if defs[0] != (SectionRef{Path: "1.3", AnchorID: "Noun", Label: "noun"}) {
		t.Errorf("defs[0] = %+v", defs[0])
	}
	if defs[1].Label != "verb" {
		t.Errorf("defs[1].Label = %q, want verb", defs[1].Label)
	}

	trans, _ := IDList(scoped, ContentTranslations)
	if len(trans) != 2 {
		t.Errorf("len(translations) = %d, want 2", len(trans))
	}

	rel, _ := IDList(scoped, ContentRelated)
	if len(rel) != 1 || rel[0].Label != "synonyms" || rel[0].Path != "1.4.1" {
		t.Errorf("related = %+v", rel)
	}
}

func TestIDList_UnknownContentType(t *testing.T) {
	t.Parallel()

	_, err := IDList([]OutlineEntry{{Path: "1.1", Label: "Noun"}}, ContentType(99))
	if !errors.Is(err, ErrUnknownContentType) {
		t.Errorf("IDList() error = %v, want ErrUnknownContentType", err)
	}
}
