package core

import (
	"encoding/json"
	"strings"
	"testing"
)

func testDoc() *SpecDocument {
	return &SpecDocument{
		SpecName:      "cascade",
		Title:         "CSS Cascading and Inheritance",
		ExtractedAt:   "2026-01-15T12:00:00Z",
		TotalSections: 3,
		CoreSections:  2,
		Sections: []Section{
			{ID: "zeta", Heading: "Zeta", Content: "last alphabetically, first in source", RawLength: 40},
			{ID: "abstract", Heading: "Abstract", Content: "front matter", RawLength: 20},
			{ID: "alpha", Heading: "Alpha", Content: "first alphabetically, last in source", RawLength: 40},
		},
	}
}

func TestSpecDocument_MarshalPreservesSectionOrder(t *testing.T) {
	data, err := json.Marshal(testDoc())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(data)

	zeta := strings.Index(s, `"zeta"`)
	abstract := strings.Index(s, `"abstract"`)
	alpha := strings.Index(s, `"alpha"`)
	if zeta == -1 || abstract == -1 || alpha == -1 {
		t.Fatalf("missing section keys in %s", s)
	}
	if !(zeta < abstract && abstract < alpha) {
		t.Errorf("section keys not in source order: zeta=%d abstract=%d alpha=%d", zeta, abstract, alpha)
	}
}

func TestSpecDocument_RoundTrip(t *testing.T) {
	orig := testDoc()
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got SpecDocument
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.SpecName != orig.SpecName || got.Title != orig.Title || got.ExtractedAt != orig.ExtractedAt {
		t.Errorf("header fields changed: %+v", got)
	}
	if got.TotalSections != 3 || got.CoreSections != 2 {
		t.Errorf("counts changed: total=%d core=%d", got.TotalSections, got.CoreSections)
	}
	if len(got.Sections) != len(orig.Sections) {
		t.Fatalf("expected %d sections, got %d", len(orig.Sections), len(got.Sections))
	}
	for i := range orig.Sections {
		if got.Sections[i] != orig.Sections[i] {
			t.Errorf("section %d changed: expected %+v, got %+v", i, orig.Sections[i], got.Sections[i])
		}
	}
}

func TestSpecDocument_SectionByID(t *testing.T) {
	doc := testDoc()
	if s, ok := doc.SectionByID("alpha"); !ok || s.Heading != "Alpha" {
		t.Errorf("expected alpha section, got %+v (ok=%v)", s, ok)
	}
	if _, ok := doc.SectionByID("missing"); ok {
		t.Error("expected miss for unknown id")
	}
}
