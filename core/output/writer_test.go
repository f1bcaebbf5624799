package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/specpipe/core"
)

func TestWriter_WriteAndLoad(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := &core.SpecDocument{
		SpecName:      "cascade",
		Title:         "Cascade",
		ExtractedAt:   "2026-01-15T12:00:00Z",
		TotalSections: 1,
		CoreSections:  1,
		Sections: []core.Section{
			{ID: "intro", Heading: "Intro", Content: "Hello.", RawLength: 30},
		},
	}

	path, err := w.Write(doc)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if path != filepath.Join(dir, "cascade.json") {
		t.Errorf("unexpected path %q", path)
	}

	got, err := w.Load("cascade")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.SpecName != "cascade" || len(got.Sections) != 1 || got.Sections[0].ID != "intro" {
		t.Errorf("loaded document differs: %+v", got)
	}
}

func TestWriter_LoadMissing(t *testing.T) {
	w, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := w.Load("nope"); err == nil {
		t.Error("expected error for missing document")
	}
}

func TestWriter_ReingestOverwritesWhole(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := &core.SpecDocument{
		SpecName:      "box",
		TotalSections: 2,
		Sections: []core.Section{
			{ID: "a", Content: "one"},
			{ID: "b", Content: "two"},
		},
	}
	second := &core.SpecDocument{
		SpecName:      "box",
		TotalSections: 1,
		Sections: []core.Section{
			{ID: "c", Content: "three"},
		},
	}

	if _, err := w.Write(first); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if _, err := w.Write(second); err != nil {
		t.Fatalf("write second: %v", err)
	}

	got, err := w.Load("box")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Sections) != 1 || got.Sections[0].ID != "c" {
		t.Errorf("re-ingestion should replace the whole document, got %+v", got.Sections)
	}

	// Exactly one file for the spec.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 file, got %d", len(entries))
	}
}
