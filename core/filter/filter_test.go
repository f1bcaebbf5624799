package filter

import (
	"testing"

	"github.com/gaurav-prasanna/specpipe/core"
)

func sections(ids ...string) []core.Section {
	out := make([]core.Section, len(ids))
	for i, id := range ids {
		out[i] = core.Section{ID: id, Content: "body"}
	}
	return out
}

func ids(secs []core.Section) []string {
	out := make([]string, len(secs))
	for i, s := range secs {
		out[i] = s.ID
	}
	return out
}

func TestCore_DropsBoilerplate(t *testing.T) {
	in := sections(
		"abstract", "status", "table-of-contents",
		"intro", "cascading", "specificity",
		"acknowledgments", "references", "property-index", "changelog",
	)
	got := ids(Core(in))
	want := []string{"intro", "cascading", "specificity"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestCore_DropsPrefixFamilies(t *testing.T) {
	in := sections("changes-2024", "changes-2019", "biblio-css2", "biblio-rfc2119", "layout")
	got := Core(in)
	if len(got) != 1 || got[0].ID != "layout" {
		t.Errorf("expected only [layout], got %v", ids(got))
	}
}

func TestCore_KeepsUnknownSectionsByDefault(t *testing.T) {
	// Denylist semantics: a newly introduced substantive section survives.
	in := sections("brand-new-feature")
	if got := Core(in); len(got) != 1 {
		t.Errorf("unknown section should be retained, got %v", ids(got))
	}
}

func TestCore_PreservesOrder(t *testing.T) {
	in := sections("zeta", "abstract", "alpha", "index", "mid")
	got := ids(Core(in))
	want := []string{"zeta", "alpha", "mid"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestCore_Idempotent(t *testing.T) {
	in := sections("abstract", "intro", "changes-1", "body")
	once := Core(in)
	twice := Core(once)
	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %v vs %v", ids(once), ids(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("filter not idempotent at %d: %q vs %q", i, once[i].ID, twice[i].ID)
		}
	}
}
