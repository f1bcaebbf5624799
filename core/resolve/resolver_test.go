package resolve

import (
	"testing"

	"github.com/gaurav-prasanna/specpipe/core"
)

func testTables() *Tables {
	return &Tables{
		Routes: map[string]string{
			"cascade.html": "cascade",
			"propidx.html": "", // recognized, intentionally unroutable
		},
		BibRefs: map[string]string{
			"CSS-COLOR-4": "https://www.w3.org/TR/css-color-4/",
			"RFC2119":     "https://www.rfc-editor.org/rfc/rfc2119",
		},
		Anchors: map[string]map[string]string{
			"cascade": {"at-import": "imports"},
		},
	}
}

func TestResolve_InPageAnchor(t *testing.T) {
	r := New(testTables())
	got := r.Resolve("#foo")
	if got.Kind != core.RefSelf {
		t.Fatalf("expected RefSelf, got %v", got.Kind)
	}
	if got.Section != "foo" {
		t.Errorf("expected section %q, got %q", "foo", got.Section)
	}
}

func TestResolve_RelativePathWithMappedAnchor(t *testing.T) {
	r := New(testTables())
	got := r.Resolve("cascade.html#at-import")
	if got.Kind != core.RefInternal {
		t.Fatalf("expected RefInternal, got %v", got.Kind)
	}
	if got.Module != "cascade" || got.Section != "imports" {
		t.Errorf("expected cascade/imports, got %s/%s", got.Module, got.Section)
	}
	if got.URL != SourceBaseURL+"cascade.html#at-import" {
		t.Errorf("expected source URL fallback, got %q", got.URL)
	}
}

func TestResolve_LeadingDotSlashStripped(t *testing.T) {
	r := New(testTables())
	got := r.Resolve("./cascade.html#at-import")
	if got.Kind != core.RefInternal || got.Module != "cascade" || got.Section != "imports" {
		t.Errorf("expected cascade/imports, got %+v", got)
	}
}

func TestResolve_AnchorDegradation(t *testing.T) {
	// A recognized module with an unmapped anchor degrades to the whole
	// module. It must never come back unresolvable.
	r := New(testTables())
	got := r.Resolve("cascade.html#no-such-anchor")
	if got.Kind != core.RefInternal {
		t.Fatalf("expected RefInternal, got %v", got.Kind)
	}
	if got.Module != "cascade" {
		t.Errorf("expected module %q, got %q", "cascade", got.Module)
	}
	if got.Section != "" {
		t.Errorf("expected empty section (degraded), got %q", got.Section)
	}
}

func TestResolve_PathWithoutAnchor(t *testing.T) {
	r := New(testTables())
	got := r.Resolve("cascade.html")
	if got.Kind != core.RefInternal || got.Module != "cascade" || got.Section != "" {
		t.Errorf("expected bare module resolution, got %+v", got)
	}
}

func TestResolve_UnknownFile(t *testing.T) {
	r := New(testTables())
	if got := r.Resolve("unknown.html#x"); got.Kind != core.RefUnresolvable {
		t.Errorf("expected RefUnresolvable for unknown file, got %+v", got)
	}
}

func TestResolve_RecognizedButUnroutable(t *testing.T) {
	// An empty route entry is a deliberate "do not link" marker; it
	// resolves the same way as unknown, but via a different branch.
	r := New(testTables())
	if got := r.Resolve("propidx.html"); got.Kind != core.RefUnresolvable {
		t.Errorf("expected RefUnresolvable for unroutable file, got %+v", got)
	}
}

func TestResolve_AbsoluteURLPassesThrough(t *testing.T) {
	r := New(testTables())
	got := r.Resolve("https://example.com/spec")
	if got.Kind != core.RefExternal || got.URL != "https://example.com/spec" {
		t.Errorf("expected external passthrough, got %+v", got)
	}
}

func TestResolveBibRef_CaseAndHyphenInsensitive(t *testing.T) {
	r := New(testTables())
	a := r.ResolveBibRef("CSS-COLOR-4")
	b := r.ResolveBibRef("csscolor4")
	if a.Kind != core.RefExternal || b.Kind != core.RefExternal {
		t.Fatalf("expected RefExternal for both spellings, got %v and %v", a.Kind, b.Kind)
	}
	if a.URL != b.URL {
		t.Errorf("expected identical URLs, got %q and %q", a.URL, b.URL)
	}
}

func TestResolveBibRef_Unknown(t *testing.T) {
	r := New(testTables())
	if got := r.ResolveBibRef("NO-SUCH-SPEC"); got.Kind != core.RefUnresolvable {
		t.Errorf("expected RefUnresolvable, got %+v", got)
	}
}

func TestResolve_BareCitationKey(t *testing.T) {
	// A reference that is neither an anchor nor a path falls through to
	// the bibliographic registry.
	r := New(testTables())
	got := r.Resolve("RFC2119")
	if got.Kind != core.RefExternal || got.URL != "https://www.rfc-editor.org/rfc/rfc2119" {
		t.Errorf("expected bibref resolution, got %+v", got)
	}
}

func TestDefaultTablesValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default tables should validate cleanly: %v", err)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	bad := &Tables{
		Routes:  map[string]string{"a.html": "a"},
		BibRefs: map[string]string{"EMPTY": ""},
		Anchors: map[string]map[string]string{"ghost": {"x": "y"}},
	}
	err := bad.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
}
