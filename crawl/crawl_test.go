package crawl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/specpipe/core/resolve"
)

func TestQueue_Deduplicates(t *testing.T) {
	q := NewQueue()
	q.Add("cascade.html")
	q.Add("box.html")
	q.Add("cascade.html")

	if q.Len() != 2 {
		t.Fatalf("expected 2 unique items, got %d", q.Len())
	}
	var got []string
	for q.HasNext() {
		got = append(got, q.Next())
	}
	if len(got) != 2 || got[0] != "cascade.html" || got[1] != "box.html" {
		t.Errorf("unexpected order %v", got)
	}
}

func TestRoutedSources_SkipsUnroutable(t *testing.T) {
	tables := &resolve.Tables{
		Routes: map[string]string{
			"cascade.html": "cascade",
			"box.html":     "box-model",
			"propidx.html": "",
		},
	}
	got := RoutedSources(tables)
	if len(got) != 2 {
		t.Fatalf("expected 2 routed sources, got %v", got)
	}
	// Sorted for deterministic fetch order.
	if got[0] != "box.html" || got[1] != "cascade.html" {
		t.Errorf("unexpected order %v", got)
	}
}

func TestSourceURL(t *testing.T) {
	if got := SourceURL("cascade.html"); got != resolve.SourceBaseURL+"cascade.html" {
		t.Errorf("unexpected source URL %q", got)
	}
}

// fakeFetcher serves canned bodies and records requested URLs.
type fakeFetcher struct {
	bodies map[string]string
	calls  []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.calls = append(f.calls, url)
	body, ok := f.bodies[url]
	if !ok {
		return nil, fmt.Errorf("no such document: %s", url)
	}
	return []byte(body), nil
}

func TestFetchAll_WritesSources(t *testing.T) {
	dir := t.TempDir()
	f := &fakeFetcher{bodies: map[string]string{
		SourceURL("cascade.html"): "<html>cascade</html>",
	}}

	if err := FetchAll(context.Background(), f, []string{"cascade.html"}, dir, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cascade.html"))
	if err != nil {
		t.Fatalf("source not written: %v", err)
	}
	if string(data) != "<html>cascade</html>" {
		t.Errorf("unexpected body %q", data)
	}
}

func TestFetchAll_ContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	f := &fakeFetcher{bodies: map[string]string{
		SourceURL("box.html"): "<html>box</html>",
	}}

	err := FetchAll(context.Background(), f, []string{"missing.html", "box.html"}, dir, nil)
	if err == nil {
		t.Fatal("expected accumulated error for the missing document")
	}
	if !strings.Contains(err.Error(), "missing.html") {
		t.Errorf("error should name the failed document: %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "box.html")); statErr != nil {
		t.Errorf("later document should still be fetched: %v", statErr)
	}
	if len(f.calls) != 2 {
		t.Errorf("expected 2 fetch calls, got %d", len(f.calls))
	}
}
