package resolve

import (
	"net/url"
	"sort"
	"strings"

	"github.com/gaurav-prasanna/specpipe/core"
)

// TableResolver resolves references against immutable lookup tables.
// It is a pure function of its inputs: the same reference always yields the
// same resolution, and an unknown reference is a typed result, not an error.
type TableResolver struct {
	tables *Tables

	// canonBibs indexes BibRefs by case-folded, hyphen-stripped key.
	canonBibs map[string]string
}

// New creates a TableResolver over the given tables.
func New(t *Tables) *TableResolver {
	r := &TableResolver{tables: t, canonBibs: make(map[string]string, len(t.BibRefs))}

	// Canonicalize registry keys up front. Sorted insertion keeps the
	// winner deterministic if two keys collapse to the same canonical form.
	keys := make([]string, 0, len(t.BibRefs))
	for k := range t.BibRefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		canon := canonicalBibKey(k)
		if _, ok := r.canonBibs[canon]; !ok {
			r.canonBibs[canon] = t.BibRefs[k]
		}
	}
	return r
}

// Resolve resolves a reference found in spec markup. Shapes, in precedence
// order:
//
//  1. "#anchor": a pure in-page anchor. Returns the RefSelf sentinel; the
//     caller resolves it against its own module context.
//  2. "file.html#anchor" (leading "./" allowed): routed via the filename
//     table, with anchor degradation. A recognized module whose anchor map
//     lacks the anchor still resolves to the module, just without a section,
//     so a stale anchor produces a coarser link rather than a dead one.
//  3. A bare citation key, when the reference looks like neither of the
//     above.
//
// Absolute URLs pass through as external targets unchanged.
func (r *TableResolver) Resolve(ref string) core.Resolution {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return core.Resolution{Kind: core.RefUnresolvable}
	}

	if strings.HasPrefix(ref, "#") {
		return core.Resolution{Kind: core.RefSelf, Section: strings.TrimPrefix(ref, "#")}
	}

	if u, err := url.Parse(ref); err == nil && u.Scheme != "" && u.Host != "" {
		return core.Resolution{Kind: core.RefExternal, URL: ref}
	}

	path, anchor, _ := strings.Cut(ref, "#")
	path = strings.TrimPrefix(path, "./")

	module, known := r.tables.Routes[path]
	if !known {
		// Not a routed file. A bare key with no path shape may still be a
		// bibliographic citation.
		if !strings.ContainsAny(ref, "/.#") {
			return r.ResolveBibRef(ref)
		}
		return core.Resolution{Kind: core.RefUnresolvable}
	}
	if module == "" {
		// Recognized but intentionally unroutable.
		return core.Resolution{Kind: core.RefUnresolvable}
	}

	res := core.Resolution{
		Kind:   core.RefInternal,
		Module: module,
		URL:    ExternalURL(ref), // fallback affordance, not a replacement
	}
	if anchor != "" {
		// Degrade, don't fail: an unmapped anchor links the whole module.
		res.Section = r.tables.Anchors[module][anchor]
	}
	return res
}

// ResolveBibRef resolves a bibliographic citation key to its canonical URL.
// Comparison is case- and hyphen-insensitive on both sides, so
// "CSS-COLOR-4" and "csscolor4" name the same entry.
func (r *TableResolver) ResolveBibRef(key string) core.Resolution {
	if u, ok := r.canonBibs[canonicalBibKey(key)]; ok {
		return core.Resolution{Kind: core.RefExternal, URL: u}
	}
	return core.Resolution{Kind: core.RefUnresolvable}
}

// ExternalURL builds the canonical source URL for a relative reference.
func ExternalURL(ref string) string {
	return SourceBaseURL + strings.TrimPrefix(ref, "./")
}

func canonicalBibKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
}
