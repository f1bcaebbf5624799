// Package filter implements the Core Filter: it drops boilerplate sections
// (front matter, indices, bibliographies, changelogs) by identifier, leaving
// only substantive content. It is a denylist on purpose: newly introduced
// substantive sections are included by default.
package filter

import (
	"strings"

	"github.com/gaurav-prasanna/specpipe/core"
)

// skipIDs are section identifiers that never carry substantive content.
var skipIDs = map[string]bool{
	"abstract":                true,
	"status":                  true,
	"sotd":                    true,
	"table-of-contents":       true,
	"toc":                     true,
	"contents":                true,
	"acknowledgments":         true,
	"acknowledgements":        true,
	"conformance":             true,
	"conventions":             true,
	"w3c-conformance":         true,
	"index":                   true,
	"index-defined-here":      true,
	"index-defined-elsewhere": true,
	"property-index":          true,
	"references":              true,
	"normative":               true,
	"informative":             true,
	"changelog":               true,
}

// skipPrefixes drop whole identifier families: per-version change logs and
// generated bibliography entries.
var skipPrefixes = []string{"changes-", "biblio-"}

// Core returns the subset of sections that survive the boilerplate filter,
// in their original order. The operation is a pure subset: applying it twice
// yields the same result.
func Core(sections []core.Section) []core.Section {
	out := make([]core.Section, 0, len(sections))
	for _, s := range sections {
		if Skipped(s.ID) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Skipped reports whether a section identifier is boilerplate.
func Skipped(id string) bool {
	if skipIDs[id] {
		return true
	}
	for _, p := range skipPrefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}
