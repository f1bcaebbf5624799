// Package resolve implements the Reference Resolver: it maps cross-document
// references (relative source filenames, fine-grained anchors, bibliographic
// citation keys) onto the site's internal module taxonomy or an external
// canonical URL.
//
// The lookup tables are hand-authored configuration. They are loaded once at
// startup and passed into the resolver explicitly; nothing in this package
// mutates them afterwards.
package resolve

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// SourceBaseURL is the fixed base the original specification documents are
// hosted under; relative source paths concatenate onto it.
const SourceBaseURL = "https://www.w3.org/TR/CSS2/"

// Tables holds the three static lookup tables consumed by the resolver.
type Tables struct {
	// Routes maps a source document's relative filename to an internal
	// module identifier. An empty value means recognized but intentionally
	// unroutable (e.g. an index page), which is distinct from unrecognized.
	Routes map[string]string `yaml:"routes"`

	// BibRefs maps a bibliographic citation key to an external canonical
	// URL. Lookups are case- and hyphen-insensitive.
	BibRefs map[string]string `yaml:"bibrefs"`

	// Anchors maps, per module, a fine-grained source anchor to the coarse
	// section id the site renders as a navigable unit. Many anchors map to
	// one section, never the reverse.
	Anchors map[string]map[string]string `yaml:"anchors"`
}

// Default returns the built-in tables for the republished CSS specification
// set.
func Default() *Tables {
	return &Tables{
		Routes: map[string]string{
			"about.html":     "about",
			"intro.html":     "intro",
			"syndata.html":   "syntax",
			"selector.html":  "selectors",
			"cascade.html":   "cascade",
			"media.html":     "media",
			"box.html":       "box-model",
			"visuren.html":   "visual-formatting",
			"visudet.html":   "visual-details",
			"visufx.html":    "visual-effects",
			"generate.html":  "generated-content",
			"page.html":      "paged-media",
			"colors.html":    "color",
			"fonts.html":     "fonts",
			"text.html":      "text",
			"tables.html":    "tables",
			"ui.html":        "ui",
			"cover.html":     "", // index page, not republished
			"conform.html":   "", // conformance boilerplate
			"refs.html":      "", // bibliography, handled via bibrefs
			"grammar.html":   "",
			"propidx.html":   "",
			"indexlist.html": "",
			"changes.html":   "",
		},
		BibRefs: map[string]string{
			"CSS2":           "https://www.w3.org/TR/CSS2/",
			"CSS-CASCADE-4":  "https://www.w3.org/TR/css-cascade-4/",
			"CSS-COLOR-4":    "https://www.w3.org/TR/css-color-4/",
			"CSS-VALUES-4":   "https://www.w3.org/TR/css-values-4/",
			"CSS-SYNTAX-3":   "https://www.w3.org/TR/css-syntax-3/",
			"SELECTORS-4":    "https://www.w3.org/TR/selectors-4/",
			"MEDIAQUERIES-4": "https://www.w3.org/TR/mediaqueries-4/",
			"RFC2119":        "https://www.rfc-editor.org/rfc/rfc2119",
			"HTML":           "https://html.spec.whatwg.org/multipage/",
			"DOM":            "https://dom.spec.whatwg.org/",
		},
		Anchors: map[string]map[string]string{
			"cascade": {
				"at-import":         "imports",
				"cascading-order":   "cascade-order",
				"important-rules":   "importance",
				"specificity":       "specificity",
				"value-def-inherit": "inheritance",
			},
			"box-model": {
				"propdef-margin":    "margin",
				"propdef-padding":   "padding",
				"border-properties": "border",
			},
			"selectors": {
				"class-html":      "class-selectors",
				"id-selectors":    "id-selectors",
				"pseudo-elements": "pseudo-elements",
			},
		},
	}
}

// Load reads YAML table overrides from path and merges them over the
// built-in defaults. Entries in the file win; maps are merged per key so a
// partial file only has to name what it changes.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tables config: %w", err)
	}
	var override Tables
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parsing tables config %s: %w", path, err)
	}

	t := Default()
	for k, v := range override.Routes {
		t.Routes[k] = v
	}
	for k, v := range override.BibRefs {
		t.BibRefs[k] = v
	}
	for mod, m := range override.Anchors {
		if t.Anchors[mod] == nil {
			t.Anchors[mod] = make(map[string]string)
		}
		for k, v := range m {
			t.Anchors[mod][k] = v
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate reports every structural problem in the tables at once rather
// than stopping at the first.
func (t *Tables) Validate() error {
	var errs error

	routed := make(map[string]bool)
	for _, module := range t.Routes {
		if module != "" {
			routed[module] = true
		}
	}

	mods := make([]string, 0, len(t.Anchors))
	for mod := range t.Anchors {
		mods = append(mods, mod)
	}
	sort.Strings(mods)
	for _, mod := range mods {
		if !routed[mod] {
			errs = multierr.Append(errs, fmt.Errorf("anchor map names module %q with no route entry", mod))
		}
	}

	keys := make([]string, 0, len(t.BibRefs))
	for k := range t.BibRefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if t.BibRefs[k] == "" {
			errs = multierr.Append(errs, fmt.Errorf("bibref %q has an empty URL", k))
		}
	}

	return errs
}
