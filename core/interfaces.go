// Package core defines the shared types and stage interfaces for the
// specpipe ingestion pipeline. Each stage is a clean, testable interface:
// fetch → segment → normalize → filter → persist, and separately
// render → export for display.
package core

import "context"

// RawSection is a segmented but not yet normalized unit of a source document.
type RawSection struct {
	ID      string // in-page anchor identifier from the source
	Heading string // plain-text heading, HTML-stripped
	HTML    string // raw HTML fragment for this section
}

// Section is one addressable unit of an ingested specification.
// Content is spec markup, never raw HTML.
type Section struct {
	ID        string `json:"id"`
	Heading   string `json:"heading"`
	Content   string `json:"content"`
	RawLength int    `json:"rawLength"` // length of the original HTML fragment, diagnostic only
}

// SpecDocument is one ingested specification. Sections keep source order;
// the persisted JSON form is an object keyed by section id (see document.go).
type SpecDocument struct {
	SpecName      string
	Title         string
	ExtractedAt   string // ISO 8601
	TotalSections int
	CoreSections  int
	Sections      []Section
}

// RefKind classifies the outcome of resolving a cross-document reference.
type RefKind int

const (
	// RefUnresolvable means the reference has no known target. The renderer
	// keeps the link text but drops the navigation target.
	RefUnresolvable RefKind = iota
	// RefSelf is the sentinel for pure in-page anchors (#foo): the caller
	// resolves them against its own module context.
	RefSelf
	// RefInternal targets a module on this site, optionally a section in it.
	RefInternal
	// RefExternal targets a canonical URL outside this site.
	RefExternal
)

// Resolution is the typed result of resolving one reference. Unresolvable
// references are a value, never an error.
type Resolution struct {
	Kind    RefKind
	Module  string // RefInternal only
	Section string // RefInternal with a mapped anchor (empty when degraded); RefSelf anchor
	URL     string // RefExternal target; for RefInternal, a fallback source URL
}

// NodeKind enumerates the typed display nodes produced by the renderer.
type NodeKind int

const (
	NodeText NodeKind = iota
	NodeLink
	NodeCode
	NodeCodeBlock
	NodeTerm
	NodeListItem
	NodeParagraphBreak
)

// Node is one typed display node. Link nodes carry the raw reference and its
// resolution; list items carry their inline content as children.
type Node struct {
	Kind     NodeKind
	Text     string
	Ref      string     // NodeLink: raw reference as written in the markup
	Target   Resolution // NodeLink: resolver outcome
	Children []Node     // NodeListItem only
}

// Fetcher retrieves raw bytes for a URL. Retries and redirect handling are
// the fetcher's responsibility; the core never retries.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Segmenter splits a source document into addressable raw sections.
type Segmenter interface {
	Segment(documentHTML string) []RawSection
	Title(documentHTML string) string
}

// Normalizer converts a raw HTML fragment into spec markup.
type Normalizer interface {
	Normalize(htmlFragment string) string
}

// Resolver resolves a cross-document reference to a typed Resolution.
type Resolver interface {
	Resolve(ref string) Resolution
	ResolveBibRef(key string) Resolution
}

// Exporter converts an ingested document into a final output format.
type Exporter interface {
	Render(doc *SpecDocument) ([]byte, error)
	// Extension returns the file extension for this exporter (e.g. ".html").
	Extension() string
}
