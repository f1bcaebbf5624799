// Package segment implements the Segmenter interface.
// It locates section boundaries in a source specification document and
// yields addressable raw fragments. Two source dialects are supported:
//
//  1. Section-tagged HTML: <section id="..."> blocks, heading inside.
//  2. Heading-delimited HTML: bare h2–h4 headings carrying either an id
//     attribute or, in legacy documents, an inline <a name="..."> anchor.
//     The fragment runs until the next heading of the same or higher level.
//
// The section-tagged strategy is tried first; the first strategy that
// produces sections wins.
package segment

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/specpipe/core"
)

// MinContentLength is the minimum normalized content length for a fragment
// to count as a real section. Anything shorter is assumed to be a heading
// with no body, e.g. a pure sub-navigation heading.
const MinContentLength = 20

// HTMLSegmenter splits specification HTML into raw sections.
type HTMLSegmenter struct {
	norm core.Normalizer
	Log  *zap.Logger
}

// New creates an HTMLSegmenter. The normalizer is used only for the
// minimum-content policy check; actual content normalization happens
// downstream.
func New(norm core.Normalizer) *HTMLSegmenter {
	return &HTMLSegmenter{norm: norm, Log: zap.NewNop()}
}

// Title extracts the document title, falling back to the first h1.
func (s *HTMLSegmenter) Title(documentHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(documentHTML))
	if err != nil {
		return ""
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// Segment splits the document into raw sections. An empty result is valid:
// some inputs genuinely contain no addressable sections.
func (s *HTMLSegmenter) Segment(documentHTML string) []core.RawSection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(documentHTML))
	if err != nil {
		// goquery's parser is tolerant; a hard error means the input is
		// not remotely HTML. Treat as a zero-section document.
		s.Log.Warn("unparsable document", zap.Error(err))
		return nil
	}

	if secs := s.dropThin(s.segmentSections(doc)); len(secs) > 0 {
		return secs
	}
	return s.dropThin(s.segmentHeadings(doc))
}

// segmentSections handles the section-tagged dialect: every <section id>
// block becomes one section, with the first h2–h4 inside as its heading.
func (s *HTMLSegmenter) segmentSections(doc *goquery.Document) []core.RawSection {
	var out []core.RawSection
	seen := make(map[string]bool)

	doc.Find("section[id]").Each(func(_ int, sel *goquery.Selection) {
		id := sel.AttrOr("id", "")
		if id == "" || seen[id] {
			return
		}
		heading := strings.TrimSpace(sel.Find("h2, h3, h4").First().Text())
		if heading == "" {
			heading = id
		}

		// The heading is addressing metadata, not body content; drop it
		// from the fragment so content starts at the first real element.
		body := sel.Clone()
		body.Find("h2, h3, h4").First().Remove()
		html, err := body.Html()
		if err != nil {
			return
		}
		seen[id] = true
		out = append(out, core.RawSection{ID: id, Heading: heading, HTML: html})
	})
	return out
}

// segmentHeadings handles the heading-delimited dialects. A heading's
// identifier comes from an inline <a name> anchor when one exists; the
// heading's own id attribute is only the secondary fallback.
func (s *HTMLSegmenter) segmentHeadings(doc *goquery.Document) []core.RawSection {
	var out []core.RawSection
	seen := make(map[string]bool)

	doc.Find("h2, h3, h4").Each(func(_ int, h *goquery.Selection) {
		id := headingID(h)
		if id == "" || seen[id] {
			return
		}

		var frag strings.Builder
		h.NextUntil(boundarySelector(headingLevel(h))).Each(func(_ int, sib *goquery.Selection) {
			html, err := goquery.OuterHtml(sib)
			if err != nil {
				return
			}
			frag.WriteString(html)
		})

		heading := strings.TrimSpace(h.Text())
		if heading == "" {
			heading = id
		}
		seen[id] = true
		out = append(out, core.RawSection{ID: id, Heading: heading, HTML: frag.String()})
	})
	return out
}

// dropThin discards fragments whose normalized content falls below
// MinContentLength.
func (s *HTMLSegmenter) dropThin(secs []core.RawSection) []core.RawSection {
	kept := secs[:0]
	for _, sec := range secs {
		if len(s.norm.Normalize(sec.HTML)) < MinContentLength {
			s.Log.Debug("discarding thin section",
				zap.String("id", sec.ID),
				zap.Int("rawLength", len(sec.HTML)))
			continue
		}
		kept = append(kept, sec)
	}
	return kept
}

// headingID returns the identifier for a heading: the inline anchor name
// first, then the id attribute.
func headingID(h *goquery.Selection) string {
	if name := h.Find("a[name]").First().AttrOr("name", ""); name != "" {
		return name
	}
	return h.AttrOr("id", "")
}

func headingLevel(h *goquery.Selection) int {
	switch goquery.NodeName(h) {
	case "h2":
		return 2
	case "h3":
		return 3
	default:
		return 4
	}
}

// boundarySelector matches headings of the same or higher priority, which
// terminate the fragment started by a heading of the given level.
func boundarySelector(level int) string {
	switch level {
	case 2:
		return "h1, h2"
	case 3:
		return "h1, h2, h3"
	default:
		return "h1, h2, h3, h4"
	}
}
