// HTML exporter. Walks the core sections of an ingested document, renders
// each through the markup renderer, and emits a standalone HTML page.
// Internal links become site paths (/<module>#<section>), external links
// keep their URL, and unresolvable links degrade to plain text spans.
package render

import (
	"html"
	"strings"

	"github.com/gaurav-prasanna/specpipe/core"
	"github.com/gaurav-prasanna/specpipe/core/filter"
)

// HTMLExporter renders an ingested document as a standalone HTML page.
type HTMLExporter struct {
	renderer *MarkupRenderer
	module   string // module context for in-page anchor resolution
}

// NewHTMLExporter creates an HTMLExporter. module is the internal module
// identifier of the document being exported.
func NewHTMLExporter(renderer *MarkupRenderer, module string) *HTMLExporter {
	return &HTMLExporter{renderer: renderer, module: module}
}

// Render emits the document's core sections as HTML.
func (e *HTMLExporter) Render(doc *core.SpecDocument) ([]byte, error) {
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(html.EscapeString(doc.Title))
	b.WriteString("</title>\n</head>\n<body>\n<h1>")
	b.WriteString(html.EscapeString(doc.Title))
	b.WriteString("</h1>\n")

	for _, s := range filter.Core(doc.Sections) {
		b.WriteString("<section id=\"")
		b.WriteString(html.EscapeString(s.ID))
		b.WriteString("\">\n<h2>")
		b.WriteString(html.EscapeString(s.Heading))
		b.WriteString("</h2>\n")
		writeNodes(&b, e.renderer.Render(s.Content, e.module))
		b.WriteString("</section>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return []byte(b.String()), nil
}

// Extension returns the file extension for HTML output.
func (e *HTMLExporter) Extension() string {
	return ".html"
}

// writeNodes serializes a node sequence, regrouping consecutive list items
// into <ul> blocks and paragraph runs into <p> blocks.
func writeNodes(b *strings.Builder, nodes []core.Node) {
	inPara := false
	inList := false

	closeBlocks := func() {
		if inPara {
			b.WriteString("</p>\n")
			inPara = false
		}
		if inList {
			b.WriteString("</ul>\n")
			inList = false
		}
	}

	for _, n := range nodes {
		switch n.Kind {
		case core.NodeParagraphBreak:
			closeBlocks()
		case core.NodeCodeBlock:
			closeBlocks()
			b.WriteString("<pre><code>")
			b.WriteString(html.EscapeString(n.Text))
			b.WriteString("</code></pre>\n")
		case core.NodeListItem:
			if inPara {
				b.WriteString("</p>\n")
				inPara = false
			}
			if !inList {
				b.WriteString("<ul>\n")
				inList = true
			}
			b.WriteString("<li>")
			for _, c := range n.Children {
				writeInline(b, c)
			}
			b.WriteString("</li>\n")
		default:
			if inList {
				b.WriteString("</ul>\n")
				inList = false
			}
			if !inPara {
				b.WriteString("<p>")
				inPara = true
			}
			writeInline(b, n)
		}
	}
	closeBlocks()
}

func writeInline(b *strings.Builder, n core.Node) {
	switch n.Kind {
	case core.NodeLink:
		writeLink(b, n)
	case core.NodeCode:
		b.WriteString("<code>")
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString("</code>")
	case core.NodeTerm:
		b.WriteString("<strong>")
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString("</strong>")
	default:
		b.WriteString(html.EscapeString(n.Text))
	}
}

func writeLink(b *strings.Builder, n core.Node) {
	switch n.Target.Kind {
	case core.RefInternal:
		href := "/" + n.Target.Module
		if n.Target.Section != "" {
			href += "#" + n.Target.Section
		}
		b.WriteString(`<a href="` + html.EscapeString(href) + `">`)
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString("</a>")
	case core.RefExternal:
		b.WriteString(`<a href="` + html.EscapeString(n.Target.URL) + `">`)
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString("</a>")
	default:
		// Broken cross-reference: keep the text, drop the navigation.
		b.WriteString("<span>")
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString("</span>")
	}
}
