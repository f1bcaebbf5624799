// PDF exporter. Renders the core sections of an ingested document into a
// styled PDF using gofpdf: Helvetica body text, Courier code with a light
// fill, bulleted list items. Link targets are not navigable in PDF output;
// the link text is kept inline.
package render

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/specpipe/core"
	"github.com/gaurav-prasanna/specpipe/core/filter"
)

// PDFExporter renders an ingested document as a PDF.
type PDFExporter struct {
	renderer *MarkupRenderer
	module   string
}

// NewPDFExporter creates a PDFExporter.
func NewPDFExporter(renderer *MarkupRenderer, module string) *PDFExporter {
	return &PDFExporter{renderer: renderer, module: module}
}

// Render converts the document's core sections into PDF bytes.
func (e *PDFExporter) Render(doc *core.SpecDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if doc.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, doc.Title, "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Extracted: "+doc.ExtractedAt, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	for _, s := range filter.Core(doc.Sections) {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, s.Heading, "", "L", false)
		pdf.Ln(2)

		writePDFNodes(pdf, e.renderer.Render(s.Content, e.module))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (e *PDFExporter) Extension() string {
	return ".pdf"
}

func writePDFNodes(pdf *gofpdf.Fpdf, nodes []core.Node) {
	var para strings.Builder

	flushPara := func() {
		if para.Len() == 0 {
			return
		}
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, para.String(), "", "L", false)
		para.Reset()
	}

	for _, n := range nodes {
		switch n.Kind {
		case core.NodeParagraphBreak:
			flushPara()
			pdf.Ln(3)
		case core.NodeCodeBlock:
			flushPara()
			pdf.Ln(2)
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			for _, line := range strings.Split(n.Text, "\n") {
				pdf.MultiCell(0, 4.5, line, "", "L", true)
			}
			pdf.Ln(2)
		case core.NodeListItem:
			flushPara()
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, "• "+inlineText(n.Children), "", "L", false)
		default:
			para.WriteString(inlineText([]core.Node{n}))
		}
	}
	flushPara()
}

// inlineText flattens inline nodes to plain text; PDF output carries no
// hyperlinks, so link nodes contribute their text only.
func inlineText(nodes []core.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.Text)
	}
	return b.String()
}
