// Package render turns stored spec markup back into typed display nodes and
// provides the exporters that consume them.
//
// Parsing is the inverse of the normalizer's grammar: fenced code blocks are
// recognized first so markup-like text inside them stays literal, then link
// syntax, inline code, and bold terms; list-item prefixes and blank lines
// drive a small per-line Paragraph/List state machine. Every link token goes
// through the Reference Resolver; an unresolvable link keeps its text and
// simply loses its navigation target.
package render

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/specpipe/core"
)

// MarkupRenderer parses spec markup into display nodes.
type MarkupRenderer struct {
	resolver core.Resolver
}

// New creates a MarkupRenderer using the given resolver for link targets.
func New(resolver core.Resolver) *MarkupRenderer {
	return &MarkupRenderer{resolver: resolver}
}

var (
	reLink       = regexp.MustCompile(`^\[([^\]]*)\]\(([^)]+)\)`)
	reInlineCode = regexp.MustCompile("^`([^`]+)`")
	reTerm       = regexp.MustCompile(`^\*\*([^*]+)\*\*`)
)

// Render parses spec markup into a flat node sequence. module is the
// caller's module context: pure in-page anchors resolve against it.
func (r *MarkupRenderer) Render(markup, module string) []core.Node {
	var nodes []core.Node

	// Line grouping state: Paragraph or List. Inline token recognition is
	// stateless; only list/paragraph grouping carries state across lines.
	var para []string
	inList := false

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		text := strings.Join(para, " ")
		para = nil
		if len(nodes) > 0 {
			nodes = append(nodes, core.Node{Kind: core.NodeParagraphBreak})
		}
		nodes = append(nodes, r.parseInline(text, module)...)
	}

	lines := strings.Split(markup, "\n")
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		if trimmed == "```" {
			flushPara()
			inList = false
			var code []string
			for i++; i < len(lines) && strings.TrimSpace(lines[i]) != "```"; i++ {
				code = append(code, lines[i])
			}
			// An unclosed fence swallows the rest of the document; the
			// normalizer always emits balanced fences.
			if len(nodes) > 0 {
				nodes = append(nodes, core.Node{Kind: core.NodeParagraphBreak})
			}
			nodes = append(nodes, core.Node{Kind: core.NodeCodeBlock, Text: strings.Join(code, "\n")})
			continue
		}

		if rest, ok := strings.CutPrefix(trimmed, "- "); ok {
			flushPara()
			if !inList && len(nodes) > 0 {
				nodes = append(nodes, core.Node{Kind: core.NodeParagraphBreak})
			}
			inList = true
			nodes = append(nodes, core.Node{
				Kind:     core.NodeListItem,
				Children: r.parseInline(rest, module),
			})
			continue
		}

		// Any non-item line ends the list.
		inList = false

		if trimmed == "" {
			flushPara()
			continue
		}
		para = append(para, trimmed)
	}
	flushPara()
	return nodes
}

// parseInline scans one run of text for link, inline-code, and bold-term
// tokens, in that order of recognition. Everything else is plain text.
func (r *MarkupRenderer) parseInline(text, module string) []core.Node {
	var nodes []core.Node
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			nodes = append(nodes, core.Node{Kind: core.NodeText, Text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(text); {
		rest := text[i:]
		switch {
		case rest[0] == '[':
			if m := reLink.FindStringSubmatch(rest); m != nil {
				flushPlain()
				nodes = append(nodes, r.linkNode(m[1], m[2], module))
				i += len(m[0])
				continue
			}
		case rest[0] == '`':
			if m := reInlineCode.FindStringSubmatch(rest); m != nil {
				flushPlain()
				nodes = append(nodes, core.Node{Kind: core.NodeCode, Text: m[1]})
				i += len(m[0])
				continue
			}
		case strings.HasPrefix(rest, "**"):
			if m := reTerm.FindStringSubmatch(rest); m != nil {
				flushPlain()
				nodes = append(nodes, core.Node{Kind: core.NodeTerm, Text: m[1]})
				i += len(m[0])
				continue
			}
		}
		plain.WriteByte(text[i])
		i++
	}
	flushPlain()
	return nodes
}

// linkNode resolves one link reference. A RefSelf sentinel is resolved here
// against the caller's module; an unresolvable target still keeps the link
// text so no content silently disappears.
func (r *MarkupRenderer) linkNode(text, ref, module string) core.Node {
	target := r.resolver.Resolve(ref)
	if target.Kind == core.RefSelf && module != "" {
		target = core.Resolution{Kind: core.RefInternal, Module: module, Section: target.Section}
	}
	return core.Node{Kind: core.NodeLink, Text: text, Ref: ref, Target: target}
}
