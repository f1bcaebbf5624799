// Package normalize implements the Normalizer interface.
// It converts a raw specification HTML fragment into spec markup, the
// restricted textual format persisted for every section: links, inline code,
// fenced code blocks, bold terms, flat list items, and blank-line-separated
// paragraphs with HTML entities decoded.
//
// The conversion is a fixed sequence of flat substitutions, not a parse
// tree. Later passes assume earlier ones already collapsed their target
// tags, so the order below is load-bearing. Malformed HTML degrades to
// cosmetically wrong output; Normalize never fails.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// SpecMarkupNormalizer converts raw HTML fragments into spec markup.
type SpecMarkupNormalizer struct{}

// New creates a SpecMarkupNormalizer.
func New() *SpecMarkupNormalizer {
	return &SpecMarkupNormalizer{}
}

var (
	reScript = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	reStyle  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)

	// Anchor text is emitted verbatim between the brackets: tags nested in
	// link text are not re-normalized here, they fall through to the later
	// passes like any other substring.
	reAnchor = regexp.MustCompile(`(?is)<a\b[^>]*\bhref\s*=\s*(?:"([^"]*)"|'([^']*)')[^>]*>(.*?)</a>`)

	// Inline code is single-line only; multi-line <code> (inside <pre>)
	// is left for the fence pass.
	reCode = regexp.MustCompile(`(?i)<code\b[^>]*>(.*?)</code>`)

	rePre = regexp.MustCompile(`(?is)<pre\b[^>]*>(.*?)</pre>`)
	reDfn = regexp.MustCompile(`(?is)<dfn\b[^>]*>(.*?)</dfn>`)

	// List nesting is flattened: items become flat "- " lines and the
	// <ul>/<ol> wrappers are dropped entirely. Open and close tags are
	// handled separately so nested and unclosed items still flatten.
	reListOpen  = regexp.MustCompile(`(?i)<li\b[^>]*>`)
	reListClose = regexp.MustCompile(`(?i)</li>`)
	reListWrap  = regexp.MustCompile(`(?i)</?[uo]l\b[^>]*>`)

	reParagraph = regexp.MustCompile(`(?is)<p\b[^>]*>(.*?)</p>`)
	reTag       = regexp.MustCompile(`<[^>]+>`)

	reSpaceRun = regexp.MustCompile(`[ \t]+`)
	reNumEntity = regexp.MustCompile(`&#(?:[xX]([0-9a-fA-F]+)|([0-9]+));`)
	reFenceLine = regexp.MustCompile("^\\s*```\\s*$")
)

// namedEntities is the fixed decode table, applied before numeric entities.
var namedEntities = []struct{ entity, text string }{
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&amp;", "&"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&nbsp;", " "},
	{"&mdash;", "—"},
	{"&ndash;", "–"},
	{"&hellip;", "…"},
	{"&lsquo;", "‘"},
	{"&rsquo;", "’"},
	{"&ldquo;", "“"},
	{"&rdquo;", "”"},
	{"&times;", "×"},
	{"&rarr;", "→"},
}

// Normalize converts an HTML fragment into spec markup. It is total:
// unparsable input degrades to best-effort text, never an error.
func (n *SpecMarkupNormalizer) Normalize(fragment string) string {
	s := fragment

	// 1. Script and style bodies carry no content worth keeping.
	s = reScript.ReplaceAllString(s, "")
	s = reStyle.ReplaceAllString(s, "")

	// 2. Anchors → [text](url). One of the two quote captures is empty.
	s = reAnchor.ReplaceAllString(s, "[$3]($1$2)")

	// 3. Inline code → `code`.
	s = reCode.ReplaceAllString(s, "`$1`")

	// 4. Preformatted blocks → fenced code, interior kept verbatim.
	s = rePre.ReplaceAllString(s, "\n```\n$1\n```\n")

	// 5. Defined terms → **term**.
	s = reDfn.ReplaceAllString(s, "**$1**")

	// 6. List items → flat "- " lines, wrappers dropped.
	s = reListOpen.ReplaceAllString(s, "\n- ")
	s = reListClose.ReplaceAllString(s, "")
	s = reListWrap.ReplaceAllString(s, "")

	// 7. Paragraphs → blank-line-delimited runs.
	s = reParagraph.ReplaceAllString(s, "\n\n$1\n\n")

	// 8. Strip whatever tags remain.
	s = reTag.ReplaceAllString(s, "")

	// 9. Decode entities, named table first.
	s = decodeEntities(s)

	// 10. Collapse whitespace outside code fences.
	return collapseWhitespace(s)
}

func decodeEntities(s string) string {
	for _, e := range namedEntities {
		s = strings.ReplaceAll(s, e.entity, e.text)
	}
	return reNumEntity.ReplaceAllStringFunc(s, func(m string) string {
		sub := reNumEntity.FindStringSubmatch(m)
		var code int64
		var err error
		if sub[1] != "" {
			code, err = strconv.ParseInt(sub[1], 16, 32)
		} else {
			code, err = strconv.ParseInt(sub[2], 10, 32)
		}
		if err != nil || code <= 0 || code > 0x10FFFF {
			return m // leave unparsable entities alone
		}
		return string(rune(code))
	})
}

// collapseWhitespace squeezes runs of spaces and tabs to a single space and
// runs of blank lines to one, but leaves fenced code interiors untouched so
// preformatted whitespace survives.
func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	inFence := false
	prevBlank := false

	for _, line := range lines {
		if reFenceLine.MatchString(line) {
			inFence = !inFence
			out = append(out, "```")
			prevBlank = false
			continue
		}
		if inFence {
			out = append(out, line)
			continue
		}
		line = strings.TrimSpace(reSpaceRun.ReplaceAllString(line, " "))
		if line == "" {
			if prevBlank {
				continue
			}
			prevBlank = true
			out = append(out, "")
			continue
		}
		prevBlank = false
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
