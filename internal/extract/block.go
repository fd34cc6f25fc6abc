package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Block wraps the tech-info region of a detail page. It carries the raw text,
// a normalized key/value view of the "- Chave: Valor" lines and, when parsed
// from markup, the selection itself for heading/sibling scans.
//
// Retailer markup for this region is wildly inconsistent across categories and
// over time, so every consumer treats the block as best-effort input: a lookup
// that finds nothing yields "", never an error.
type Block struct {
	text  string
	specs map[string]string
	sel   *goquery.Selection
}

// NewBlock builds a Block from a parsed tech-info selection.
func NewBlock(sel *goquery.Selection) Block {
	text := textWithBreaks(sel)
	return Block{
		text:  strings.TrimSpace(text),
		specs: parseSpecLines(text),
		sel:   sel,
	}
}

// block-level tags that terminate a visible line
var lineBreakTags = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "table": true, "section": true,
}

// textWithBreaks renders the selection's text the way a browser's innerText
// would: block elements end their line. Plain Text() glues adjacent
// paragraphs together, which destroys the line-oriented spec parsing.
func textWithBreaks(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeNodeText(&b, n)
	}
	return b.String()
}

func writeNodeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		if n.Data == "br" {
			b.WriteString("\n")
			return
		}
		if n.Data == "script" || n.Data == "style" {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNodeText(b, c)
		}
		if lineBreakTags[n.Data] {
			b.WriteString("\n")
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNodeText(b, c)
		}
	}
}

// FromHTML builds a Block from a raw HTML fragment.
func FromHTML(html string) Block {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return FromText(html)
	}
	return NewBlock(doc.Selection)
}

// FromText builds a Block from plain text, for sources without markup.
func FromText(text string) Block {
	return Block{
		text:  strings.TrimSpace(text),
		specs: parseSpecLines(text),
	}
}

// Text returns the full block text
func (b Block) Text() string {
	return b.text
}

// Empty reports whether the block carries no text at all
func (b Block) Empty() bool {
	return b.text == ""
}

// Lookup returns the value for the first alias present in the key/value view.
// Aliases are matched accent- and case-insensitively.
func (b Block) Lookup(aliases ...string) string {
	for _, alias := range aliases {
		if v, ok := b.specs[normalizeKey(alias)]; ok && v != "" {
			return v
		}
	}
	return ""
}

// HeadingSibling finds a <strong> heading whose text contains label and
// returns the text of the next non-empty paragraph. Headings containing any
// exclude token are skipped, so "Memória" does not match "Velocidade da
// memória" blocks.
func (b Block) HeadingSibling(label string, exclude ...string) string {
	if b.sel == nil {
		return ""
	}
	want := normalizeKey(label)
	out := ""
	b.sel.Find("strong").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		heading := normalizeKey(strings.TrimSuffix(strings.TrimSpace(s.Text()), ":"))
		if !strings.Contains(heading, want) {
			return true
		}
		for _, ex := range exclude {
			if strings.Contains(heading, normalizeKey(ex)) {
				return true
			}
		}
		for sib := s.Closest("p").Next(); sib.Length() > 0; sib = sib.Next() {
			if txt := cleanLine(sib.Text()); txt != "" {
				out = txt
				return false
			}
		}
		return true
	})
	return out
}

// LineValue scans the block line by line for pattern (which must capture one
// group) and returns the first capture.
func (b Block) LineValue(pattern *regexp.Regexp) string {
	for _, line := range strings.Split(b.text, "\n") {
		if m := pattern.FindStringSubmatch(cleanLine(line)); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// parseSpecLines splits the visible lines into a normalized key -> value map.
// Lines look like "- Capacidade: 8 GB" or "Soquete: AM4"; lines without a
// separator are ignored.
func parseSpecLines(text string) map[string]string {
	specs := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		line = cleanLine(line)
		if line == "" || !strings.Contains(line, ":") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		key := normalizeKey(parts[0])
		val := strings.Trim(strings.TrimSpace(parts[1]), `"`)
		if key == "" || val == "" {
			continue
		}
		if _, exists := specs[key]; !exists {
			specs[key] = val
		}
	}
	return specs
}

// cleanLine trims whitespace and the leading "- " bullet retailers use
func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "-–— ")
	return strings.TrimSpace(line)
}

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var spaceRun = regexp.MustCompile(`\s+`)

// normalizeKey strips accents, collapses whitespace and lowercases, so
// "Resolução  Máxima" and "resolucao maxima" compare equal.
func normalizeKey(s string) string {
	out, _, err := transform.String(deaccent, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(spaceRun.ReplaceAllString(strings.TrimSpace(out), " "))
}
