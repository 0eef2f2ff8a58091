// Package htmlfmt re-serializes engine-generated markup into a canonical,
// deterministically indented form. The template stage is free to emit any
// whitespace it likes; this pass is the single source of truth for layout.
package htmlfmt

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const indentWidth = 2

// tagClass drives the layout decision for a tag.
type tagClass int

const (
	// classInline tags are appended with no added whitespace.
	classInline tagClass = iota
	// classBlock tags open and close on their own indented lines and
	// change the indentation depth.
	classBlock
	// classContent tags open on a new indented line; their closing tag
	// stays on the same line as their text unless a nested block element
	// forced a line break in between.
	classContent
)

var blockTags = map[string]bool{
	"html": true, "head": true, "body": true, "header": true,
	"footer": true, "main": true, "aside": true, "section": true,
	"div": true, "nav": true, "ul": true, "ol": true,
	"script": true, "style": true, "meta": true, "link": true,
}

var contentTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "li": true, "title": true, "blockquote": true, "small": true,
}

// voidTags never carry content; block-classed void tags open without
// incrementing the depth.
var voidTags = map[string]bool{
	"meta": true, "link": true, "img": true, "br": true, "hr": true, "input": true,
}

var blankLinesRe = regexp.MustCompile(`\n\s*\n`)

func classify(tag string) tagClass {
	switch {
	case blockTags[tag]:
		return classBlock
	case contentTags[tag]:
		return classContent
	default:
		return classInline
	}
}

// writer tracks the only formatting state the pass needs: the output, the
// current depth, and whether the last byte written was a newline.
type writer struct {
	b      strings.Builder
	endsNL bool
}

func (w *writer) write(s string) {
	if s == "" {
		return
	}
	w.b.WriteString(s)
	w.endsNL = strings.HasSuffix(s, "\n")
}

func (w *writer) newlineIfNeeded() {
	if w.b.Len() > 0 && !w.endsNL {
		w.write("\n")
	}
}

func (w *writer) indent(depth int) {
	if depth > 0 {
		w.write(strings.Repeat(" ", depth*indentWidth))
	}
}

// renderTag serializes a tag with its attributes in source order.
func renderTag(tok html.Token) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(tok.Data)
	for _, a := range tok.Attr {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		if a.Val != "" {
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(a.Val))
			sb.WriteByte('"')
		}
	}
	sb.WriteByte('>')
	return sb.String()
}

// Format re-emits markup with deterministic indentation, independent of the
// input's whitespace. Running Format on its own output is a no-op.
func Format(input string) string {
	z := html.NewTokenizer(strings.NewReader(input))
	w := &writer{}
	depth := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			// Tokenizer signals EOF (or an unrecoverable input error,
			// which best-effort formatting treats the same way).
			out := blankLinesRe.ReplaceAllString(w.b.String(), "\n")
			return out

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch classify(tok.Data) {
			case classBlock:
				w.newlineIfNeeded()
				w.indent(depth)
				w.write(renderTag(tok))
				if !voidTags[tok.Data] {
					depth++
				}
			case classContent:
				w.newlineIfNeeded()
				w.indent(depth)
				w.write(renderTag(tok))
			default:
				w.write(renderTag(tok))
			}

		case html.EndTagToken:
			tok := z.Token()
			switch classify(tok.Data) {
			case classBlock:
				if !voidTags[tok.Data] {
					depth--
					w.newlineIfNeeded()
					w.indent(depth)
				}
				w.write("</" + tok.Data + ">")
			case classContent:
				// A nested block already broke the line; re-indent so
				// the closing tag lines up. Otherwise close inline.
				if w.endsNL {
					w.indent(depth)
				}
				w.write("</" + tok.Data + ">")
			default:
				w.write("</" + tok.Data + ">")
			}

		case html.TextToken:
			data := string(z.Text())
			if strings.TrimSpace(data) == "" {
				continue
			}
			// Drop a trailing whitespace-only line: it is layout from a
			// previous formatting pass, not content, and keeping it
			// would break idempotency for raw-text elements.
			if i := strings.LastIndex(data, "\n"); i >= 0 && strings.TrimSpace(data[i:]) == "" {
				data = data[:i+1]
			}
			w.write(data)

		case html.DoctypeToken:
			tok := z.Token()
			w.write("<!DOCTYPE " + tok.Data + ">\n")

		case html.CommentToken:
			// Comment bodies are not preserved; the indentation-only
			// placeholder collapses with the final blank-line pass.
			w.newlineIfNeeded()
			w.indent(depth)
		}
	}
}
