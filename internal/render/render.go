// Package render turns section lines into HTML fragments: it classifies
// each line as list item, sub-heading, or paragraph and rewrites inline
// wikilinks and external Markdown links into anchors.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jklemke/obsidian-to-jsonld/internal/resolver"
)

var (
	bulletRe   = regexp.MustCompile(`^[-*+]\s+(.*)`)
	wikilinkRe = regexp.MustCompile(`\[\[(.*?)\]\]`)
	// The leading !? captures image tokens so the rewrite callback can
	// leave them untouched (RE2 has no lookbehind).
	mdLinkRe = regexp.MustCompile(`!?\[([^\]]+)\]\(([^)]+)\)`)
)

// SplitWikilink splits the inner text of a [[target|display]] token.
// Display defaults to the target when no separator is present.
func SplitWikilink(inner string) (target, display string) {
	if i := strings.Index(inner, "|"); i >= 0 {
		return inner[:i], inner[i+1:]
	}
	return inner, inner
}

// Renderer rewrites inline references against a built link index.
type Renderer struct {
	Index resolver.Index
	// PagePath maps a concept key to the site-absolute page path used as
	// the anchor href for internal links.
	PagePath func(key string) string
}

// Inline resolves cross-references and external links in a single line of
// text. Wikilink substitution runs first so that an href produced from a
// wikilink is never re-matched as an external link.
func (r Renderer) Inline(text string) string {
	text = wikilinkRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := m[2 : len(m)-2]
		target, display := SplitWikilink(inner)
		key, ok := r.Index.Resolve(target)
		if !ok {
			// Unresolved references degrade to plain display text.
			return display
		}
		return fmt.Sprintf(`<a href="%s" class="internal-link">%s</a>`, r.PagePath(key), display)
	})

	text = mdLinkRe.ReplaceAllStringFunc(text, func(m string) string {
		if strings.HasPrefix(m, "!") {
			// Image token: pass through untouched.
			return m
		}
		sub := mdLinkRe.FindStringSubmatch(m)
		label, url := sub[1], sub[2]
		return fmt.Sprintf(`<a href="%s" class="external-link" target="_blank" rel="noopener noreferrer">%s</a>`, url, label)
	})

	return text
}

// Section renders a section's lines to HTML. Consecutive bulleted lines
// share one <ul>; `##` lines become <h3>; everything else is a <p>.
func (r Renderer) Section(lines []string) string {
	var parts []string
	inList := false

	closeList := func() {
		if inList {
			parts = append(parts, "</ul>")
			inList = false
		}
	}

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if m := bulletRe.FindStringSubmatch(stripped); m != nil {
			if !inList {
				parts = append(parts, "<ul>")
				inList = true
			}
			parts = append(parts, fmt.Sprintf("<li>%s</li>", r.Inline(m[1])))
			continue
		}

		if strings.HasPrefix(stripped, "##") {
			closeList()
			content := strings.TrimSpace(strings.TrimLeft(stripped, "#"))
			parts = append(parts, fmt.Sprintf("<h3>%s</h3>", r.Inline(content)))
			continue
		}

		closeList()
		parts = append(parts, fmt.Sprintf("<p>%s</p>", r.Inline(stripped)))
	}

	closeList()
	return strings.Join(parts, "\n")
}
