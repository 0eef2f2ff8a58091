// Package parser extracts frontmatter metadata and H1-delimited sections
// from Markdown notes.
package parser

import (
	"bytes"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jklemke/obsidian-to-jsonld/internal/models"
)

// Frontmatter keys recognized on a note.
const (
	KeyConceptKey = "concept-key"
	KeyTitle      = "title"
	KeyTopConcept = "top-concept"
)

var headingRe = regexp.MustCompile(`^#\s+(.*)`)

// Parse extracts metadata and sections from raw Markdown bytes. The stem
// (filename without extension) supplies the default title.
func Parse(stem string, data []byte) (*models.Note, error) {
	fm, body, err := splitFrontmatter(data)
	if err != nil {
		return nil, err
	}

	n := &models.Note{
		Title:       stem,
		Frontmatter: fm,
		Sections:    ParseSections(body),
	}
	if fm != nil {
		if k, ok := fm[KeyConceptKey].(string); ok {
			n.Key = strings.TrimSpace(k)
		}
		if t, ok := fm[KeyTitle].(string); ok && t != "" {
			n.Title = t
		}
		n.TopConcept = ParseFlag(fm[KeyTopConcept])
	}
	return n, nil
}

// splitFrontmatter separates YAML frontmatter (between leading --- delimiters)
// from the Markdown body. If no frontmatter is found the entire content is body.
func splitFrontmatter(data []byte) (map[string]interface{}, string, error) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, string(data), nil
	}

	// Find the end delimiter. It must occupy a whole line: a line that
	// merely starts with --- (a horizontal rule, say) does not close the
	// frontmatter.
	rest := trimmed[len(delim):]
	idx := -1
	for off := 0; ; {
		i := bytes.Index(rest[off:], []byte("\n"+delim))
		if i < 0 {
			break
		}
		pos := off + i
		after := rest[pos+1+len(delim):]
		if len(after) == 0 || after[0] == '\n' || bytes.HasPrefix(after, []byte("\r\n")) {
			idx = pos
			break
		}
		off = pos + 1
	}
	if idx < 0 {
		// No closing delimiter — treat everything as body.
		return nil, string(data), nil
	}

	yamlBlock := rest[:idx]
	// Body starts after closing delimiter line.
	afterDelim := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	var fm map[string]interface{}
	if err := yaml.Unmarshal(yamlBlock, &fm); err != nil {
		// Invalid YAML — treat everything as body. The note then has no
		// concept-key and is excluded downstream; the caller logs it.
		return nil, string(data), nil
	}

	return fm, body, nil
}

// ParseSections splits a note body at single-level headings (`# Heading`)
// into an ordered mapping of heading text to the non-blank, trimmed lines
// that follow it. Lines before the first heading are discarded. A repeated
// heading resets the earlier section's lines (last writer wins) while the
// section keeps its original position.
func ParseSections(body string) models.Sections {
	var sections models.Sections
	current := -1

	for _, line := range strings.Split(body, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			heading := strings.TrimSpace(m[1])
			current = -1
			for i := range sections {
				if sections[i].Heading == heading {
					sections[i].Lines = nil
					current = i
					break
				}
			}
			if current < 0 {
				sections = append(sections, models.Section{Heading: heading})
				current = len(sections) - 1
			}
			continue
		}
		if current < 0 {
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			sections[current].Lines = append(sections[current].Lines, trimmed)
		}
	}
	return sections
}

// ParseFlag interprets a frontmatter flag value as a boolean. Only bool
// true and the case-insensitive string "true" count as set; any other
// value, including ones that fail to parse, is false.
func ParseFlag(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(strings.TrimSpace(t), "true")
	default:
		return false
	}
}
