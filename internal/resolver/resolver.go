// Package resolver implements the title→identifier link index built in the
// first build phase and consumed read-only by every later stage.
package resolver

import (
	"strings"

	"github.com/jklemke/obsidian-to-jsonld/internal/models"
)

// Index maps normalized note titles to concept keys. It is built once by
// Build and never written afterwards; callers receive it by value and
// treat it as immutable, which makes the two-phase barrier explicit.
type Index struct {
	byTitle map[string]string
}

// Normalize produces the lookup key for a title: trimmed and lower-cased.
func Normalize(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Build scans all notes and indexes every one that carries a concept key.
// When two notes normalize to the same title the last-scanned note wins;
// this is documented ambiguity, not an error.
func Build(notes []*models.Note) Index {
	byTitle := make(map[string]string, len(notes))
	for _, n := range notes {
		if n.Key == "" {
			continue
		}
		byTitle[Normalize(n.Title)] = n.Key
	}
	return Index{byTitle: byTitle}
}

// Resolve looks up a title and returns the concept key for it.
func (ix Index) Resolve(title string) (string, bool) {
	key, ok := ix.byTitle[Normalize(title)]
	return key, ok
}

// Len returns the number of indexed titles.
func (ix Index) Len() int {
	return len(ix.byTitle)
}
