// Package models defines the domain types shared across the compiler.
package models

// Note represents one parsed Markdown file from the vault.
type Note struct {
	// Path is the vault-relative file path.
	Path string
	// Key is the stable identifier from the `concept-key` frontmatter
	// field. Notes without a key are scanned but never linked to,
	// emitted, or rendered.
	Key string
	// Title is the display label: the `title` frontmatter override when
	// present, otherwise the filename stem.
	Title string
	// TopConcept reports whether the `top-concept` flag parsed truthy.
	TopConcept bool
	// Sections holds the body segmented by H1 headings, in order.
	Sections Sections
	// Frontmatter is the raw decoded metadata record.
	Frontmatter map[string]interface{}
}

// Section is one named, ordered run of non-blank body lines.
type Section struct {
	Heading string
	Lines   []string
}

// Sections is an ordered collection of sections. Heading lookup is
// case-sensitive and literal; duplicate headings keep the first
// occurrence's position but carry the last occurrence's lines.
type Sections []Section

// Get returns the lines for heading, or nil when the section is absent.
func (s Sections) Get(heading string) []string {
	for i := range s {
		if s[i].Heading == heading {
			return s[i].Lines
		}
	}
	return nil
}

// Has reports whether a section with the given heading exists.
func (s Sections) Has(heading string) bool {
	for i := range s {
		if s[i].Heading == heading {
			return true
		}
	}
	return false
}
