package mcpserver

// NoteFormatContract describes the canonical vocabulary note format that
// LLM consumers should follow when authoring concept notes.
const NoteFormatContract = `# Vocabulary Note Format Contract

Every Markdown note compiled into the SKOS vocabulary MUST follow this
structure.

## Structure

` + "```" + `markdown
---
concept-key: nU2JNEcOO9ZHxSlpZMwbCgOG   # REQUIRED for publication
title: Display Title                     # OPTIONAL - overrides the filename stem
top-concept: true                        # OPTIONAL - bool or "true"/"false"
---

# Definition

One or more lines describing the concept. Supports [[wikilinks]] and
[external links](https://example.org).

# Broader

- [[Parent Concept]]

# Narrower

- [[Child Concept A]]
- [[Child Concept B]]

# Alternative Label

- Synonym One
- Synonym Two
` + "```" + `

## Rules

1. **` + "`" + `concept-key` + "`" + ` is the stable identifier.** Notes without one are
   scanned but never published, linked to, or emitted into the graph.
2. **The filename stem is the title** unless a ` + "`" + `title` + "`" + ` field overrides
   it. Titles resolve case-insensitively when other notes link to them.
3. **H1 headings segment the note.** These headings map to SKOS
   properties: Definition, Broader, Narrower, Related, Alternative Label,
   Editorial Note, History Note, Scope Note, Example. Other headings are
   rendered on the page but not emitted into the graph.
4. **Relation sections (Broader/Narrower/Related)** contain one
   ` + "`" + `[[wikilink]]` + "`" + ` per line pointing at another note's title. Lines whose
   target has no concept-key are dropped from the graph.
5. **Wikilinks** use ` + "`" + `[[Target]]` + "`" + ` or ` + "`" + `[[Target|display text]]` + "`" + `.
6. **` + "`" + `top-concept: true` + "`" + `** marks the note for the scheme's
   hasTopConcept list; it still needs a concept-key.
7. **Encoding** is UTF-8, headings in English as listed above.
`
