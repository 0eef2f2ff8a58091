// Package storage defines the file-system abstraction used for the source
// vault and the generated site root.
package storage

// NoteFile describes one Markdown file found in the vault.
type NoteFile struct {
	// Path is relative to the vault root.
	Path string
	// Stem is the filename without directory or .md extension. The stem
	// doubles as the note's default title.
	Stem string
}

// Provider is the interface for vault and output file operations.
type Provider interface {
	// List returns every .md file under dir (relative to the root), in
	// walk order.
	List(dir string) ([]NoteFile, error)
	// Read returns the raw bytes of the file at path (relative to the root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the root),
	// creating parent directories as needed.
	Write(path string, content []byte) error
}
