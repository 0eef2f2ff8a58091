package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jklemke/obsidian-to-jsonld/internal/apperr"
)

// ConceptRow represents a row in the concepts table.
type ConceptRow struct {
	Key        string
	Title      string
	URI        string
	Definition string
	Top        bool
	UpdatedAt  time.Time
}

// Relation is one directed edge between two concepts.
type Relation struct {
	Target    string `json:"target"`    // target concept key
	Predicate string `json:"predicate"` // "broader", "narrower", or "related"
}

// SearchResult represents one search hit.
type SearchResult struct {
	Key     string
	Title   string
	URI     string
	Snippet string
}

// GraphNode is one node of the relation graph.
type GraphNode struct {
	Key   string
	Title string
}

// GraphLink is one edge of the relation graph.
type GraphLink struct {
	Source    string
	Target    string
	Predicate string
}

// UpsertConcept inserts or replaces a concept, its FTS entry, and its
// outgoing relations within a transaction. body is the searchable text of
// the whole note.
func (db *DB) UpsertConcept(c ConceptRow, body string, rels []Relation) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("catalog: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	top := 0
	if c.Top {
		top = 1
	}
	_, err = tx.Exec(`
		INSERT INTO concepts (key, title, uri, definition, body, top, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			title      = excluded.title,
			uri        = excluded.uri,
			definition = excluded.definition,
			body       = excluded.body,
			top        = excluded.top,
			updated_at = excluded.updated_at
	`, c.Key, c.Title, c.URI, c.Definition, body, top, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("catalog: upsert concept: %w", err)
	}

	// FTS upsert (no-op when the FTS5 tag is absent).
	if err := ftsUpsert(tx, c.Key, c.Title, c.Definition, body); err != nil {
		return err
	}

	// Replace relations: delete old then bulk insert.
	_, _ = tx.Exec(`DELETE FROM relations WHERE source = ?`, c.Key)
	if len(rels) > 0 {
		stmt, err := tx.Prepare(`INSERT OR IGNORE INTO relations (source, target, predicate) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("catalog: prepare relation insert: %w", err)
		}
		defer stmt.Close()
		for _, rel := range rels {
			if _, err := stmt.Exec(c.Key, rel.Target, rel.Predicate); err != nil {
				return fmt.Errorf("catalog: insert relation: %w", err)
			}
		}
	}

	return tx.Commit()
}

// GetConcept returns one concept by key, or apperr.ErrNotFound.
func (db *DB) GetConcept(key string) (*ConceptRow, error) {
	var c ConceptRow
	var top int
	err := db.conn.QueryRow(`
		SELECT key, title, uri, definition, top, updated_at
		FROM concepts WHERE key = ?
	`, key).Scan(&c.Key, &c.Title, &c.URI, &c.Definition, &top, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: get concept: %w", err)
	}
	c.Top = top != 0
	return &c, nil
}

// ListConcepts returns every concept ordered by title.
func (db *DB) ListConcepts() ([]ConceptRow, error) {
	return db.queryConcepts(`
		SELECT key, title, uri, definition, top, updated_at
		FROM concepts ORDER BY title COLLATE NOCASE
	`)
}

// TopConcepts returns the concepts flagged as top concepts, by title.
func (db *DB) TopConcepts() ([]ConceptRow, error) {
	return db.queryConcepts(`
		SELECT key, title, uri, definition, top, updated_at
		FROM concepts WHERE top = 1 ORDER BY title COLLATE NOCASE
	`)
}

func (db *DB) queryConcepts(query string, args ...interface{}) ([]ConceptRow, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: query concepts: %w", err)
	}
	defer rows.Close()

	var out []ConceptRow
	for rows.Next() {
		var c ConceptRow
		var top int
		if err := rows.Scan(&c.Key, &c.Title, &c.URI, &c.Definition, &top, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.Top = top != 0
		out = append(out, c)
	}
	return out, rows.Err()
}

// Graph returns every concept node and every relation edge.
func (db *DB) Graph() ([]GraphNode, []GraphLink, error) {
	nodeRows, err := db.conn.Query(`SELECT key, title FROM concepts ORDER BY title COLLATE NOCASE`)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: graph nodes: %w", err)
	}
	defer nodeRows.Close()

	var nodes []GraphNode
	for nodeRows.Next() {
		var n GraphNode
		if err := nodeRows.Scan(&n.Key, &n.Title); err != nil {
			return nil, nil, err
		}
		nodes = append(nodes, n)
	}
	if err := nodeRows.Err(); err != nil {
		return nil, nil, err
	}

	linkRows, err := db.conn.Query(`SELECT source, target, predicate FROM relations`)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: graph links: %w", err)
	}
	defer linkRows.Close()

	var links []GraphLink
	for linkRows.Next() {
		var l GraphLink
		if err := linkRows.Scan(&l.Source, &l.Target, &l.Predicate); err != nil {
			return nil, nil, err
		}
		links = append(links, l)
	}
	return nodes, links, linkRows.Err()
}
