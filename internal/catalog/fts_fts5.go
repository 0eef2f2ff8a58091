//go:build sqlite_fts5

package catalog

import (
	"database/sql"
	"fmt"
)

func initFTS(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE VIRTUAL TABLE IF NOT EXISTS concepts_fts USING fts5(
			key UNINDEXED,
			title,
			definition,
			body,
			tokenize = 'unicode61 remove_diacritics 2'
		);
	`)
	return err
}

func ftsUpsert(tx *sql.Tx, key, title, definition, body string) error {
	_, _ = tx.Exec(`DELETE FROM concepts_fts WHERE key = ?`, key)
	_, err := tx.Exec(`INSERT INTO concepts_fts (key, title, definition, body) VALUES (?, ?, ?, ?)`,
		key, title, definition, body)
	if err != nil {
		return fmt.Errorf("catalog: upsert fts: %w", err)
	}
	return nil
}

func ftsReset(tx *sql.Tx) {
	_, _ = tx.Exec(`DELETE FROM concepts_fts`)
}

// Search performs an FTS5 full-text search and returns matching results with snippets.
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(`
		SELECT f.key,
		       f.title,
		       c.uri,
		       snippet(concepts_fts, 3, '<b>', '</b>', '...', 64)
		FROM concepts_fts f
		JOIN concepts c ON c.key = f.key
		WHERE concepts_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("catalog: search: %w", err)
	}
	defer rows.Close()

	var out []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.Key, &r.Title, &r.URI, &r.Snippet); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
