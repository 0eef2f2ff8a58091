// Package catalog provides a SQLite-backed catalog of compiled concepts
// with optional FTS5 full-text search. The build repopulates it from
// scratch on every run; the preview API and MCP tools read from it.
package catalog

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const coreSchemaSQL = `
CREATE TABLE IF NOT EXISTS concepts (
	key        TEXT PRIMARY KEY,
	title      TEXT NOT NULL DEFAULT '',
	uri        TEXT NOT NULL DEFAULT '',
	definition TEXT NOT NULL DEFAULT '',
	body       TEXT NOT NULL DEFAULT '',
	top        INTEGER NOT NULL DEFAULT 0,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS relations (
	source    TEXT NOT NULL,
	target    TEXT NOT NULL,
	predicate TEXT NOT NULL,
	UNIQUE(source, target, predicate)
);

CREATE INDEX IF NOT EXISTS idx_relations_source ON relations(source);
CREATE INDEX IF NOT EXISTS idx_relations_target ON relations(target);
`

// DB wraps a sql.DB with catalog-specific operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("catalog: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("catalog: ping: %w", err)
	}
	if _, err := conn.Exec(coreSchemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("catalog: apply core schema: %w", err)
	}
	if err := initFTS(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("catalog: apply fts schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Reset drops every catalog row. The builder calls it before a full
// rebuild so removed notes do not linger.
func (db *DB) Reset() error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("catalog: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	_, _ = tx.Exec(`DELETE FROM relations`)
	_, _ = tx.Exec(`DELETE FROM concepts`)
	ftsReset(tx)

	return tx.Commit()
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
