//go:build sqlite_fts5

package catalog

import (
	"os"
	"strings"
	"testing"
	"time"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "o2j-fts-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestFTS5_TableExists(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM concepts_fts`).Scan(&count); err != nil {
		t.Fatalf("concepts_fts table missing: %v", err)
	}
}

func TestFTS5_SearchWithSnippet(t *testing.T) {
	db := testDB(t)
	row := ConceptRow{
		Key:        "abc123",
		Title:      "Grammar",
		URI:        "https://example.test/0.0.1/abc123/",
		Definition: "The study of sentence structure.",
		UpdatedAt:  time.Now().UTC(),
	}
	if err := db.UpsertConcept(row, "Grammar concerns morphology and sentence structure.", nil); err != nil {
		t.Fatalf("UpsertConcept: %v", err)
	}

	results, err := db.Search("morphology", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Key != "abc123" {
		t.Errorf("key = %q", results[0].Key)
	}
	if !strings.Contains(results[0].Snippet, "<b>") {
		t.Errorf("snippet missing highlight markers: %q", results[0].Snippet)
	}
}

func TestFTS5_UpsertReplacesContent(t *testing.T) {
	db := testDB(t)
	now := time.Now().UTC()
	_ = db.UpsertConcept(ConceptRow{Key: "evo", Title: "Old", UpdatedAt: now}, "original text", nil)
	_ = db.UpsertConcept(ConceptRow{Key: "evo", Title: "New", UpdatedAt: now}, "replacement text", nil)

	results, _ := db.Search("original", 10)
	if len(results) != 0 {
		t.Error("old FTS content should be gone")
	}
	results, _ = db.Search("replacement", 10)
	if len(results) != 1 || results[0].Title != "New" {
		t.Errorf("FTS not updated: %+v", results)
	}
}

func TestFTS5_ResetClearsIndex(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertConcept(ConceptRow{Key: "gone", Title: "Gone", UpdatedAt: time.Now().UTC()}, "vanishing content", nil)

	if err := db.Reset(); err != nil {
		t.Fatal(err)
	}
	results, _ := db.Search("vanishing", 10)
	if len(results) != 0 {
		t.Error("reset left FTS content behind")
	}
}
