package resolver

import (
	"testing"

	"github.com/jklemke/obsidian-to-jsonld/internal/models"
)

func TestBuild_IndexesKeyedNotesOnly(t *testing.T) {
	notes := []*models.Note{
		{Title: "Grammar", Key: "abc123"},
		{Title: "Draft", Key: ""},
		{Title: "Rhetoric", Key: "def456"},
	}
	ix := Build(notes)
	if ix.Len() != 2 {
		t.Fatalf("len = %d, want 2", ix.Len())
	}
	if key, ok := ix.Resolve("Grammar"); !ok || key != "abc123" {
		t.Errorf("Resolve(Grammar) = %q, %v", key, ok)
	}
	if _, ok := ix.Resolve("Draft"); ok {
		t.Error("keyless note should not resolve")
	}
}

func TestResolve_CaseInsensitiveAndTrimmed(t *testing.T) {
	ix := Build([]*models.Note{{Title: "Grammar", Key: "abc123"}})
	for _, title := range []string{"grammar", "GRAMMAR", "  Grammar  "} {
		if key, ok := ix.Resolve(title); !ok || key != "abc123" {
			t.Errorf("Resolve(%q) = %q, %v", title, key, ok)
		}
	}
}

func TestBuild_DuplicateTitleLastWins(t *testing.T) {
	notes := []*models.Note{
		{Title: "Grammar", Key: "first"},
		{Title: "grammar", Key: "second"},
	}
	ix := Build(notes)
	if ix.Len() != 1 {
		t.Fatalf("len = %d, want 1", ix.Len())
	}
	if key, _ := ix.Resolve("Grammar"); key != "second" {
		t.Errorf("Resolve = %q, want second", key)
	}
}

func TestResolve_Miss(t *testing.T) {
	ix := Build(nil)
	if _, ok := ix.Resolve("nothing"); ok {
		t.Error("empty index should not resolve anything")
	}
}
