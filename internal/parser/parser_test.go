package parser

import (
	"testing"
)

func TestParse_FrontmatterAndMeta(t *testing.T) {
	input := []byte("---\nconcept-key: abc123\ntop-concept: true\n---\n# Definition\nA thing.\n")
	n, err := Parse("Grammar", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Key != "abc123" {
		t.Errorf("key = %q, want %q", n.Key, "abc123")
	}
	if n.Title != "Grammar" {
		t.Errorf("title = %q, want %q", n.Title, "Grammar")
	}
	if !n.TopConcept {
		t.Error("top-concept = false, want true")
	}
	if got := n.Sections.Get("Definition"); len(got) != 1 || got[0] != "A thing." {
		t.Errorf("Definition = %v", got)
	}
}

func TestParse_TitleOverride(t *testing.T) {
	input := []byte("---\nconcept-key: abc\ntitle: Better Name\n---\nbody\n")
	n, err := Parse("file-stem", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Title != "Better Name" {
		t.Errorf("title = %q, want %q", n.Title, "Better Name")
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	input := []byte("# Definition\nSome text.\n")
	n, err := Parse("Plain", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Frontmatter != nil {
		t.Errorf("expected nil frontmatter, got %v", n.Frontmatter)
	}
	if n.Key != "" {
		t.Errorf("key = %q, want empty", n.Key)
	}
	if n.Title != "Plain" {
		t.Errorf("title = %q, want %q", n.Title, "Plain")
	}
}

func TestParse_InvalidYAMLFallback(t *testing.T) {
	input := []byte("---\n: invalid: yaml: {{{\n---\n# Definition\nBody\n")
	n, err := Parse("Broken", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Invalid YAML falls back to treating everything as body; the note
	// carries no key and is excluded downstream.
	if n.Frontmatter != nil {
		t.Error("expected nil frontmatter on invalid YAML")
	}
	if n.Key != "" {
		t.Errorf("key = %q, want empty", n.Key)
	}
}

func TestParse_RuleLineDoesNotCloseFrontmatter(t *testing.T) {
	// A line that merely starts with --- (a horizontal rule) must not be
	// taken as the closing delimiter; the block runs to the real one, and
	// since the block is not valid YAML the note falls back to body-only
	// instead of parsing a truncated metadata record.
	input := []byte("---\nconcept-key: abc123\n----\nmore: x\n---\n# Definition\nBody\n")
	n, err := Parse("Ruled", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Key != "" {
		t.Errorf("key = %q, want empty (no truncated metadata)", n.Key)
	}
	if n.Frontmatter != nil {
		t.Errorf("frontmatter = %v, want nil", n.Frontmatter)
	}
	if got := n.Sections.Get("Definition"); len(got) != 1 || got[0] != "Body" {
		t.Errorf("Definition = %v", got)
	}
}

func TestParse_ClosingDelimiterAtEOF(t *testing.T) {
	n, err := Parse("Bare", []byte("---\nconcept-key: abc123\n---"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Key != "abc123" {
		t.Errorf("key = %q, want %q", n.Key, "abc123")
	}
	if len(n.Sections) != 0 {
		t.Errorf("sections = %v, want none", n.Sections)
	}
}

func TestParseSections_Basic(t *testing.T) {
	body := "intro discarded\n# Definition\nLine one.\nLine two.\n\n# Broader\n- [[Rhetoric]]\n"
	s := ParseSections(body)
	if len(s) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(s))
	}
	if s[0].Heading != "Definition" || s[1].Heading != "Broader" {
		t.Errorf("headings = %q, %q", s[0].Heading, s[1].Heading)
	}
	if len(s[0].Lines) != 2 || s[0].Lines[0] != "Line one." {
		t.Errorf("Definition lines = %v", s[0].Lines)
	}
	if len(s[1].Lines) != 1 || s[1].Lines[0] != "- [[Rhetoric]]" {
		t.Errorf("Broader lines = %v", s[1].Lines)
	}
}

func TestParseSections_SubHeadingsStayInSection(t *testing.T) {
	body := "# Definition\n## Detail\ntext\n"
	s := ParseSections(body)
	if len(s) != 1 {
		t.Fatalf("len(sections) = %d, want 1", len(s))
	}
	if len(s[0].Lines) != 2 || s[0].Lines[0] != "## Detail" {
		t.Errorf("lines = %v", s[0].Lines)
	}
}

func TestParseSections_DuplicateHeadingLastWins(t *testing.T) {
	body := "# Definition\nfirst\n# Example\nex\n# Definition\nsecond\n"
	s := ParseSections(body)
	if len(s) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(s))
	}
	// The duplicate keeps its original position but carries the later lines.
	if s[0].Heading != "Definition" {
		t.Errorf("first heading = %q", s[0].Heading)
	}
	if got := s.Get("Definition"); len(got) != 1 || got[0] != "second" {
		t.Errorf("Definition = %v, want [second]", got)
	}
}

func TestParseSections_BlankLinesDropped(t *testing.T) {
	body := "# Definition\n\n  \nkept\n\n"
	s := ParseSections(body)
	if got := s.Get("Definition"); len(got) != 1 || got[0] != "kept" {
		t.Errorf("Definition = %v, want [kept]", got)
	}
}

func TestParseFlag(t *testing.T) {
	cases := []struct {
		in   interface{}
		want bool
	}{
		{true, true},
		{false, false},
		{"true", true},
		{"True", true},
		{"TRUE", true},
		{" true ", true},
		{"false", false},
		{"yes", false},
		{nil, false},
		{1, false},
	}
	for _, c := range cases {
		if got := ParseFlag(c.in); got != c.want {
			t.Errorf("ParseFlag(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
