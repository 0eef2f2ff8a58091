package htmlfmt

import (
	"strings"
	"testing"
)

func TestFormat_BlockNesting(t *testing.T) {
	got := Format("<div><p>hello</p></div>")
	want := "<div>\n  <p>hello</p>\n</div>"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormat_ListLayout(t *testing.T) {
	got := Format("<ul><li>a</li><li>b</li></ul>")
	want := "<ul>\n  <li>a</li>\n  <li>b</li>\n</ul>"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormat_InlineTagsStayInline(t *testing.T) {
	got := Format(`<p>see <a href="/x/" class="internal-link">X</a> here</p>`)
	want := `<p>see <a href="/x/" class="internal-link">X</a> here</p>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormat_IgnoresInputWhitespace(t *testing.T) {
	messy := "<div>\n\n\n      <p>   hello</p>\n\t\t</div>"
	tidy := "<div><p>   hello</p></div>"
	if Format(messy) != Format(tidy) {
		t.Errorf("layout depends on input whitespace:\n%q\nvs\n%q", Format(messy), Format(tidy))
	}
}

func TestFormat_VoidTagsDoNotIndentChildren(t *testing.T) {
	got := Format(`<head><meta charset="utf-8"><link rel="stylesheet" href="/css/style.css"></head>`)
	want := strings.Join([]string{
		"<head>",
		`  <meta charset="utf-8">`,
		`  <link rel="stylesheet" href="/css/style.css">`,
		"</head>",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormat_BareAttribute(t *testing.T) {
	got := Format(`<body><script src="/js/livereload.js" defer></script></body>`)
	if !strings.Contains(got, `<script src="/js/livereload.js" defer>`) {
		t.Errorf("bare attribute rewritten: %s", got)
	}
}

func TestFormat_AttributeOrderPreserved(t *testing.T) {
	got := Format(`<p><a href="https://example.org" class="external-link" target="_blank" rel="noopener noreferrer">x</a></p>`)
	if !strings.Contains(got, `href="https://example.org" class="external-link" target="_blank" rel="noopener noreferrer"`) {
		t.Errorf("attribute order changed: %s", got)
	}
}

func TestFormat_Doctype(t *testing.T) {
	got := Format("<!DOCTYPE html><html><head></head><body></body></html>")
	want := strings.Join([]string{
		"<!DOCTYPE html>",
		"<html>",
		"  <head>",
		"  </head>",
		"  <body>",
		"  </body>",
		"</html>",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormat_CommentsDropped(t *testing.T) {
	got := Format("<div><!-- build marker --><p>a</p></div>")
	if strings.Contains(got, "build marker") || strings.Contains(got, "<!--") {
		t.Errorf("comment survived: %s", got)
	}
	if strings.Contains(got, "\n\n") {
		t.Errorf("comment left a blank line: %q", got)
	}
}

func TestFormat_ScriptContentPreserved(t *testing.T) {
	in := `<head><script type="application/ld+json">{"@id": "https://example.test/0.0.1/abc123/"}</script></head>`
	got := Format(in)
	if !strings.Contains(got, `{"@id": "https://example.test/0.0.1/abc123/"}`) {
		t.Errorf("script body altered: %s", got)
	}
}

func TestFormat_Idempotent(t *testing.T) {
	pages := []string{
		"<div><p>hello</p></div>",
		"<!DOCTYPE html><html><head><title>T</title></head><body><main><ul><li>a</li></ul></main></body></html>",
		`<body><script type="application/ld+json">{"k": [1, 2]}</script></body>`,
		"<div>\n\n  <!-- gone -->\n<p>x <small>y</small></p></div>",
	}
	for _, page := range pages {
		once := Format(page)
		twice := Format(once)
		if once != twice {
			t.Errorf("not a fixed point for %q:\nonce:\n%s\ntwice:\n%s", page, once, twice)
		}
	}
}

func TestFormat_FullPage(t *testing.T) {
	in := `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Grammar</title>
</head>
<body>
<main>
<h2>Definition</h2>
<p>The study of sentence structure.</p>
<ul>
<li>syntax</li>
</ul>
</main>
</body>
</html>`
	got := Format(in)

	if !strings.HasPrefix(got, "<!DOCTYPE html>\n<html lang=\"en\">") {
		t.Errorf("prologue wrong:\n%s", got)
	}
	if !strings.Contains(got, "\n      <h2>Definition</h2>") {
		t.Errorf("content tag not indented under main:\n%s", got)
	}
	if !strings.Contains(got, "\n      <ul>\n        <li>syntax</li>\n      </ul>") {
		t.Errorf("list layout wrong:\n%s", got)
	}
	if Format(got) != got {
		t.Error("full page formatting is not a fixed point")
	}
}
