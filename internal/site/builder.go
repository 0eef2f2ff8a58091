// Package site orchestrates the two-phase build: scan and index every
// note, then render pages and emit graph documents into the output tree.
package site

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/jklemke/obsidian-to-jsonld/internal/catalog"
	"github.com/jklemke/obsidian-to-jsonld/internal/htmlfmt"
	"github.com/jklemke/obsidian-to-jsonld/internal/models"
	"github.com/jklemke/obsidian-to-jsonld/internal/parser"
	"github.com/jklemke/obsidian-to-jsonld/internal/render"
	"github.com/jklemke/obsidian-to-jsonld/internal/resolver"
	"github.com/jklemke/obsidian-to-jsonld/internal/skos"
	"github.com/jklemke/obsidian-to-jsonld/internal/storage"
)

// Builder compiles a vault into the static site and graph artifacts.
type Builder struct {
	vault  storage.Provider
	out    storage.Provider
	site   skos.Site
	db     *catalog.DB // nil disables the catalog
	logger *slog.Logger
}

// New creates a Builder. db may be nil when no catalog is wanted.
func New(vault, out storage.Provider, s skos.Site, db *catalog.DB, logger *slog.Logger) *Builder {
	return &Builder{vault: vault, out: out, site: s, db: db, logger: logger}
}

// Result summarizes one build run.
type Result struct {
	Scanned     int
	Indexed     int
	Concepts    int
	TopConcepts int
	Duration    time.Duration
}

// Build runs both phases. Phase one scans every note and builds the link
// index; phase two renders and emits. The index is complete before any
// rendering starts, and is read-only from then on.
func (b *Builder) Build() (*Result, error) {
	start := time.Now()

	notes, err := b.loadNotes()
	if err != nil {
		return nil, err
	}
	ix := resolver.Build(notes)
	b.logger.Info("link index built",
		slog.Int("notes", len(notes)),
		slog.Int("indexed", ix.Len()))

	if b.db != nil {
		if err := b.db.Reset(); err != nil {
			return nil, fmt.Errorf("site: reset catalog: %w", err)
		}
	}

	r := render.Renderer{Index: ix, PagePath: b.site.PagePath}
	res := &Result{Scanned: len(notes), Indexed: ix.Len()}

	for _, n := range notes {
		if n.Key == "" {
			b.logger.Debug("note has no concept-key, not emitted", slog.String("path", n.Path))
			continue
		}
		if err := b.emitNote(r, ix, n); err != nil {
			return nil, err
		}
		res.Concepts++
	}

	scheme := skos.EmitScheme(b.site, notes, b.logger)
	res.TopConcepts = len(scheme.Graph[0].HasTopConcept)
	if err := b.emitScheme(scheme, notes); err != nil {
		return nil, err
	}

	if err := b.writeAssets(); err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	b.logger.Info("build complete",
		slog.Int("concepts", res.Concepts),
		slog.Int("top_concepts", res.TopConcepts),
		slog.Duration("duration", res.Duration))
	return res, nil
}

// loadNotes is phase one's scan: every .md file is read and parsed. Files
// that cannot be read or parsed are logged and skipped; they never abort
// the build.
func (b *Builder) loadNotes() ([]*models.Note, error) {
	files, err := b.vault.List("")
	if err != nil {
		return nil, fmt.Errorf("site: scan vault: %w", err)
	}

	notes := make([]*models.Note, 0, len(files))
	for _, f := range files {
		data, err := b.vault.Read(f.Path)
		if err != nil {
			b.logger.Warn("skipping unreadable note", slog.String("path", f.Path), slog.String("error", err.Error()))
			continue
		}
		n, err := parser.Parse(f.Stem, data)
		if err != nil {
			b.logger.Warn("skipping unparsable note", slog.String("path", f.Path), slog.String("error", err.Error()))
			continue
		}
		n.Path = f.Path
		notes = append(notes, n)
	}
	return notes, nil
}

// emitNote writes one concept's page, graph document, and catalog row.
func (b *Builder) emitNote(r render.Renderer, ix resolver.Index, n *models.Note) error {
	c := skos.EmitConcept(b.site, ix, n)

	doc, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("site: marshal concept %s: %w", n.Key, err)
	}

	page, err := renderTemplate("concept.html.tmpl", conceptPage{
		Title:      n.Title,
		SiteTitle:  b.site.Title,
		Version:    b.site.Version,
		SchemePath: b.site.SchemePagePath(),
		JSONLD:     template.JS(doc),
		Main:       template.HTML(b.renderMain(r, n)),
		Aside:      template.HTML(b.renderAside(r, n)),
	})
	if err != nil {
		return err
	}

	dir := path.Join(b.site.Version, n.Key)
	if err := b.out.Write(path.Join(dir, "index.html"), []byte(htmlfmt.Format(page))); err != nil {
		return err
	}
	if err := b.out.Write(path.Join(dir, "concept.jsonld"), append(doc, '\n')); err != nil {
		return err
	}

	if b.db != nil {
		rels := make([]catalog.Relation, 0)
		for _, rt := range skos.RelationTargets(ix, n) {
			rels = append(rels, catalog.Relation{Target: rt.Key, Predicate: rt.Predicate})
		}
		row := catalog.ConceptRow{
			Key:        n.Key,
			Title:      n.Title,
			URI:        b.site.ConceptURI(n.Key),
			Definition: strings.Join(n.Sections.Get("Definition"), " "),
			Top:        n.TopConcept,
			UpdatedAt:  time.Now().UTC(),
		}
		if err := b.db.UpsertConcept(row, searchableText(n), rels); err != nil {
			return err
		}
	}

	return nil
}

// renderMain renders the primary sections in their fixed display order.
func (b *Builder) renderMain(r render.Renderer, n *models.Note) string {
	var parts []string
	for _, heading := range skos.MainHeadings {
		lines := n.Sections.Get(heading)
		if len(lines) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("<h2>%s</h2>", heading), r.Section(lines))
	}
	return strings.Join(parts, "\n")
}

// renderAside renders every remaining section in document order.
func (b *Builder) renderAside(r render.Renderer, n *models.Note) string {
	var parts []string
	for _, sec := range n.Sections {
		if len(sec.Lines) == 0 || skos.IsMainHeading(sec.Heading) {
			continue
		}
		parts = append(parts, fmt.Sprintf("<h2>%s</h2>", sec.Heading), r.Section(sec.Lines))
	}
	return strings.Join(parts, "\n")
}

// emitScheme writes the aggregate scheme document and its HTML page.
func (b *Builder) emitScheme(scheme skos.SchemeDoc, notes []*models.Note) error {
	doc, err := json.MarshalIndent(scheme, "", "  ")
	if err != nil {
		return fmt.Errorf("site: marshal scheme: %w", err)
	}

	titles := make(map[string]string, len(notes))
	for _, n := range notes {
		if n.Key != "" {
			titles[b.site.ConceptURI(n.Key)] = n.Title
		}
	}
	var list []string
	list = append(list, "<ul>")
	for _, ref := range scheme.Graph[0].HasTopConcept {
		key := path.Base(strings.TrimSuffix(ref.ID, "/"))
		list = append(list, fmt.Sprintf(`<li><a href="%s" class="internal-link">%s</a></li>`,
			b.site.PagePath(key), titles[ref.ID]))
	}
	list = append(list, "</ul>")

	page, err := renderTemplate("scheme.html.tmpl", schemePage{
		SiteTitle:   b.site.Title,
		Version:     b.site.Version,
		JSONLD:      template.JS(doc),
		TopConcepts: template.HTML(strings.Join(list, "\n")),
	})
	if err != nil {
		return err
	}

	dir := path.Join(b.site.Version, b.site.SchemeSlug)
	if err := b.out.Write(path.Join(dir, "index.html"), []byte(htmlfmt.Format(page))); err != nil {
		return err
	}
	return b.out.Write(path.Join(dir, "scheme.jsonld"), append(doc, '\n'))
}

// writeAssets copies the embedded stylesheet and live-reload script into
// the output tree.
func (b *Builder) writeAssets() error {
	for src, dst := range assetFiles {
		data, err := assetFS.ReadFile(src)
		if err != nil {
			return fmt.Errorf("site: read embedded asset %s: %w", src, err)
		}
		if err := b.out.Write(dst, data); err != nil {
			return err
		}
	}
	return nil
}

// searchableText flattens a note's sections for full-text search.
func searchableText(n *models.Note) string {
	var sb strings.Builder
	for _, sec := range n.Sections {
		for _, line := range sec.Lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
