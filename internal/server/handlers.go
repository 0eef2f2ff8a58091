// Package server implements the local preview server: the generated site
// with directory-index resolution plus a small read-only JSON API over the
// concept catalog.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jklemke/obsidian-to-jsonld/internal/apperr"
	"github.com/jklemke/obsidian-to-jsonld/internal/catalog"
)

// Catalog is the read surface the handlers need; *catalog.DB satisfies it.
type Catalog interface {
	Search(query string, limit int) ([]catalog.SearchResult, error)
	ListConcepts() ([]catalog.ConceptRow, error)
	TopConcepts() ([]catalog.ConceptRow, error)
	GetConcept(key string) (*catalog.ConceptRow, error)
	Graph() ([]catalog.GraphNode, []catalog.GraphLink, error)
}

// Handler holds API route handlers.
type Handler struct {
	cat Catalog
}

// NewHandler creates a new Handler.
func NewHandler(cat Catalog) *Handler {
	return &Handler{cat: cat}
}

// Search handles GET /api/search?q=...&limit=N.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("q is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	hits, err := h.cat.Search(q, limit)
	if err != nil {
		slog.Error("search failed", slog.String("q", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, SearchResult{Key: hit.Key, Title: hit.Title, URI: hit.URI, Snippet: hit.Snippet})
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

// ListConcepts handles GET /api/concepts. With ?top=true only top
// concepts are returned.
func (h *Handler) ListConcepts(w http.ResponseWriter, r *http.Request) {
	var rows []catalog.ConceptRow
	var err error
	if r.URL.Query().Get("top") == "true" {
		rows, err = h.cat.TopConcepts()
	} else {
		rows, err = h.cat.ListConcepts()
	}
	if err != nil {
		slog.Error("list concepts failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	items := make([]ConceptDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, conceptDTO(row))
	}
	writeJSON(w, http.StatusOK, ConceptListResponse{Concepts: items, Total: len(items)})
}

// GetConcept handles GET /api/concepts/{key}.
func (h *Handler) GetConcept(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	row, err := h.cat.GetConcept(key)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get concept failed", slog.String("key", key), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, conceptDTO(*row))
}

// Graph handles GET /api/graph.
func (h *Handler) Graph(w http.ResponseWriter, _ *http.Request) {
	nodes, links, err := h.cat.Graph()
	if err != nil {
		slog.Error("graph failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	resp := GraphResponse{Nodes: make([]GraphNode, 0, len(nodes)), Links: make([]GraphLink, 0, len(links))}
	for _, n := range nodes {
		resp.Nodes = append(resp.Nodes, GraphNode{Key: n.Key, Title: n.Title})
	}
	for _, l := range links {
		resp.Links = append(resp.Links, GraphLink{Source: l.Source, Target: l.Target, Predicate: l.Predicate})
	}
	writeJSON(w, http.StatusOK, resp)
}

func conceptDTO(row catalog.ConceptRow) ConceptDTO {
	return ConceptDTO{
		Key:        row.Key,
		Title:      row.Title,
		URI:        row.URI,
		Definition: row.Definition,
		Top:        row.Top,
		UpdatedAt:  row.UpdatedAt,
	}
}
