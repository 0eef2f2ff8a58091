package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewAPIRouter creates a chi router with the read-only catalog API.
func NewAPIRouter(cat Catalog) chi.Router {
	h := NewHandler(cat)

	r := chi.NewRouter()
	r.Get("/search", h.Search)
	r.Get("/concepts", h.ListConcepts)
	r.Get("/concepts/{key}", h.GetConcept)
	r.Get("/graph", h.Graph)
	return r
}

// SiteHandler serves the generated site from root with directory-index
// resolution, matching the published URI convention.
func SiteHandler(root string) http.Handler {
	return http.FileServer(http.Dir(root))
}
