// Package skos emits SKOS concept and scheme records as JSON-LD from
// parsed notes.
package skos

import "fmt"

// Vocabulary IRIs and type markers.
const (
	// ConceptContext is the @context of per-concept documents.
	ConceptContext = "https://www.w3.org/2004/02/skos/core#"

	// SkosNamespace and DctNamespace form the @context of the aggregate
	// scheme document.
	SkosNamespace = "http://www.w3.org/2004/02/skos/core#"
	DctNamespace  = "http://purl.org/dc/terms/"

	TypeConcept = "skos:Concept"
	TypeScheme  = "skos:ConceptScheme"
)

// Site carries the identity of the published vocabulary. Graph URIs and
// served page paths are both derived from it and must match exactly.
type Site struct {
	// Domain is the base URL, without trailing slash (e.g.
	// "https://example.test").
	Domain string
	// Version is the published vocabulary version (e.g. "0.0.1").
	Version string
	// SchemeSlug is the path segment of the concept scheme (e.g.
	// "concept-scheme").
	SchemeSlug string
	// Title is the display name of the scheme.
	Title string
}

// ConceptURI returns the canonical URI for a concept key:
// {domain}/{version}/{key}/.
func (s Site) ConceptURI(key string) string {
	return fmt.Sprintf("%s/%s/%s/", s.Domain, s.Version, key)
}

// SchemeURI returns the canonical URI of the concept scheme.
func (s Site) SchemeURI() string {
	return s.ConceptURI(s.SchemeSlug)
}

// PagePath returns the site-absolute page path for a concept key:
// /{version}/{key}/. It mirrors ConceptURI minus the domain so that the
// static server resolves the same directory the URI names.
func (s Site) PagePath(key string) string {
	return fmt.Sprintf("/%s/%s/", s.Version, key)
}

// SchemePagePath returns the site-absolute path of the scheme page.
func (s Site) SchemePagePath() string {
	return s.PagePath(s.SchemeSlug)
}
