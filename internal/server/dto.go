package server

import "time"

// ConceptDTO is one compiled concept in an API response.
type ConceptDTO struct {
	Key        string    `json:"key"`
	Title      string    `json:"title"`
	URI        string    `json:"uri"`
	Definition string    `json:"definition,omitempty"`
	Top        bool      `json:"top"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ConceptListResponse wraps concept listings.
type ConceptListResponse struct {
	Concepts []ConceptDTO `json:"concepts"`
	Total    int          `json:"total"`
}

// SearchResult is a single search hit in the API response.
type SearchResult struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	URI     string `json:"uri"`
	Snippet string `json:"snippet"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// GraphNode is a node in the relation graph.
type GraphNode struct {
	Key   string `json:"key"`
	Title string `json:"title,omitempty"`
}

// GraphLink is an edge in the relation graph.
type GraphLink struct {
	Source    string `json:"source"`
	Target    string `json:"target"`
	Predicate string `json:"predicate"`
}

// GraphResponse wraps the relation graph.
type GraphResponse struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}
