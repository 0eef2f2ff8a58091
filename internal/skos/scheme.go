package skos

import (
	"log/slog"

	"github.com/jklemke/obsidian-to-jsonld/internal/models"
)

// Ref is a JSON-LD node reference.
type Ref struct {
	ID string `json:"@id"`
}

// SchemeNode is the single skos:ConceptScheme record.
type SchemeNode struct {
	ID            string `json:"@id"`
	Type          string `json:"@type"`
	PrefLabel     string `json:"skos:prefLabel,omitempty"`
	HasTopConcept []Ref  `json:"skos:hasTopConcept"`
}

// SchemeDoc is the aggregate scheme document.
type SchemeDoc struct {
	Context map[string]string `json:"@context"`
	Graph   []SchemeNode      `json:"@graph"`
}

// EmitScheme builds the scheme document after all notes have been
// processed. A note enters the top-concept list when its flag parsed
// truthy and it carries a concept key; a flagged note without a key is
// logged as a warning and excluded.
func EmitScheme(site Site, notes []*models.Note, logger *slog.Logger) SchemeDoc {
	var tops []Ref
	for _, n := range notes {
		if !n.TopConcept {
			continue
		}
		if n.Key == "" {
			logger.Warn("top concept has no concept-key, excluded from scheme",
				slog.String("path", n.Path),
				slog.String("title", n.Title))
			continue
		}
		tops = append(tops, Ref{ID: site.ConceptURI(n.Key)})
	}
	if tops == nil {
		tops = []Ref{}
	}

	return SchemeDoc{
		Context: map[string]string{
			"skos": SkosNamespace,
			"dct":  DctNamespace,
		},
		Graph: []SchemeNode{{
			ID:            site.SchemeURI(),
			Type:          TypeScheme,
			PrefLabel:     site.Title,
			HasTopConcept: tops,
		}},
	}
}
