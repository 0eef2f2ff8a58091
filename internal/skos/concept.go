package skos

import (
	"regexp"
	"strings"

	"github.com/jklemke/obsidian-to-jsonld/internal/models"
	"github.com/jklemke/obsidian-to-jsonld/internal/render"
	"github.com/jklemke/obsidian-to-jsonld/internal/resolver"
)

var (
	wikilinkRe     = regexp.MustCompile(`\[\[(.*?)\]\]`)
	bulletMarkerRe = regexp.MustCompile(`^[-*+]\s+`)
)

// Concept is one emitted skos:Concept record. Field order is the wire
// order. Relation predicates hold either a single URI string or a list of
// URI strings, depending on the cardinality found in the note.
type Concept struct {
	Context       string      `json:"@context"`
	ID            string      `json:"@id"`
	Type          string      `json:"@type"`
	PrefLabel     string      `json:"skos:prefLabel"`
	InScheme      string      `json:"skos:inScheme"`
	Definition    string      `json:"skos:definition,omitempty"`
	Broader       interface{} `json:"skos:broader,omitempty"`
	Narrower      interface{} `json:"skos:narrower,omitempty"`
	Related       interface{} `json:"skos:related,omitempty"`
	AltLabel      []string    `json:"skos:altLabel,omitempty"`
	EditorialNote string      `json:"skos:editorialNote,omitempty"`
	HistoryNote   string      `json:"skos:historyNote,omitempty"`
	ScopeNote     string      `json:"skos:scopeNote,omitempty"`
	Example       string      `json:"skos:example,omitempty"`
}

// EmitConcept produces the graph record for one note. The note must carry
// a concept key; ix must be the fully built link index.
func EmitConcept(site Site, ix resolver.Index, n *models.Note) *Concept {
	c := &Concept{
		Context:   ConceptContext,
		ID:        site.ConceptURI(n.Key),
		Type:      TypeConcept,
		PrefLabel: n.Title,
		InScheme:  site.SchemeURI(),
	}

	for _, sec := range n.Sections {
		pred, ok := PredicateForHeading(sec.Heading)
		if !ok || len(sec.Lines) == 0 {
			continue
		}

		switch {
		case pred.IsRelation():
			value := relationValue(site, ix, sec.Lines)
			if value == nil {
				continue
			}
			switch pred {
			case PredicateBroader:
				c.Broader = value
			case PredicateNarrower:
				c.Narrower = value
			case PredicateRelated:
				c.Related = value
			}

		case pred == PredicateAltLabel:
			labels := make([]string, 0, len(sec.Lines))
			for _, line := range sec.Lines {
				labels = append(labels, strings.TrimSpace(bulletMarkerRe.ReplaceAllString(line, "")))
			}
			c.AltLabel = labels

		default:
			text := strings.Join(sec.Lines, " ")
			switch pred {
			case PredicateDefinition:
				c.Definition = text
			case PredicateEditorialNote:
				c.EditorialNote = text
			case PredicateHistoryNote:
				c.HistoryNote = text
			case PredicateScopeNote:
				c.ScopeNote = text
			case PredicateExample:
				c.Example = text
			}
		}
	}

	return c
}

// RelationTarget is one resolved relation edge of a note, by concept key.
type RelationTarget struct {
	Predicate string // "broader", "narrower", or "related"
	Key       string
}

// RelationTargets resolves every relation line of a note against the link
// index. Unresolvable lines are dropped silently.
func RelationTargets(ix resolver.Index, n *models.Note) []RelationTarget {
	var out []RelationTarget
	for _, sec := range n.Sections {
		pred, ok := PredicateForHeading(sec.Heading)
		if !ok || !pred.IsRelation() {
			continue
		}
		var name string
		switch pred {
		case PredicateBroader:
			name = "broader"
		case PredicateNarrower:
			name = "narrower"
		case PredicateRelated:
			name = "related"
		}
		for _, key := range resolveRelationKeys(ix, sec.Lines) {
			out = append(out, RelationTarget{Predicate: name, Key: key})
		}
	}
	return out
}

// resolveRelationKeys resolves each line of a relation section to a
// concept key, dropping unresolvable lines.
func resolveRelationKeys(ix resolver.Index, lines []string) []string {
	var keys []string
	for _, line := range lines {
		if key, ok := ix.Resolve(relationTarget(line)); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// relationValue maps resolved relation keys to URIs. A single URI is
// emitted as a scalar, two or more as a list, none as nil (predicate
// omitted); the cardinality collapse is wire format, not style.
func relationValue(site Site, ix resolver.Index, lines []string) interface{} {
	keys := resolveRelationKeys(ix, lines)
	switch len(keys) {
	case 0:
		return nil
	case 1:
		return site.ConceptURI(keys[0])
	default:
		uris := make([]string, len(keys))
		for i, k := range keys {
			uris[i] = site.ConceptURI(k)
		}
		return uris
	}
}

// relationTarget extracts the reference target from a relation line: the
// target half of the first wikilink when present, otherwise the trimmed
// line itself.
func relationTarget(line string) string {
	if m := wikilinkRe.FindStringSubmatch(line); m != nil {
		target, _ := render.SplitWikilink(m[1])
		return target
	}
	return strings.TrimSpace(line)
}
