package skos

// Predicate enumerates the SKOS properties a section heading can map to.
// Keeping the set closed makes renamed or missing headings a visible
// compile-time surface instead of a silent no-op.
type Predicate int

const (
	// PredicateUnmapped marks headings with no SKOS counterpart; their
	// sections are rendered on the page but never emitted into the graph.
	PredicateUnmapped Predicate = iota
	PredicateDefinition
	PredicateBroader
	PredicateNarrower
	PredicateRelated
	PredicateAltLabel
	PredicateEditorialNote
	PredicateHistoryNote
	PredicateScopeNote
	PredicateExample
)

// headingPredicates is the fixed heading→predicate table. Heading text is
// matched case-sensitively as a literal key.
var headingPredicates = map[string]Predicate{
	"Definition":        PredicateDefinition,
	"Broader":           PredicateBroader,
	"Narrower":          PredicateNarrower,
	"Related":           PredicateRelated,
	"Alternative Label": PredicateAltLabel,
	"Editorial Note":    PredicateEditorialNote,
	"History Note":      PredicateHistoryNote,
	"Scope Note":        PredicateScopeNote,
	"Example":           PredicateExample,
}

// PredicateForHeading maps a section heading to its predicate. Unknown
// headings return (PredicateUnmapped, false).
func PredicateForHeading(heading string) (Predicate, bool) {
	p, ok := headingPredicates[heading]
	if !ok {
		return PredicateUnmapped, false
	}
	return p, true
}

// IsRelation reports whether the predicate holds concept URIs rather than
// literal text.
func (p Predicate) IsRelation() bool {
	return p == PredicateBroader || p == PredicateNarrower || p == PredicateRelated
}

// MainHeadings are the sections rendered into the main page region, in
// display order. Everything else renders into the aside.
var MainHeadings = []string{"Definition", "Broader", "Narrower", "Related"}

// IsMainHeading reports whether heading belongs to the main page region.
func IsMainHeading(heading string) bool {
	for _, h := range MainHeadings {
		if h == heading {
			return true
		}
	}
	return false
}
