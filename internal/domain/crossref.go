package domain

// Relationship is the kind of a cross-reference edge.
type Relationship string

// Possible relationship values
const (
	RelationshipRelated      Relationship = "related"
	RelationshipSibling      Relationship = "sibling"
	RelationshipSeeAlso      Relationship = "see-also"
	RelationshipParent       Relationship = "parent"
	RelationshipChild        Relationship = "child"
	RelationshipDifferential Relationship = "differential"
)

// Valid reports whether r is a known relationship.
func (r Relationship) Valid() bool {
	switch r {
	case RelationshipRelated, RelationshipSibling, RelationshipSeeAlso,
		RelationshipParent, RelationshipChild, RelationshipDifferential:
		return true
	default:
		return false
	}
}

// Symmetric reports whether authors usually intend the relationship to hold
// in both directions. Symmetric edges are still never mirrored automatically.
func (r Relationship) Symmetric() bool {
	return r == RelationshipRelated || r == RelationshipSibling
}

// CrossReference is a directed, typed edge to another record, possibly in a
// different collection.
type CrossReference struct {
	TargetID     string       `json:"target_id"       yaml:"target_id"`
	TargetType   Kind         `json:"target_type"     yaml:"target_type"`
	Relationship Relationship `json:"relationship"    yaml:"relationship"`

	// Label is the display text for the link and may differ from the
	// target's own name.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}
