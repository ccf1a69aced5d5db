package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/medkb/internal/domain"
)

// Query argument errors
var (
	// ErrUnknownField is returned when parsing a name that is not a searchable field.
	ErrUnknownField = errors.New("unknown search field")

	// ErrEmptyFacet is returned when parsing an empty facet name.
	ErrEmptyFacet = errors.New("facet name cannot be empty")
)

// Field names one searchable string or list-of-string field of a record.
type Field string

// Searchable fields. Level-scoped fields match if any level matches.
const (
	FieldName               Field = "name"
	FieldAlternateNames     Field = "alternate_names"
	FieldSummary            Field = "summary"
	FieldExplanation        Field = "explanation"
	FieldKeyTerms           Field = "key_terms"
	FieldKeyTermDefinitions Field = "key_term_definitions"
	FieldClinicalNotes      Field = "clinical_notes"
	FieldAnalogies          Field = "analogies"
	FieldExamples           Field = "examples"
)

// Fields returns every searchable field.
func Fields() []Field {
	return []Field{
		FieldName, FieldAlternateNames, FieldSummary, FieldExplanation,
		FieldKeyTerms, FieldKeyTermDefinitions, FieldClinicalNotes,
		FieldAnalogies, FieldExamples,
	}
}

// TextFields are the fields a general-purpose search box usually covers.
func TextFields() []Field {
	return []Field{FieldName, FieldAlternateNames, FieldSummary, FieldClinicalNotes, FieldKeyTermDefinitions}
}

// ParseField converts a field name, as received from a caller, into a Field.
func ParseField(name string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	if f.valid() {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// ParseFields parses a comma-separated list of field names.
func ParseFields(list string) ([]Field, error) {
	var out []Field
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseField(part)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (f Field) valid() bool {
	switch f {
	case FieldName, FieldAlternateNames, FieldSummary, FieldExplanation,
		FieldKeyTerms, FieldKeyTermDefinitions, FieldClinicalNotes,
		FieldAnalogies, FieldExamples:
		return true
	default:
		return false
	}
}

// values returns the strings of r covered by f.
func (f Field) values(r *domain.Record) []string {
	switch f {
	case FieldName:
		return []string{r.Name}
	case FieldAlternateNames:
		return r.AlternateNames
	}

	var out []string
	for _, body := range r.OrderedLevels() {
		switch f {
		case FieldSummary:
			out = append(out, body.Summary)
		case FieldExplanation:
			out = append(out, body.Explanation)
		case FieldClinicalNotes:
			out = append(out, body.ClinicalNotes)
		case FieldAnalogies:
			out = append(out, body.Analogies...)
		case FieldExamples:
			out = append(out, body.Examples...)
		case FieldKeyTerms:
			for _, kt := range body.KeyTerms {
				out = append(out, kt.Term)
			}
		case FieldKeyTermDefinitions:
			for _, kt := range body.KeyTerms {
				out = append(out, kt.Definition)
			}
		default:
			panic(fmt.Errorf("%w: %q", ErrUnknownField, f))
		}
	}
	return out
}

// Facet names a tag field or a kind-specific attribute list used for
// filtering.
type Facet string

// Built-in facets backed by domain.Tags. Any other facet name refers to the
// record attribute of the same name, such as "risk_factors".
const (
	FacetKeywords          Facet = "keywords"
	FacetSystems           Facet = "systems"
	FacetClinicalRelevance Facet = "clinical_relevance"
	FacetExamRelevance     Facet = "exam_relevance"
)

// ParseFacet normalizes a facet name.
func ParseFacet(name string) (Facet, error) {
	f := strings.ToLower(strings.TrimSpace(name))
	if f == "" {
		return "", ErrEmptyFacet
	}
	return Facet(f), nil
}

// values returns the entries of r under facet f.
func (f Facet) values(r *domain.Record) []string {
	switch f {
	case FacetKeywords:
		return r.Tags.Keywords
	case FacetSystems:
		return r.Tags.Systems
	case FacetExamRelevance:
		return r.Tags.ExamRelevance
	case FacetClinicalRelevance:
		if r.Tags.ClinicalRelevance == "" {
			return nil
		}
		return []string{r.Tags.ClinicalRelevance}
	default:
		return r.Attributes[string(f)]
	}
}
