package domain

import (
	"maps"
	"slices"
	"time"
)

// Kind distinguishes the record shapes used by different collections.
type Kind string

// Known record kinds
const (
	KindCondition         Kind = "condition"
	KindTopic             Kind = "topic"
	KindConcept           Kind = "concept"
	KindDifferentialEntry Kind = "differential-entry"
	KindNeuroEntry        Kind = "neuro-entry"
)

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindCondition, KindTopic, KindConcept, KindDifferentialEntry, KindNeuroEntry}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindCondition, KindTopic, KindConcept, KindDifferentialEntry, KindNeuroEntry:
		return true
	default:
		return false
	}
}

// Category is one value of a collection's category enumeration, such as a
// clinical system or a chief-complaint group.
type Category string

// Status represents the publication state of a record
type Status string

// Possible record status values
const (
	StatusDraft      Status = "draft"
	StatusPublished  Status = "published"
	StatusDeprecated Status = "deprecated"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusDeprecated:
		return true
	default:
		return false
	}
}

// Level bounds. Level 1 is the most accessible explanation, level 5 the
// most technical.
const (
	MinLevel = 1
	MaxLevel = 5
)

// KeyTerm is a term and its definition introduced at one level.
type KeyTerm struct {
	Term       string `json:"term"       yaml:"term"`
	Definition string `json:"definition" yaml:"definition"`
}

// LevelBody is the explanation of a record at one difficulty level.
type LevelBody struct {
	Summary       string    `json:"summary"                  yaml:"summary"`
	Explanation   string    `json:"explanation"              yaml:"explanation"`
	KeyTerms      []KeyTerm `json:"key_terms,omitempty"      yaml:"key_terms,omitempty"`
	Analogies     []string  `json:"analogies,omitempty"      yaml:"analogies,omitempty"`
	Examples      []string  `json:"examples,omitempty"       yaml:"examples,omitempty"`
	ClinicalNotes string    `json:"clinical_notes,omitempty" yaml:"clinical_notes,omitempty"`
}

// Media is attachment metadata for an image, diagram or video. The core
// never interprets it beyond checking that the required fields are present.
type Media struct {
	ID      string `json:"id"                yaml:"id"                validate:"required"`
	Type    string `json:"type"              yaml:"type"              validate:"required"`
	Title   string `json:"title"             yaml:"title"             validate:"required"`
	Source  string `json:"source"            yaml:"source"            validate:"required"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// Citation references the material a record is based on.
type Citation struct {
	ID      string   `json:"id"                yaml:"id"                validate:"required"`
	Type    string   `json:"type"              yaml:"type"              validate:"required"`
	Title   string   `json:"title"             yaml:"title"             validate:"required"`
	Source  string   `json:"source"            yaml:"source"            validate:"required"`
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Year    int      `json:"year,omitempty"    yaml:"year,omitempty"`
	URL     string   `json:"url,omitempty"     yaml:"url,omitempty"`
	License string   `json:"license,omitempty" yaml:"license,omitempty"`
}

// Tags are additional filtering facets. They play no part in identity or
// ordering.
type Tags struct {
	Keywords          []string `json:"keywords,omitempty"           yaml:"keywords,omitempty"`
	Systems           []string `json:"systems,omitempty"            yaml:"systems,omitempty"`
	ClinicalRelevance string   `json:"clinical_relevance,omitempty" yaml:"clinical_relevance,omitempty"`
	ExamRelevance     []string `json:"exam_relevance,omitempty"     yaml:"exam_relevance,omitempty"`
}

// Record represents one educational unit with five progressively detailed
// explanation levels. Records are replaced whole, never edited in place,
// and retired by deprecation rather than deletion.
type Record struct {
	ID              string            `json:"id"                         yaml:"id"`
	Kind            Kind              `json:"kind"                       yaml:"kind"`
	Name            string            `json:"name"                       yaml:"name"`
	AlternateNames  []string          `json:"alternate_names,omitempty"  yaml:"alternate_names,omitempty"`
	Category        Category          `json:"category"                   yaml:"category"`
	Levels          map[int]LevelBody `json:"levels"                     yaml:"levels"`
	Media           []Media           `json:"media,omitempty"            yaml:"media,omitempty"`
	Citations       []Citation        `json:"citations,omitempty"        yaml:"citations,omitempty"`
	CrossReferences []CrossReference  `json:"cross_references,omitempty" yaml:"cross_references,omitempty"`
	Tags            Tags              `json:"tags"                       yaml:"tags"`

	// Attributes holds kind-specific list facets such as risk_factors or
	// red_flags.
	Attributes map[string][]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`

	Version   int       `json:"version"    yaml:"version"`
	Status    Status    `json:"status"     yaml:"status"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// LevelNumbers returns the defined level keys in ascending order.
func (r *Record) LevelNumbers() []int {
	return slices.Sorted(maps.Keys(r.Levels))
}

// OrderedLevels returns the level bodies from the most accessible to the
// most technical.
func (r *Record) OrderedLevels() []LevelBody {
	nums := r.LevelNumbers()
	out := make([]LevelBody, 0, len(nums))
	for _, n := range nums {
		out = append(out, r.Levels[n])
	}
	return out
}

// Clone returns a deep copy of the record so that a collection never shares
// mutable state with the caller that supplied it.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	c.AlternateNames = slices.Clone(r.AlternateNames)
	if r.Levels != nil {
		c.Levels = make(map[int]LevelBody, len(r.Levels))
		for n, body := range r.Levels {
			body.KeyTerms = slices.Clone(body.KeyTerms)
			body.Analogies = slices.Clone(body.Analogies)
			body.Examples = slices.Clone(body.Examples)
			c.Levels[n] = body
		}
	}
	c.Media = slices.Clone(r.Media)
	if r.Citations != nil {
		c.Citations = make([]Citation, len(r.Citations))
		for i, cit := range r.Citations {
			cit.Authors = slices.Clone(cit.Authors)
			c.Citations[i] = cit
		}
	}
	c.CrossReferences = slices.Clone(r.CrossReferences)
	c.Tags = Tags{
		Keywords:          slices.Clone(r.Tags.Keywords),
		Systems:           slices.Clone(r.Tags.Systems),
		ClinicalRelevance: r.Tags.ClinicalRelevance,
		ExamRelevance:     slices.Clone(r.Tags.ExamRelevance),
	}
	if r.Attributes != nil {
		c.Attributes = make(map[string][]string, len(r.Attributes))
		for k, v := range r.Attributes {
			c.Attributes[k] = slices.Clone(v)
		}
	}
	return &c
}
