package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/phrazzld/medkb/internal/domain"
	"github.com/stretchr/testify/require"
)

// FixedTime is the creation time used by every fixture record.
var FixedTime = time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)

// RecordOption customizes a fixture record.
type RecordOption func(*domain.Record)

// NewTestRecord creates a valid, published record with five levels.
// Options are applied in order after the defaults.
func NewTestRecord(id string, kind domain.Kind, category domain.Category, opts ...RecordOption) *domain.Record {
	r := &domain.Record{
		ID:       id,
		Kind:     kind,
		Name:     "Test record " + id,
		Category: category,
		Levels:   make(map[int]domain.LevelBody, domain.MaxLevel),
		Version:  1,
		Status:   domain.StatusPublished,
		Citations: []domain.Citation{{
			ID:     id + "-cit-1",
			Type:   "textbook",
			Title:  "Reference text for " + id,
			Source: "Test Press",
		}},
		CreatedAt: FixedTime,
		UpdatedAt: FixedTime,
	}
	for n := domain.MinLevel; n <= domain.MaxLevel; n++ {
		r.Levels[n] = domain.LevelBody{
			Summary:     fmt.Sprintf("Level %d summary of %s", n, id),
			Explanation: fmt.Sprintf("Level %d explanation of %s", n, id),
			KeyTerms: []domain.KeyTerm{{
				Term:       fmt.Sprintf("term-%d", n),
				Definition: fmt.Sprintf("definition %d", n),
			}},
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithName sets the display name.
func WithName(name string, alternates ...string) RecordOption {
	return func(r *domain.Record) {
		r.Name = name
		r.AlternateNames = alternates
	}
}

// WithExplanation overwrites the explanation of one level.
func WithExplanation(level int, text string) RecordOption {
	return func(r *domain.Record) {
		body := r.Levels[level]
		body.Explanation = text
		r.Levels[level] = body
	}
}

// WithClinicalNotes sets the clinical notes of one level.
func WithClinicalNotes(level int, text string) RecordOption {
	return func(r *domain.Record) {
		body := r.Levels[level]
		body.ClinicalNotes = text
		r.Levels[level] = body
	}
}

// WithCrossReference appends an outgoing edge.
func WithCrossReference(targetID string, targetType domain.Kind, rel domain.Relationship) RecordOption {
	return func(r *domain.Record) {
		r.CrossReferences = append(r.CrossReferences, domain.CrossReference{
			TargetID:     targetID,
			TargetType:   targetType,
			Relationship: rel,
			Label:        targetID,
		})
	}
}

// WithTags replaces the tag facets.
func WithTags(tags domain.Tags) RecordOption {
	return func(r *domain.Record) {
		r.Tags = tags
	}
}

// WithAttribute sets one kind-specific list facet.
func WithAttribute(name string, values ...string) RecordOption {
	return func(r *domain.Record) {
		if r.Attributes == nil {
			r.Attributes = make(map[string][]string)
		}
		r.Attributes[name] = values
	}
}

// WithLevels keeps only the listed level numbers.
func WithLevels(levels ...int) RecordOption {
	return func(r *domain.Record) {
		kept := make(map[int]domain.LevelBody, len(levels))
		for _, n := range levels {
			body, ok := r.Levels[n]
			if !ok {
				body = domain.LevelBody{Summary: fmt.Sprintf("Level %d", n)}
			}
			kept[n] = body
		}
		r.Levels = kept
	}
}

// MustSchema creates a schema or fails the test.
func MustSchema(t *testing.T, kind domain.Kind, categories ...domain.Category) domain.Schema {
	t.Helper()

	s, err := domain.NewSchema(kind, categories...)
	require.NoError(t, err, "Failed to create test schema")
	return s
}
