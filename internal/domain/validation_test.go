package domain_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/medkb/internal/domain"
	"github.com/phrazzld/medkb/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecord_Valid(t *testing.T) {
	t.Parallel()

	r := testutils.NewTestRecord("epilepsy", domain.KindNeuroEntry, "seizure")
	assert.NoError(t, domain.ValidateRecord(r))
	assert.NoError(t, r.Validate())
}

func TestValidateRecord_SingleProblems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opt     testutils.RecordOption
		field   string
		wantErr error
	}{
		{
			name:    "empty id",
			opt:     func(r *domain.Record) { r.ID = "" },
			field:   "id",
			wantErr: domain.ErrEmptyID,
		},
		{
			name:    "blank name",
			opt:     func(r *domain.Record) { r.Name = "  " },
			field:   "name",
			wantErr: domain.ErrEmptyName,
		},
		{
			name:    "unknown kind",
			opt:     func(r *domain.Record) { r.Kind = "lesson" },
			field:   "kind",
			wantErr: domain.ErrInvalidKind,
		},
		{
			name:    "empty category",
			opt:     func(r *domain.Record) { r.Category = "" },
			field:   "category",
			wantErr: domain.ErrEmptyCategory,
		},
		{
			name:    "unknown status",
			opt:     func(r *domain.Record) { r.Status = "archived" },
			field:   "status",
			wantErr: domain.ErrInvalidStatus,
		},
		{
			name:    "zero version",
			opt:     func(r *domain.Record) { r.Version = 0 },
			field:   "version",
			wantErr: domain.ErrInvalidVersion,
		},
		{
			name: "updated before created",
			opt: func(r *domain.Record) {
				r.UpdatedAt = r.CreatedAt.Add(-1)
			},
			field:   "updated_at",
			wantErr: domain.ErrInvalidTimestamps,
		},
		{
			name:    "no levels",
			opt:     testutils.WithLevels(),
			field:   "levels",
			wantErr: domain.ErrNoLevels,
		},
		{
			name:    "level gap",
			opt:     testutils.WithLevels(1, 2, 4),
			field:   "levels",
			wantErr: domain.ErrLevelGap,
		},
		{
			name:    "missing level one",
			opt:     testutils.WithLevels(2, 3),
			field:   "levels",
			wantErr: domain.ErrLevelGap,
		},
		{
			name: "duplicate key term ignoring case",
			opt: func(r *domain.Record) {
				body := r.Levels[2]
				body.KeyTerms = []domain.KeyTerm{
					{Term: "Dopamine", Definition: "a"},
					{Term: "dopamine ", Definition: "b"},
				}
				r.Levels[2] = body
			},
			field:   "levels[2].key_terms",
			wantErr: domain.ErrDuplicateKeyTerm,
		},
		{
			name: "empty key term",
			opt: func(r *domain.Record) {
				body := r.Levels[1]
				body.KeyTerms = []domain.KeyTerm{{Definition: "orphan"}}
				r.Levels[1] = body
			},
			field:   "levels[1].key_terms",
			wantErr: domain.ErrEmptyKeyTerm,
		},
		{
			name:    "empty target id",
			opt:     testutils.WithCrossReference("", domain.KindNeuroEntry, domain.RelationshipRelated),
			field:   "cross_references[0].target_id",
			wantErr: domain.ErrEmptyTargetID,
		},
		{
			name:    "unknown target type",
			opt:     testutils.WithCrossReference("stroke", "lesson", domain.RelationshipRelated),
			field:   "cross_references[0].target_type",
			wantErr: domain.ErrInvalidTargetType,
		},
		{
			name:    "unknown relationship",
			opt:     testutils.WithCrossReference("stroke", domain.KindNeuroEntry, "cousin"),
			field:   "cross_references[0].relationship",
			wantErr: domain.ErrInvalidRelationship,
		},
		{
			name: "citation without title",
			opt: func(r *domain.Record) {
				r.Citations[0].Title = ""
			},
			field:   "citations[0].title",
			wantErr: domain.ErrMissingAttachmentField,
		},
		{
			name: "media without source",
			opt: func(r *domain.Record) {
				r.Media = []domain.Media{{ID: "m1", Type: "image", Title: "MRI"}}
			},
			field:   "media[0].source",
			wantErr: domain.ErrMissingAttachmentField,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := testutils.NewTestRecord("epilepsy", domain.KindNeuroEntry, "seizure", tc.opt)
			err := domain.ValidateRecord(r)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorIs(t, err, tc.wantErr)

			var verrs domain.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1, "expected exactly one problem, got %v", verrs)
			assert.Equal(t, tc.field, verrs[0].Field)
		})
	}
}

func TestValidateRecord_AggregatesAllProblems(t *testing.T) {
	t.Parallel()

	r := testutils.NewTestRecord("", domain.KindNeuroEntry, "seizure",
		testutils.WithLevels(1, 3),
		testutils.WithCrossReference("", domain.KindNeuroEntry, domain.RelationshipSibling),
		func(r *domain.Record) { r.Name = "" },
	)

	err := domain.ValidateRecord(r)
	require.Error(t, err)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 4)
	assert.ErrorIs(t, err, domain.ErrEmptyID)
	assert.ErrorIs(t, err, domain.ErrEmptyName)
	assert.ErrorIs(t, err, domain.ErrLevelGap)
	assert.ErrorIs(t, err, domain.ErrEmptyTargetID)
	assert.Contains(t, err.Error(), "4 problem(s)")
}

func TestValidateRecord_LevelOutOfRange(t *testing.T) {
	t.Parallel()

	r := testutils.NewTestRecord("epilepsy", domain.KindNeuroEntry, "seizure",
		testutils.WithLevels(1, 2, 3, 4, 5, 6))

	err := domain.ValidateRecord(r)
	assert.ErrorIs(t, err, domain.ErrLevelOutOfRange)
	assert.NotErrorIs(t, err, domain.ErrLevelGap)
}

func TestValidateRecord_NilPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, domain.ErrNilRecord, func() {
		_ = domain.ValidateRecord(nil)
	})
}

func TestValidationErrors_SortIsOrderIndependent(t *testing.T) {
	t.Parallel()

	a := domain.NewFieldError("b", "name", domain.ErrEmptyName, "")
	b := domain.NewFieldError("a", "levels", domain.ErrLevelGap, "[1 3]")
	c := domain.NewFieldError("a", "id", domain.ErrEmptyID, "")

	first := domain.ValidationErrors{a, b, c}
	second := domain.ValidationErrors{c, a, b}
	first.Sort()
	second.Sort()

	assert.Equal(t, first, second)
	assert.Equal(t, "id", first[0].Field)
	assert.Equal(t, "b", first[2].RecordID)
}

func TestValidationErrors_ErrNilWhenEmpty(t *testing.T) {
	t.Parallel()

	var verrs domain.ValidationErrors
	assert.NoError(t, verrs.Err())
}
