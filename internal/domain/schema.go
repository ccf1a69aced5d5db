package domain

import (
	"errors"
	"fmt"
	"slices"
)

// Schema errors
var (
	// ErrSchemaNoCategories is returned when a schema defines no categories.
	ErrSchemaNoCategories = errors.New("schema must define at least one category")

	// ErrSchemaDuplicateCategory is returned when a category is listed twice.
	ErrSchemaDuplicateCategory = errors.New("schema category listed more than once")
)

// Schema describes the record universe of one collection: the kind all of
// its records share and the closed category enumeration used for faceting.
type Schema struct {
	Kind       Kind
	Categories []Category
}

// NewSchema creates a Schema for the given kind and categories.
// Returns an error if the kind is unknown or the categories are empty or
// contain duplicates.
func NewSchema(kind Kind, categories ...Category) (Schema, error) {
	s := Schema{Kind: kind, Categories: slices.Clone(categories)}
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// Validate checks if the Schema itself is well formed.
func (s Schema) Validate() error {
	if !s.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, s.Kind)
	}
	if len(s.Categories) == 0 {
		return ErrSchemaNoCategories
	}
	seen := make(map[Category]bool, len(s.Categories))
	for _, c := range s.Categories {
		if c == "" {
			return fmt.Errorf("%w: empty category", ErrSchemaNoCategories)
		}
		if seen[c] {
			return fmt.Errorf("%w: %q", ErrSchemaDuplicateCategory, c)
		}
		seen[c] = true
	}
	return nil
}

// HasCategory reports whether c belongs to the schema's enumeration.
func (s Schema) HasCategory(c Category) bool {
	return slices.Contains(s.Categories, c)
}

// Check returns the structural problems of r plus the problems that only
// make sense relative to this schema: a kind mismatch and a category
// outside the enumeration.
func (s Schema) Check(r *Record) ValidationErrors {
	errs := r.Check()
	if r.Kind.Valid() && r.Kind != s.Kind {
		errs = append(errs, NewFieldError(r.ID, "kind", ErrKindMismatch,
			fmt.Sprintf("%s, want %s", r.Kind, s.Kind)))
	}
	if r.Category != "" && !s.HasCategory(r.Category) {
		errs = append(errs, NewFieldError(r.ID, "category", ErrUnknownCategory, string(r.Category)))
	}
	return errs
}
