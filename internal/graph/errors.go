package graph

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/phrazzld/medkb/internal/domain"
)

// Referential integrity errors
var (
	// ErrReferentialIntegrity is matched by every aggregated edge report.
	ErrReferentialIntegrity = errors.New("referential integrity check failed")

	// ErrDanglingReference is returned when a target id is not present in
	// any supplied collection.
	ErrDanglingReference = errors.New("cross-reference target does not exist")

	// ErrTargetTypeMismatch is returned when the target exists but its kind
	// differs from the declared target type.
	ErrTargetTypeMismatch = errors.New("cross-reference target has a different kind")
)

// ReferenceError describes one broken edge.
type ReferenceError struct {
	Collection string
	SourceID   string
	// Index is the position of the edge in the source's cross_references.
	Index int
	Ref   domain.CrossReference
	// Found lists the kinds present under the target id on a type mismatch.
	Found []domain.Kind
	Err   error
}

// Error implements the error interface for ReferenceError.
func (e *ReferenceError) Error() string {
	msg := fmt.Sprintf("%s/%s cross_references[%d] -> %s (%s): %v",
		e.Collection, e.SourceID, e.Index, e.Ref.TargetID, e.Ref.TargetType, e.Err)
	if len(e.Found) > 0 {
		kinds := make([]string, len(e.Found))
		for i, k := range e.Found {
			kinds[i] = string(k)
		}
		msg += " (found " + strings.Join(kinds, ", ") + ")"
	}
	return msg
}

// Unwrap returns the wrapped sentinel error to support errors.Is.
func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// ReferentialErrors aggregates every broken edge found in one pass.
type ReferentialErrors []*ReferenceError

// Error implements the error interface for ReferentialErrors.
func (v ReferentialErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return fmt.Sprintf("%v: %d broken edge(s): %s", ErrReferentialIntegrity, len(v), strings.Join(parts, "; "))
}

// Is reports ErrReferentialIntegrity as matching any aggregated report.
func (v ReferentialErrors) Is(target error) bool {
	return target == ErrReferentialIntegrity
}

// Unwrap exposes the individual broken edges to errors.Is and errors.As.
func (v ReferentialErrors) Unwrap() []error {
	out := make([]error, len(v))
	for i, e := range v {
		out[i] = e
	}
	return out
}

func (v ReferentialErrors) err() error {
	if len(v) == 0 {
		return nil
	}
	slices.SortStableFunc(v, func(a, b *ReferenceError) int {
		return cmp.Or(
			cmp.Compare(a.Collection, b.Collection),
			cmp.Compare(a.SourceID, b.SourceID),
			cmp.Compare(a.Index, b.Index),
		)
	})
	return v
}
