package domain

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks the presence tags on attachment metadata.
var validate = validator.New()

// FieldError describes one validation problem found in one record.
type FieldError struct {
	// RecordID is the id of the offending record, empty when the id itself
	// is missing.
	RecordID string
	// Field is the path of the offending field, e.g. "levels[2].key_terms".
	Field string
	// Err is one of the domain validation sentinel errors.
	Err error
	// Detail carries the offending value where it helps the author.
	Detail string
}

// Error implements the error interface for FieldError.
func (e *FieldError) Error() string {
	msg := fmt.Sprintf("record %q: %s: %v", e.RecordID, e.Field, e.Err)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap returns the wrapped sentinel error to support errors.Is.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError creates a FieldError for the given record, field path and cause.
func NewFieldError(recordID, field string, err error, detail string) *FieldError {
	return &FieldError{RecordID: recordID, Field: field, Err: err, Detail: detail}
}

// ValidationErrors aggregates every problem found in one validation pass.
// It matches ErrValidation and each contained sentinel via errors.Is.
type ValidationErrors []*FieldError

// Error implements the error interface for ValidationErrors.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return fmt.Sprintf("%v: %d problem(s): %s", ErrValidation, len(v), strings.Join(parts, "; "))
}

// Is reports ErrValidation as matching any aggregated report.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap exposes the individual problems to errors.Is and errors.As.
func (v ValidationErrors) Unwrap() []error {
	out := make([]error, len(v))
	for i, e := range v {
		out[i] = e
	}
	return out
}

// Sort orders the problems by record id, field and message so that a report
// does not depend on the order records were supplied in.
func (v ValidationErrors) Sort() {
	slices.SortStableFunc(v, func(a, b *FieldError) int {
		return cmp.Or(
			cmp.Compare(a.RecordID, b.RecordID),
			cmp.Compare(a.Field, b.Field),
			cmp.Compare(a.Error(), b.Error()),
		)
	})
}

// Err returns v as an error, or nil when there are no problems. It avoids
// handing a non-nil interface holding an empty slice to callers.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	v.Sort()
	return v
}

// ValidateRecord checks the structural invariants of a single record and
// reports every violation found. Existence of cross-reference targets is not
// checked here since a target may live in a collection not yet loaded.
//
// A nil record is a programming error and panics.
func ValidateRecord(r *Record) error {
	return r.Check().Err()
}

// Validate checks if the Record has valid data.
// Returns ValidationErrors listing all problems, or nil.
func (r *Record) Validate() error {
	return ValidateRecord(r)
}

// Check returns the structural problems of the record without sorting.
func (r *Record) Check() ValidationErrors {
	if r == nil {
		panic(ErrNilRecord)
	}

	var errs ValidationErrors
	add := func(field string, err error, detail string) {
		errs = append(errs, NewFieldError(r.ID, field, err, detail))
	}

	if strings.TrimSpace(r.ID) == "" {
		add("id", ErrEmptyID, "")
	}
	if strings.TrimSpace(r.Name) == "" {
		add("name", ErrEmptyName, "")
	}
	if !r.Kind.Valid() {
		add("kind", ErrInvalidKind, string(r.Kind))
	}
	if r.Category == "" {
		add("category", ErrEmptyCategory, "")
	}
	if !r.Status.Valid() {
		add("status", ErrInvalidStatus, string(r.Status))
	}
	if r.Version < 1 {
		add("version", ErrInvalidVersion, fmt.Sprint(r.Version))
	}
	if !r.CreatedAt.IsZero() && !r.UpdatedAt.IsZero() && r.UpdatedAt.Before(r.CreatedAt) {
		add("updated_at", ErrInvalidTimestamps, "")
	}

	checkLevels(r, add)
	checkAttachments(r, add)

	for i, ref := range r.CrossReferences {
		field := fmt.Sprintf("cross_references[%d]", i)
		if strings.TrimSpace(ref.TargetID) == "" {
			add(field+".target_id", ErrEmptyTargetID, "")
		}
		if !ref.TargetType.Valid() {
			add(field+".target_type", ErrInvalidTargetType, string(ref.TargetType))
		}
		if !ref.Relationship.Valid() {
			add(field+".relationship", ErrInvalidRelationship, string(ref.Relationship))
		}
	}

	return errs
}

func checkLevels(r *Record, add func(string, error, string)) {
	nums := r.LevelNumbers()
	if len(nums) == 0 {
		add("levels", ErrNoLevels, "")
		return
	}

	for _, n := range nums {
		if n < MinLevel || n > MaxLevel {
			add("levels", ErrLevelOutOfRange, fmt.Sprint(n))
		}
	}
	// Keys are unique, so the set is contiguous from 1 exactly when the
	// largest key equals the number of keys.
	if nums[0] != MinLevel || nums[len(nums)-1] != len(nums) {
		add("levels", ErrLevelGap, fmt.Sprint(nums))
	}

	for _, n := range nums {
		field := fmt.Sprintf("levels[%d].key_terms", n)
		seen := make(map[string]bool, len(r.Levels[n].KeyTerms))
		for _, kt := range r.Levels[n].KeyTerms {
			term := strings.ToLower(strings.TrimSpace(kt.Term))
			if term == "" {
				add(field, ErrEmptyKeyTerm, "")
				continue
			}
			if seen[term] {
				add(field, ErrDuplicateKeyTerm, kt.Term)
				continue
			}
			seen[term] = true
		}
	}
}

func checkAttachments(r *Record, add func(string, error, string)) {
	for i, m := range r.Media {
		reportMissing(fmt.Sprintf("media[%d]", i), validate.Struct(m), add)
	}
	for i, c := range r.Citations {
		reportMissing(fmt.Sprintf("citations[%d]", i), validate.Struct(c), add)
	}
}

// reportMissing converts validator field errors into domain field errors.
func reportMissing(prefix string, err error, add func(string, error, string)) {
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		add(prefix, ErrMissingAttachmentField, err.Error())
		return
	}
	for _, fe := range verrs {
		add(prefix+"."+strings.ToLower(fe.Field()), ErrMissingAttachmentField, fe.Tag())
	}
}
