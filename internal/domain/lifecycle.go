package domain

import (
	"fmt"
	"time"
)

// CheckRevision verifies that next may replace prev as a whole-record
// revision: same id, a strictly greater version and an unchanged creation
// time. It does not validate the rest of next; see ValidateRecord.
func CheckRevision(prev, next *Record) error {
	if prev == nil || next == nil {
		panic(ErrNilRecord)
	}
	if next.ID != prev.ID {
		return fmt.Errorf("%w: %q -> %q", ErrRevisionIDChanged, prev.ID, next.ID)
	}
	if next.Version <= prev.Version {
		return fmt.Errorf("%w: %d -> %d", ErrRevisionVersion, prev.Version, next.Version)
	}
	if !next.CreatedAt.Equal(prev.CreatedAt) {
		return ErrRevisionCreatedAt
	}
	return nil
}

// Deprecated returns a new revision of r with status deprecated, the version
// bumped and UpdatedAt set to at. The receiver is left untouched.
func (r *Record) Deprecated(at time.Time) (*Record, error) {
	if r.Status == StatusDeprecated {
		return nil, ErrAlreadyDeprecated
	}
	next := r.Clone()
	next.Status = StatusDeprecated
	next.Version = r.Version + 1
	next.UpdatedAt = at.UTC()
	return next, nil
}
