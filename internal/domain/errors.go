package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is matched by every aggregated validation report.
	// Check the individual FieldError values for the specific problems.
	ErrValidation = errors.New("validation failed")

	// ErrNilRecord is a programming error: a nil record was passed where a
	// record value is required.
	ErrNilRecord = errors.New("record is nil")
)

// Record-specific validation errors
var (
	// ErrEmptyID is returned when a record has no id.
	ErrEmptyID = errors.New("record id cannot be empty")

	// ErrDuplicateID is returned when two records in one collection share an id.
	ErrDuplicateID = errors.New("record id must be unique within the collection")

	// ErrEmptyName is returned when a record has no display name.
	ErrEmptyName = errors.New("record name cannot be empty")

	// ErrInvalidKind is returned when a record kind is not a known kind.
	ErrInvalidKind = errors.New("invalid record kind")

	// ErrKindMismatch is returned when a record kind differs from the kind
	// of the collection it is being added to.
	ErrKindMismatch = errors.New("record kind does not match collection kind")

	// ErrEmptyCategory is returned when a record has no category.
	ErrEmptyCategory = errors.New("record category cannot be empty")

	// ErrUnknownCategory is returned when a category is outside the
	// collection's category enumeration.
	ErrUnknownCategory = errors.New("category is not defined for this collection")

	// ErrNoLevels is returned when a record carries no level bodies.
	ErrNoLevels = errors.New("record must define level 1")

	// ErrLevelOutOfRange is returned for level keys outside 1..5.
	ErrLevelOutOfRange = errors.New("level must be between 1 and 5")

	// ErrLevelGap is returned when the defined levels are not contiguous from 1.
	ErrLevelGap = errors.New("levels must be contiguous starting at 1")

	// ErrEmptyKeyTerm is returned when a key term has no term text.
	ErrEmptyKeyTerm = errors.New("key term cannot be empty")

	// ErrDuplicateKeyTerm is returned when a level lists the same term twice,
	// compared case-insensitively.
	ErrDuplicateKeyTerm = errors.New("key terms must be unique within a level")

	// ErrEmptyTargetID is returned when a cross-reference has no target id.
	ErrEmptyTargetID = errors.New("cross-reference target id cannot be empty")

	// ErrInvalidTargetType is returned when a cross-reference target type is
	// not a known kind.
	ErrInvalidTargetType = errors.New("invalid cross-reference target type")

	// ErrInvalidRelationship is returned for relationships outside the
	// closed enumeration.
	ErrInvalidRelationship = errors.New("invalid cross-reference relationship")

	// ErrMissingAttachmentField is returned when a media or citation entry
	// lacks a required field.
	ErrMissingAttachmentField = errors.New("attachment is missing a required field")

	// ErrInvalidVersion is returned when a record version is below 1.
	ErrInvalidVersion = errors.New("record version must be at least 1")

	// ErrInvalidStatus is returned when a record status is not valid.
	ErrInvalidStatus = errors.New("invalid record status")

	// ErrInvalidTimestamps is returned when updated_at precedes created_at.
	ErrInvalidTimestamps = errors.New("updated_at cannot be before created_at")
)

// Revision errors for whole-record replacement.
var (
	// ErrRevisionIDChanged is returned when a replacement record has a different id.
	ErrRevisionIDChanged = errors.New("replacement must keep the record id")

	// ErrRevisionVersion is returned when a replacement does not bump the version.
	ErrRevisionVersion = errors.New("replacement must increase the record version")

	// ErrRevisionCreatedAt is returned when a replacement rewrites created_at.
	ErrRevisionCreatedAt = errors.New("replacement must keep created_at")

	// ErrAlreadyDeprecated is returned when deprecating a deprecated record.
	ErrAlreadyDeprecated = errors.New("record is already deprecated")
)
