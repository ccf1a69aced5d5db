package catalog

import (
	"errors"
	"fmt"
)

// Common catalog errors.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrRecordNotFound indicates that the requested record is not in the collection.
	ErrRecordNotFound = fmt.Errorf("%w: record", ErrNotFound)

	// ErrEmptyCollectionName is returned when a collection is built without a name.
	ErrEmptyCollectionName = errors.New("collection name cannot be empty")

	// ErrCollectionNotBuilt is the panic value for queries against a nil
	// collection. It indicates a caller bug, not bad data.
	ErrCollectionNotBuilt = errors.New("collection has not been built")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
