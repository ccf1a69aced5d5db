package content

import (
	"errors"
	"fmt"
)

var (
	// ErrNoManifest is returned when a collection directory lacks collection.yaml.
	ErrNoManifest = errors.New("collection manifest not found")

	// ErrInvalidManifest is returned when collection.yaml is missing required fields.
	ErrInvalidManifest = errors.New("invalid collection manifest")

	// ErrDecode wraps every failure to parse a content file.
	ErrDecode = errors.New("content decode failed")
)

// FileError ties a decode failure to the file it came from.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}
