package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/medkb/internal/catalog"
	"github.com/phrazzld/medkb/internal/query"
)

// ErrCollectionNotFound is returned when a request names an unknown collection.
var ErrCollectionNotFound = fmt.Errorf("%w: collection", catalog.ErrNotFound)

// ErrInvalidQueryParam is returned when a query parameter cannot be parsed.
var ErrInvalidQueryParam = errors.New("invalid query parameter")

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, query.ErrUnknownField),
		errors.Is(err, query.ErrEmptyFacet),
		errors.Is(err, ErrInvalidQueryParam):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"
	case errors.Is(err, ErrCollectionNotFound):
		return "Collection not found"
	case errors.Is(err, catalog.ErrRecordNotFound):
		return "Record not found"
	case errors.Is(err, query.ErrUnknownField):
		return "Unknown search field"
	case errors.Is(err, query.ErrEmptyFacet):
		return "Facet name is required"
	case errors.Is(err, ErrInvalidQueryParam):
		// Wraps only the parameter name and expected form, safe to echo.
		return err.Error()
	default:
		return "An unexpected error occurred"
	}
}
