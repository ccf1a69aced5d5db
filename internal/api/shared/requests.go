package shared

import (
	"net/http"
	"strings"
)

// QueryParam returns the trimmed value of a query parameter.
func QueryParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// QueryParamSet reports whether a query parameter is present, even if empty.
func QueryParamSet(r *http.Request, name string) bool {
	return r.URL.Query().Has(name)
}
