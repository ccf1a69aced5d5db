// Package shared holds request context, request and response helpers
// used by the API handlers and middleware.
package shared
