// Package api provides the read-only HTTP handlers over a loaded library.
//
// Handlers never mutate the library; every request reads the same
// immutable collections and graph, so no locking is needed.
package api
