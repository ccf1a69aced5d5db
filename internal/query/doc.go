// Package query provides read-only filtering and free-text search over one
// collection. Every function is a pure function of its arguments; results
// follow the collection's declaration order and are never nil.
//
// Search only looks at the fields the caller names. Adding a searchable
// field is an explicit API change: a new Field constant.
package query
