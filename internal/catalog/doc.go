// Package catalog owns the Content Collection: an immutable, validated,
// id-keyed set of records sharing one kind and category enumeration.
//
// A collection is built once, all-or-nothing, and is safe for concurrent
// readers afterwards. Revisions produce a new collection rather than
// modifying a published one.
package catalog
