// Package domain contains the content data model of the library: the
// multi-level Content Record, its cross-references and lifecycle, and the
// structural validation every record passes before it can join a collection.
// It is independent of how content is stored, loaded or served.
package domain
