// Package library assembles the published knowledge base: every collection
// found by a content loader, built and validated, plus the cross-reference
// graph spanning them. A Library is immutable once loaded.
package library
