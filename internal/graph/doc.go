// Package graph validates and navigates the cross-references declared inside
// records, across one or more collections.
//
// Edges are directed. A "sibling" edge from A to B says nothing about B; the
// graph never fabricates reverse edges. Referential problems are reported
// when the graph is built, so traversal of a built graph cannot fail.
package graph
