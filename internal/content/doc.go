// Package content reads collections of knowledge records from a file tree.
//
// A collection is a directory holding a collection.yaml manifest and any
// number of record files. Record files are YAML; a file may hold several
// records separated by "---". The loader only decodes: validation of the
// decoded records belongs to the catalog package.
package content
