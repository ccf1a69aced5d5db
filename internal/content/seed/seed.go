// Package seed embeds the starter library shipped with the binary.
package seed

import (
	"embed"
	"io/fs"
)

//go:embed library
var libraryFS embed.FS

// Library returns the embedded content tree rooted at its collections.
func Library() fs.FS {
	sub, err := fs.Sub(libraryFS, "library")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}
