package library

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrNoCollections is returned when the content source holds no collections.
	ErrNoCollections = errors.New("no collections found")

	// ErrDuplicateCollection is returned when two collections share a name.
	ErrDuplicateCollection = errors.New("duplicate collection name")
)

// Report is the aggregated outcome of a failed Load. Every collection's
// problems are gathered before Load gives up, so an author sees the whole
// picture in one pass.
type Report struct {
	// Collections maps a collection directory to the error that kept it out.
	Collections map[string]error
	// Graph holds referential problems across collections. It is only
	// populated when every collection built cleanly.
	Graph error
}

func (r *Report) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "library load failed: %d problem group(s)", r.len())
	for _, dir := range sortedKeys(r.Collections) {
		fmt.Fprintf(&b, "\n[%s] %v", dir, r.Collections[dir])
	}
	if r.Graph != nil {
		fmt.Fprintf(&b, "\n[graph] %v", r.Graph)
	}
	return b.String()
}

func (r *Report) Unwrap() []error {
	out := make([]error, 0, r.len())
	for _, dir := range sortedKeys(r.Collections) {
		out = append(out, r.Collections[dir])
	}
	if r.Graph != nil {
		out = append(out, r.Graph)
	}
	return out
}

func (r *Report) len() int {
	n := len(r.Collections)
	if r.Graph != nil {
		n++
	}
	return n
}

func (r *Report) add(dir string, err error) {
	if r.Collections == nil {
		r.Collections = make(map[string]error)
	}
	r.Collections[dir] = err
}

func (r *Report) err() error {
	if r.len() == 0 {
		return nil
	}
	return r
}

func sortedKeys(m map[string]error) []string {
	return slices.Sorted(maps.Keys(m))
}
