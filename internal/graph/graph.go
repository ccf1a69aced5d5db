package graph

import (
	"slices"

	"github.com/phrazzld/medkb/internal/catalog"
	"github.com/phrazzld/medkb/internal/domain"
)

// Node is a record together with the collection it belongs to.
type Node struct {
	Collection string
	Record     *domain.Record
}

// Neighbor is the far end of one outgoing edge.
type Neighbor struct {
	Node
	Relationship domain.Relationship
	Label        string
}

// Edge is one resolved cross-reference.
type Edge struct {
	Source       Node
	Target       Node
	Relationship domain.Relationship
	Label        string
}

// Graph is the validated cross-reference graph over a fixed set of
// collections. It is immutable and safe for concurrent use.
type Graph struct {
	collections []*catalog.Collection
	index       map[string][]Node
	outgoing    map[string][]Neighbor
	edgeCount   int
}

// ValidateEdges checks every cross-reference of every record in the given
// collections: the target id must resolve to a record in one of them, and
// that record's kind must equal the declared target type. All broken edges
// are reported in one ReferentialErrors value, or nil when the graph is
// sound.
func ValidateEdges(collections ...*catalog.Collection) error {
	idx := buildIndex(collections)
	var errs ReferentialErrors
	for _, c := range collections {
		for _, r := range c.All() {
			for i, ref := range r.CrossReferences {
				if _, err := resolve(idx, ref); err != nil {
					errs = append(errs, err.with(c.Name(), r.ID, i))
				}
			}
		}
	}
	return errs.err()
}

// New validates the edges of the given collections and returns the
// navigable graph. Collections are searched in the order given when an id
// exists in more than one of them.
func New(collections ...*catalog.Collection) (*Graph, error) {
	if err := ValidateEdges(collections...); err != nil {
		return nil, err
	}

	g := &Graph{
		collections: slices.Clone(collections),
		index:       buildIndex(collections),
		outgoing:    make(map[string][]Neighbor),
	}
	for _, c := range collections {
		for _, r := range c.All() {
			key := nodeKey(c.Name(), r.ID)
			for _, ref := range r.CrossReferences {
				target, _ := resolve(g.index, ref)
				g.outgoing[key] = append(g.outgoing[key], Neighbor{
					Node:         target,
					Relationship: ref.Relationship,
					Label:        ref.Label,
				})
				g.edgeCount++
			}
		}
	}
	return g, nil
}

// Lookup returns the first node with this id, searching collections in
// the order the graph was built with.
func (g *Graph) Lookup(id string) (Node, bool) {
	nodes := g.index[id]
	if len(nodes) == 0 {
		return Node{}, false
	}
	return nodes[0], true
}

// NeighborsOf returns the outgoing edges of the record with this id, in
// declaration order, optionally restricted to the given relationships.
// Incoming edges are never included; query both endpoints to traverse in
// both directions. An unknown id yields an empty list. When several
// collections hold the id, the first one wins; use NeighborsIn to pick.
func (g *Graph) NeighborsOf(id string, relationships ...domain.Relationship) []Neighbor {
	src, ok := g.Lookup(id)
	if !ok {
		return []Neighbor{}
	}
	return g.NeighborsIn(src.Collection, id, relationships...)
}

// NeighborsIn is NeighborsOf for the record with this id in the named
// collection.
func (g *Graph) NeighborsIn(collection, id string, relationships ...domain.Relationship) []Neighbor {
	all := g.outgoing[nodeKey(collection, id)]
	out := make([]Neighbor, 0, len(all))
	for _, n := range all {
		if len(relationships) == 0 || slices.Contains(relationships, n.Relationship) {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns every edge in the graph, grouped by source in collection
// and declaration order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, c := range g.collections {
		for _, r := range c.All() {
			src := Node{Collection: c.Name(), Record: r}
			for _, n := range g.outgoing[nodeKey(c.Name(), r.ID)] {
				out = append(out, Edge{
					Source:       src,
					Target:       n.Node,
					Relationship: n.Relationship,
					Label:        n.Label,
				})
			}
		}
	}
	return out
}

// HasEdge reports whether from declares an edge of the given relationship
// to the node to.
func (g *Graph) HasEdge(from, to Node, rel domain.Relationship) bool {
	for _, n := range g.outgoing[nodeKey(from.Collection, from.Record.ID)] {
		if n.Relationship == rel && n.Collection == to.Collection && n.Record.ID == to.Record.ID {
			return true
		}
	}
	return false
}

// Collections returns the collections the graph spans.
func (g *Graph) Collections() []*catalog.Collection {
	return slices.Clone(g.collections)
}

func nodeKey(collection, id string) string {
	return collection + "\x00" + id
}

func buildIndex(collections []*catalog.Collection) map[string][]Node {
	idx := make(map[string][]Node)
	for _, c := range collections {
		for _, r := range c.All() {
			idx[r.ID] = append(idx[r.ID], Node{Collection: c.Name(), Record: r})
		}
	}
	return idx
}

// resolve finds the target of ref: the first node under the target id whose
// kind equals the declared target type.
func resolve(idx map[string][]Node, ref domain.CrossReference) (Node, *ReferenceError) {
	nodes := idx[ref.TargetID]
	if len(nodes) == 0 {
		return Node{}, &ReferenceError{Ref: ref, Err: ErrDanglingReference}
	}
	found := make([]domain.Kind, 0, len(nodes))
	for _, n := range nodes {
		if n.Record.Kind == ref.TargetType {
			return n, nil
		}
		found = append(found, n.Record.Kind)
	}
	return Node{}, &ReferenceError{Ref: ref, Found: found, Err: ErrTargetTypeMismatch}
}

func (e *ReferenceError) with(collection, sourceID string, index int) *ReferenceError {
	e.Collection = collection
	e.SourceID = sourceID
	e.Index = index
	return e
}
