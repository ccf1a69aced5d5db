// Package lint reports content issues that are legal but usually
// unintended, such as a sibling link declared on only one side.
package lint

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/phrazzld/medkb/internal/graph"
)

// Finding is one lint issue on a declared edge.
type Finding struct {
	Edge    graph.Edge
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s/%s -> %s/%s (%s): %s",
		f.Edge.Source.Collection, f.Edge.Source.Record.ID,
		f.Edge.Target.Collection, f.Edge.Target.Record.ID,
		f.Edge.Relationship, f.Message)
}

// OneWayEdges returns the edges whose relationship is symmetric but whose
// target declares no edge of the same relationship back to the source.
// The graph is never changed; fixing these is an authoring decision.
// Findings are sorted by source collection, source id and target id.
func OneWayEdges(g *graph.Graph) []Finding {
	out := make([]Finding, 0)
	for _, e := range g.Edges() {
		if !e.Relationship.Symmetric() {
			continue
		}
		if g.HasEdge(e.Target, e.Source, e.Relationship) {
			continue
		}
		out = append(out, Finding{
			Edge:    e,
			Message: fmt.Sprintf("%s link has no reverse %s link", e.Relationship, e.Relationship),
		})
	}
	slices.SortStableFunc(out, func(a, b Finding) int {
		return cmp.Or(
			cmp.Compare(a.Edge.Source.Collection, b.Edge.Source.Collection),
			cmp.Compare(a.Edge.Source.Record.ID, b.Edge.Source.Record.ID),
			cmp.Compare(a.Edge.Target.Record.ID, b.Edge.Target.Record.ID),
			cmp.Compare(a.Edge.Relationship, b.Edge.Relationship),
		)
	})
	return out
}
