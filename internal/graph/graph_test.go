package graph_test

import (
	"testing"

	"github.com/phrazzld/medkb/internal/catalog"
	"github.com/phrazzld/medkb/internal/domain"
	"github.com/phrazzld/medkb/internal/graph"
	"github.com/phrazzld/medkb/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCollection(t *testing.T, name string, kind domain.Kind, records ...*domain.Record) *catalog.Collection {
	t.Helper()

	cats := map[domain.Category]bool{}
	var categories []domain.Category
	for _, r := range records {
		if !cats[r.Category] {
			cats[r.Category] = true
			categories = append(categories, r.Category)
		}
	}
	if len(categories) == 0 {
		categories = []domain.Category{"general"}
	}
	c, err := catalog.Build(name, testutils.MustSchema(t, kind, categories...), records)
	require.NoError(t, err)
	return c
}

func TestNeighborsOf_NotMirrored(t *testing.T) {
	t.Parallel()

	c := mustCollection(t, "topics", domain.KindTopic,
		testutils.NewTestRecord("A", domain.KindTopic, "general",
			testutils.WithCrossReference("B", domain.KindTopic, domain.RelationshipRelated)),
		testutils.NewTestRecord("B", domain.KindTopic, "general"),
		testutils.NewTestRecord("C", domain.KindTopic, "general"),
	)

	g, err := graph.New(c)
	require.NoError(t, err)

	fromA := g.NeighborsOf("A")
	require.Len(t, fromA, 1)
	assert.Equal(t, "B", fromA[0].Record.ID)
	assert.Equal(t, domain.RelationshipRelated, fromA[0].Relationship)
	assert.Equal(t, "topics", fromA[0].Collection)

	assert.Empty(t, g.NeighborsOf("B"), "edges must not be auto-mirrored")
	assert.Empty(t, g.NeighborsOf("C"))
	assert.NotNil(t, g.NeighborsOf("missing"))
	assert.Empty(t, g.NeighborsOf("missing"))
}

func TestNeighborsOf_RelationshipFilter(t *testing.T) {
	t.Parallel()

	c := mustCollection(t, "topics", domain.KindTopic,
		testutils.NewTestRecord("A", domain.KindTopic, "general",
			testutils.WithCrossReference("B", domain.KindTopic, domain.RelationshipSibling),
			testutils.WithCrossReference("C", domain.KindTopic, domain.RelationshipSeeAlso),
			testutils.WithCrossReference("D", domain.KindTopic, domain.RelationshipSibling),
		),
		testutils.NewTestRecord("B", domain.KindTopic, "general"),
		testutils.NewTestRecord("C", domain.KindTopic, "general"),
		testutils.NewTestRecord("D", domain.KindTopic, "general"),
	)
	g, err := graph.New(c)
	require.NoError(t, err)

	ids := func(ns []graph.Neighbor) []string {
		out := make([]string, len(ns))
		for i, n := range ns {
			out[i] = n.Record.ID
		}
		return out
	}

	assert.Equal(t, []string{"B", "C", "D"}, ids(g.NeighborsOf("A")))
	assert.Equal(t, []string{"B", "D"}, ids(g.NeighborsOf("A", domain.RelationshipSibling)))
	assert.Equal(t, []string{"B", "C", "D"}, ids(g.NeighborsOf("A", domain.RelationshipSibling, domain.RelationshipSeeAlso)))
	assert.Empty(t, g.NeighborsOf("A", domain.RelationshipParent))
}

func TestValidateEdges_CrossCollection(t *testing.T) {
	t.Parallel()

	neuro := mustCollection(t, "neuro", domain.KindNeuroEntry,
		testutils.NewTestRecord("stroke", domain.KindNeuroEntry, "vascular",
			testutils.WithCrossReference("focal-weakness", domain.KindDifferentialEntry, domain.RelationshipSeeAlso)),
	)
	ddx := mustCollection(t, "differentials", domain.KindDifferentialEntry,
		testutils.NewTestRecord("focal-weakness", domain.KindDifferentialEntry, "neurological",
			testutils.WithCrossReference("stroke", domain.KindNeuroEntry, domain.RelationshipDifferential)),
	)

	require.NoError(t, graph.ValidateEdges(neuro, ddx))

	g, err := graph.New(neuro, ddx)
	require.NoError(t, err)
	n := g.NeighborsOf("stroke")
	require.Len(t, n, 1)
	assert.Equal(t, "differentials", n[0].Collection)
	assert.Len(t, g.Edges(), 2)

	// The same edges are dangling when the other collection is not supplied.
	err = graph.ValidateEdges(neuro)
	assert.ErrorIs(t, err, graph.ErrDanglingReference)
}

func TestValidateEdges_ExactlyOneDangling(t *testing.T) {
	t.Parallel()

	c := mustCollection(t, "topics", domain.KindTopic,
		testutils.NewTestRecord("A", domain.KindTopic, "general",
			testutils.WithCrossReference("B", domain.KindTopic, domain.RelationshipRelated),
			testutils.WithCrossReference("ghost", domain.KindTopic, domain.RelationshipSeeAlso),
		),
		testutils.NewTestRecord("B", domain.KindTopic, "general",
			testutils.WithCrossReference("C", domain.KindTopic, domain.RelationshipSibling)),
		testutils.NewTestRecord("C", domain.KindTopic, "general",
			testutils.WithCrossReference("A", domain.KindTopic, domain.RelationshipParent)),
	)

	err := graph.ValidateEdges(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, graph.ErrReferentialIntegrity)

	var rerrs graph.ReferentialErrors
	require.ErrorAs(t, err, &rerrs)
	require.Len(t, rerrs, 1)
	assert.Equal(t, "A", rerrs[0].SourceID)
	assert.Equal(t, 1, rerrs[0].Index)
	assert.Equal(t, "ghost", rerrs[0].Ref.TargetID)
	assert.ErrorIs(t, rerrs[0], graph.ErrDanglingReference)

	g, err := graph.New(c)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, graph.ErrDanglingReference)
}

func TestValidateEdges_TypeMismatch(t *testing.T) {
	t.Parallel()

	topics := mustCollection(t, "topics", domain.KindTopic,
		testutils.NewTestRecord("dopamine", domain.KindTopic, "general"),
	)
	neuro := mustCollection(t, "neuro", domain.KindNeuroEntry,
		testutils.NewTestRecord("parkinsons", domain.KindNeuroEntry, "movement",
			testutils.WithCrossReference("dopamine", domain.KindConcept, domain.RelationshipRelated)),
	)

	err := graph.ValidateEdges(topics, neuro)
	require.Error(t, err)
	assert.ErrorIs(t, err, graph.ErrTargetTypeMismatch)
	assert.NotErrorIs(t, err, graph.ErrDanglingReference)

	var rerrs graph.ReferentialErrors
	require.ErrorAs(t, err, &rerrs)
	require.Len(t, rerrs, 1)
	assert.Equal(t, []domain.Kind{domain.KindTopic}, rerrs[0].Found)
	assert.Contains(t, rerrs[0].Error(), "found topic")
}

func TestValidateEdges_ReportsAll(t *testing.T) {
	t.Parallel()

	c := mustCollection(t, "topics", domain.KindTopic,
		testutils.NewTestRecord("B", domain.KindTopic, "general",
			testutils.WithCrossReference("x", domain.KindTopic, domain.RelationshipRelated)),
		testutils.NewTestRecord("A", domain.KindTopic, "general",
			testutils.WithCrossReference("y", domain.KindTopic, domain.RelationshipRelated),
			testutils.WithCrossReference("B", domain.KindConcept, domain.RelationshipRelated)),
	)

	err := graph.ValidateEdges(c)
	var rerrs graph.ReferentialErrors
	require.ErrorAs(t, err, &rerrs)
	require.Len(t, rerrs, 3)
	assert.Equal(t, "A", rerrs[0].SourceID)
	assert.Equal(t, 0, rerrs[0].Index)
	assert.Equal(t, "A", rerrs[1].SourceID)
	assert.Equal(t, 1, rerrs[1].Index)
	assert.Equal(t, "B", rerrs[2].SourceID)
}

func TestHasEdge(t *testing.T) {
	t.Parallel()

	c := mustCollection(t, "topics", domain.KindTopic,
		testutils.NewTestRecord("A", domain.KindTopic, "general",
			testutils.WithCrossReference("B", domain.KindTopic, domain.RelationshipSibling)),
		testutils.NewTestRecord("B", domain.KindTopic, "general"),
	)
	g, err := graph.New(c)
	require.NoError(t, err)

	a, ok := g.Lookup("A")
	require.True(t, ok)
	b, ok := g.Lookup("B")
	require.True(t, ok)

	assert.True(t, g.HasEdge(a, b, domain.RelationshipSibling))
	assert.False(t, g.HasEdge(b, a, domain.RelationshipSibling))
	assert.False(t, g.HasEdge(a, b, domain.RelationshipRelated))
}

func TestNeighborsIn_SharedIDAcrossCollections(t *testing.T) {
	t.Parallel()

	topics := mustCollection(t, "a-topics", domain.KindTopic,
		testutils.NewTestRecord("X", domain.KindTopic, "general"),
	)
	neuro := mustCollection(t, "b-neuro", domain.KindNeuroEntry,
		testutils.NewTestRecord("X", domain.KindNeuroEntry, "general",
			testutils.WithCrossReference("Y", domain.KindNeuroEntry, domain.RelationshipRelated)),
		testutils.NewTestRecord("Y", domain.KindNeuroEntry, "general"),
	)

	g, err := graph.New(topics, neuro)
	require.NoError(t, err)
	require.Len(t, g.Edges(), 1)

	assert.Empty(t, g.NeighborsOf("X"), "the first collection holding X declares no edges")
	assert.Empty(t, g.NeighborsIn("a-topics", "X"))

	got := g.NeighborsIn("b-neuro", "X")
	require.Len(t, got, 1)
	assert.Equal(t, "Y", got[0].Record.ID)
	assert.Equal(t, "b-neuro", got[0].Collection)

	assert.Empty(t, g.NeighborsIn("b-neuro", "X", domain.RelationshipSibling))
	assert.NotNil(t, g.NeighborsIn("missing", "X"))
	assert.Empty(t, g.NeighborsIn("missing", "X"))
}
