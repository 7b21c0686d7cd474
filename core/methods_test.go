// Package core_test verifies core.Graph method-level contracts:
// vertex/edge lifecycle, constraint enforcement (negative weights,
// empty IDs), the duplicate-edge overwrite policy, and the ordering
// guarantees of Vertices/Edges/Neighbors.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vialath/vialath/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	// Empty IDs are rejected.
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	// Valid insert.
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())

	// Duplicate insert is a no-op.
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestGraph_HasVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("ghost"))
}

func TestGraph_AddEdge_ImplicitVertices(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddEdge("A", "B", 2.5))

	// Both endpoints were added implicitly.
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("A", "B"))
	// Directed: no mirror edge.
	assert.False(t, g.HasEdge("B", "A"))
}

func TestGraph_AddEdge_NegativeWeightLeavesGraphUnchanged(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	err := g.AddEdge("A", "C", -1)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	// Failed insert must not add vertices or edges.
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasVertex("C"))
}

func TestGraph_AddEdge_EmptyEndpoint(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "", 1), core.ErrEmptyVertexID)
	assert.Equal(t, 0, g.VertexCount())
}

func TestGraph_AddEdge_DuplicateOverwrites(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("A", "B", 2))

	// Same ordered pair: second insert replaces the first, edge count stays 1.
	assert.Equal(t, 1, g.EdgeCount())
	w, err := g.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
}

func TestGraph_EdgeWeight_Errors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	_, err := g.EdgeWeight("A", "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	// Both endpoints exist, but B→A was never added.
	_, err = g.EdgeWeight("B", "A")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_Neighbors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "C", 3))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddVertex("D"))

	// Sorted by destination ID.
	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbrs, 2)
	assert.Equal(t, "B", nbrs[0].To)
	assert.Equal(t, "C", nbrs[1].To)

	// Vertex with no outgoing edges yields an empty slice, not an error.
	nbrs, err = g.Neighbors("D")
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	// Never-added vertex is an error.
	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_EdgeKind(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 4, core.WithEdgeKind("toll")))

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbrs, 1)
	assert.Equal(t, "toll", nbrs[0].Kind)
}

func TestGraph_VerticesAndEdgesSorted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("C", "A", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("B", "A", 3))

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "B", edges[0].From)
	assert.Equal(t, "A", edges[0].To)
	assert.Equal(t, "B", edges[1].From)
	assert.Equal(t, "C", edges[1].To)
	assert.Equal(t, "C", edges[2].From)
	assert.Equal(t, "A", edges[2].To)
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	clone := g.Clone()
	require.NoError(t, clone.AddEdge("B", "C", 2))

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, clone.EdgeCount())
	assert.False(t, g.HasVertex("C"))

	// Overwriting in the clone must not leak into the original.
	require.NoError(t, clone.AddEdge("A", "B", 9))
	w, err := g.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

func TestGraph_Clear(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	g.Clear()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasVertex("A"))
}
