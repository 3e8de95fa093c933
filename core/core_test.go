package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strevik/grava/core"
)

func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	assert.NoError(t, g.AddVertex("A"))
	// Idempotent: re-adding is a no-op.
	assert.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
}

func TestAddEdge_AutoAddsEndpoints(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, eid)
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.HasEdge("A", "B"))
	// Undirected: mirror orientation is visible too.
	assert.True(t, g.HasEdge("B", "A"))
}

func TestAddEdge_WeightPolicy(t *testing.T) {
	unweighted := core.NewGraph()
	_, err := unweighted.AddEdge("A", "B", 2.5)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	weighted := core.NewGraph(core.WithWeighted())
	_, err = weighted.AddEdge("A", "B", -1)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	_, err = weighted.AddEdge("A", "B", 2.5)
	require.NoError(t, err)
	w, err := weighted.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)
}

func TestEdgeWeight_UnweightedDefaultsToOne(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	w, err := g.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)

	_, err = g.EdgeWeight("A", "C")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestAddEdge_LoopAndMultiPolicy(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	loops := core.NewGraph(core.WithLoops())
	_, err = loops.AddEdge("A", "A", 0)
	assert.NoError(t, err)

	multi := core.NewGraph(core.WithMultiEdges())
	_, err = multi.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = multi.AddEdge("A", "B", 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, multi.EdgeCount())
}

func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	// Star around B: A-B, B-C, plus an edge A-C that must survive.
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("A", "C", 0)

	require.NoError(t, g.RemoveVertex("B"))
	assert.False(t, g.HasVertex("B"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "C"))
	assert.True(t, g.HasEdge("A", "C"))
	assert.Equal(t, 1, g.EdgeCount())
	// Surviving IDs untouched.
	assert.Equal(t, []string{"A", "C"}, g.Vertices())

	assert.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
}

func TestRemoveVertex_DirectedInEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 0)
	g.AddEdge("C", "B", 0)
	g.AddEdge("A", "C", 0)

	require.NoError(t, g.RemoveVertex("B"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("A", "C"))
}

func TestRemoveEdgeBetween(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)

	require.NoError(t, g.RemoveEdgeBetween("A", "B"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.True(t, g.HasEdge("B", "C"))
	// Vertices survive edge removal.
	assert.Equal(t, 3, g.VertexCount())

	assert.ErrorIs(t, g.RemoveEdgeBetween("A", "B"), core.ErrEdgeNotFound)
}

func TestRemoveEdge_ByID(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(eid))
	assert.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge("A", "B"))
}

func TestNeighbors_SortedAndDirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "C", 0)
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "A", 0)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	// Outgoing only, sorted.
	assert.Equal(t, []string{"B", "C"}, ids)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	_, err = g.NeighborIDs("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestWeightedDegree(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1.5)
	g.AddEdge("A", "C", 2.0)

	wd, err := g.WeightedDegree("A")
	require.NoError(t, err)
	assert.InDelta(t, 3.5, wd, 1e-12)

	unweighted := core.NewGraph()
	unweighted.AddEdge("A", "B", 0)
	wd, err = unweighted.WeightedDegree("A")
	require.NoError(t, err)
	assert.Equal(t, 1.0, wd)
}

func TestClone_Independence(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)

	c := g.Clone()
	require.NoError(t, c.RemoveVertex("B"))

	// Original untouched.
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []string{"A", "C"}, c.Vertices())
	assert.Equal(t, 0, c.EdgeCount())
	assert.True(t, c.Weighted())
}

func TestVerticesEdges_Deterministic(t *testing.T) {
	g := core.NewGraph()
	for _, pair := range [][2]string{{"D", "B"}, {"A", "C"}, {"B", "A"}} {
		g.AddEdge(pair[0], pair[1], 0)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 3)
	for i := 1; i < len(edges); i++ {
		assert.Less(t, edges[i-1].ID, edges[i].ID)
	}
}
