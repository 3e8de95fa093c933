package centrality_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strevik/grava/centrality"
	"github.com/strevik/grava/core"
)

// buildPath returns v0–v1–…–v(n-1) as an unweighted undirected graph.
func buildPath(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		_, err := g.AddEdge("v"+strconv.Itoa(i), "v"+strconv.Itoa(i+1), 0)
		require.NoError(t, err)
	}

	return g
}

// buildStar returns a center c connected to n leaves l0…l(n-1).
func buildStar(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, err := g.AddEdge("c", "l"+strconv.Itoa(i), 0)
		require.NoError(t, err)
	}

	return g
}

func TestCompute_Validation(t *testing.T) {
	_, err := centrality.Compute(nil, centrality.Degree)
	assert.ErrorIs(t, err, centrality.ErrNilGraph)

	_, err = centrality.Compute(core.NewGraph(), centrality.Degree)
	assert.ErrorIs(t, err, centrality.ErrEmptyGraph)

	g := buildPath(t, 3)
	_, err = centrality.Compute(g, centrality.Measure(99))
	assert.ErrorIs(t, err, centrality.ErrUnknownMeasure)

	_, err = centrality.Compute(g, centrality.PageRank, centrality.WithDamping(1.5))
	assert.ErrorIs(t, err, centrality.ErrOptionViolation)

	_, err = centrality.Compute(g, centrality.PageRank, centrality.WithTolerance(-1))
	assert.ErrorIs(t, err, centrality.ErrOptionViolation)

	_, err = centrality.Compute(g, centrality.PageRank, centrality.WithMaxIterations(0))
	assert.ErrorIs(t, err, centrality.ErrOptionViolation)
}

func TestDegree_Path(t *testing.T) {
	g := buildPath(t, 3)

	res, err := centrality.Compute(g, centrality.Degree)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, res.Scores["v0"], 1e-12)
	assert.InDelta(t, 1.0, res.Scores["v1"], 1e-12)
	assert.InDelta(t, 0.5, res.Scores["v2"], 1e-12)
	assert.True(t, res.Converged)
	assert.Zero(t, res.Iterations)
}

func TestDegree_WeightedStar(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("c", "a", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("c", "b", 4)
	require.NoError(t, err)

	res, err := centrality.Compute(g, centrality.Degree)
	require.NoError(t, err)

	// n-1 = 2; center sums both weights.
	assert.InDelta(t, 3.0, res.Scores["c"], 1e-12)
	assert.InDelta(t, 1.0, res.Scores["a"], 1e-12)
	assert.InDelta(t, 2.0, res.Scores["b"], 1e-12)
}

func TestCloseness_Path(t *testing.T) {
	g := buildPath(t, 3)

	res, err := centrality.Compute(g, centrality.Closeness)
	require.NoError(t, err)

	// Endpoint: reaches 3 vertices at total distance 3.
	assert.InDelta(t, 2.0/3.0, res.Scores["v0"], 1e-12)
	assert.InDelta(t, 1.0, res.Scores["v1"], 1e-12)
	assert.InDelta(t, 2.0/3.0, res.Scores["v2"], 1e-12)
}

func TestCloseness_Disconnected(t *testing.T) {
	// Two disjoint dyads: reach-weighted closeness stays finite and
	// penalizes the small reachable set.
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("x", "y", 0)
	require.NoError(t, err)

	res, err := centrality.Compute(g, centrality.Closeness)
	require.NoError(t, err)

	for v, s := range res.Scores {
		assert.InDelta(t, 1.0/3.0, s, 1e-12, "vertex %s", v)
	}
}

func TestCloseness_Isolated(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("alone"))

	res, err := centrality.Compute(g, centrality.Closeness)
	require.NoError(t, err)
	assert.Zero(t, res.Scores["alone"])
}

func TestEigenvector_Star(t *testing.T) {
	g := buildStar(t, 4)

	res, err := centrality.Compute(g, centrality.Eigenvector)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Positive(t, res.Iterations)

	for i := 0; i < 4; i++ {
		leaf := "l" + strconv.Itoa(i)
		assert.Greater(t, res.Scores["c"], res.Scores[leaf])
		assert.Positive(t, res.Scores[leaf])
	}
	// Leaves are interchangeable.
	assert.InDelta(t, res.Scores["l0"], res.Scores["l3"], 1e-9)
}

func TestEigenvector_PerComponent(t *testing.T) {
	// Triangle plus an isolated vertex: the triangle converges on its
	// own submatrix, the singleton scores zero.
	g := core.NewGraph()
	for _, pair := range [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("alone"))

	res, err := centrality.Compute(g, centrality.Eigenvector)
	require.NoError(t, err)

	assert.InDelta(t, res.Scores["a"], res.Scores["b"], 1e-9)
	assert.InDelta(t, res.Scores["b"], res.Scores["c"], 1e-9)
	assert.Positive(t, res.Scores["a"])
	assert.Zero(t, res.Scores["alone"])
}

func TestPageRank_Triangle(t *testing.T) {
	g := core.NewGraph()
	for _, pair := range [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	res, err := centrality.Compute(g, centrality.PageRank)
	require.NoError(t, err)
	assert.True(t, res.Converged)

	var sum float64
	for _, s := range res.Scores {
		sum += s
		assert.InDelta(t, 1.0/3.0, s, 1e-6)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestPageRank_DirectedChain(t *testing.T) {
	// a→b→c: rank accumulates downstream, c is dangling.
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 0)
	require.NoError(t, err)

	res, err := centrality.Compute(g, centrality.PageRank)
	require.NoError(t, err)

	assert.Greater(t, res.Scores["c"], res.Scores["b"])
	assert.Greater(t, res.Scores["b"], res.Scores["a"])

	var sum float64
	for _, s := range res.Scores {
		sum += s
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestPageRank_ConvergenceFlag(t *testing.T) {
	g := buildStar(t, 5)

	res, err := centrality.Compute(g, centrality.PageRank, centrality.WithMaxIterations(1))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
}

func TestBetweenness_Path(t *testing.T) {
	g := buildPath(t, 3)

	res, err := centrality.Compute(g, centrality.Betweenness)
	require.NoError(t, err)

	// The only interior vertex carries every cross pair: raw 2 over
	// (n-1)(n-2) = 2 ordered pairs.
	assert.Zero(t, res.Scores["v0"])
	assert.InDelta(t, 1.0, res.Scores["v1"], 1e-12)
	assert.Zero(t, res.Scores["v2"])
}

func TestBetweenness_LongPathInteriorMax(t *testing.T) {
	g := buildPath(t, 5)

	res, err := centrality.Compute(g, centrality.Betweenness)
	require.NoError(t, err)

	assert.Zero(t, res.Scores["v0"])
	assert.Zero(t, res.Scores["v4"])
	assert.Greater(t, res.Scores["v2"], res.Scores["v1"])
	assert.Greater(t, res.Scores["v2"], res.Scores["v3"])
}

func TestBetweenness_Weighted(t *testing.T) {
	// Triangle where the direct a–c edge is heavier than the detour
	// through b, so b lies on the a↔c shortest path.
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "c", 5)
	require.NoError(t, err)

	res, err := centrality.Compute(g, centrality.Betweenness)
	require.NoError(t, err)

	assert.Positive(t, res.Scores["b"])
	assert.Zero(t, res.Scores["a"])
	assert.Zero(t, res.Scores["c"])
}

func TestEdgeBetweenness_Path(t *testing.T) {
	g := buildPath(t, 3)

	res, err := centrality.Compute(g, centrality.EdgeBetweenness)
	require.NoError(t, err)
	require.Len(t, res.Scores, 2)

	// Each edge carries 4 of the 6 ordered pairs.
	assert.InDelta(t, 2.0/3.0, res.Scores[centrality.EdgeKey("v0", "v1")], 1e-12)
	assert.InDelta(t, 2.0/3.0, res.Scores[centrality.EdgeKey("v1", "v2")], 1e-12)
}

func TestEdgeBetweenness_Bridge(t *testing.T) {
	// Two triangles joined by a bridge: the bridge outscores every
	// intra-triangle edge.
	g := core.NewGraph()
	for _, pair := range [][2]string{
		{"a", "b"}, {"b", "c"}, {"a", "c"},
		{"x", "y"}, {"y", "z"}, {"x", "z"},
		{"c", "x"},
	} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	res, err := centrality.Compute(g, centrality.EdgeBetweenness)
	require.NoError(t, err)

	bridge := res.Scores[centrality.EdgeKey("c", "x")]
	for key, s := range res.Scores {
		if key == centrality.EdgeKey("c", "x") {
			continue
		}
		assert.Greater(t, bridge, s, "edge %s", key)
	}
}

func TestEdgeBetweenness_WeightedCoversAllEdges(t *testing.T) {
	// The heavy a–c edge lies on no shortest path (a–b–c costs 2, the
	// direct edge 5) but must still appear in the scores, at 0.
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "c", 5)
	require.NoError(t, err)

	res, err := centrality.Compute(g, centrality.EdgeBetweenness)
	require.NoError(t, err)

	require.Len(t, res.Scores, 3)
	assert.Zero(t, res.Scores[centrality.EdgeKey("a", "c")])
	assert.InDelta(t, 2.0/3.0, res.Scores[centrality.EdgeKey("a", "b")], 1e-12)
	assert.InDelta(t, 2.0/3.0, res.Scores[centrality.EdgeKey("b", "c")], 1e-12)
}

func TestCompute_Cancellation(t *testing.T) {
	g := buildPath(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, m := range []centrality.Measure{
		centrality.Closeness,
		centrality.Eigenvector,
		centrality.PageRank,
		centrality.Betweenness,
	} {
		_, err := centrality.Compute(g, m, centrality.WithContext(ctx))
		assert.ErrorIs(t, err, context.Canceled, "measure %s", m)
	}
}

func TestEdgeKey_Canonical(t *testing.T) {
	assert.Equal(t, centrality.EdgeKey("b", "a"), centrality.EdgeKey("a", "b"))

	u, v := centrality.SplitEdgeKey(centrality.EdgeKey("z", "a"))
	assert.Equal(t, "a", u)
	assert.Equal(t, "z", v)
}

func TestMeasure_String(t *testing.T) {
	assert.Equal(t, "pagerank", centrality.PageRank.String())
	assert.Equal(t, "edge_betweenness", centrality.EdgeBetweenness.String())
	assert.True(t, centrality.EdgeBetweenness.EdgeMeasure())
	assert.False(t, centrality.Betweenness.EdgeMeasure())
}
