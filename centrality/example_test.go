package centrality_test

import (
	"fmt"

	"github.com/strevik/grava/centrality"
	"github.com/strevik/grava/core"
)

// ExampleCompute scores a small path graph by degree centrality:
// the interior vertex touches everyone, the endpoints half of it.
func ExampleCompute() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "c", 0)

	res, _ := centrality.Compute(g, centrality.Degree)
	for _, v := range g.Vertices() {
		fmt.Printf("%s: %.2f\n", v, res.Scores[v])
	}
	// Output:
	// a: 0.50
	// b: 1.00
	// c: 0.50
}

// ExampleCompute_edgeBetweenness ranks the edges of a path graph; the
// Result keys are canonical edge keys.
func ExampleCompute_edgeBetweenness() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "c", 0)

	res, _ := centrality.Compute(g, centrality.EdgeBetweenness)
	fmt.Printf("%s: %.3f\n", centrality.EdgeKey("a", "b"), res.Scores[centrality.EdgeKey("a", "b")])
	fmt.Printf("%s: %.3f\n", centrality.EdgeKey("b", "c"), res.Scores[centrality.EdgeKey("b", "c")])
	// Output:
	// a|b: 0.667
	// b|c: 0.667
}
