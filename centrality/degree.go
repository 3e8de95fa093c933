package centrality

import (
	"fmt"

	"github.com/strevik/grava/core"
)

// degreeScores fills res with degree centrality: the (weighted) degree
// of each vertex divided by n-1. A single-vertex graph scores 0.
// Complexity: O(V + E).
func degreeScores(g *core.Graph, res *Result) error {
	vertices := g.Vertices()
	n := len(vertices)
	res.Scores = make(map[string]float64, n)

	if n == 1 {
		res.Scores[vertices[0]] = 0
		return nil
	}

	norm := 1 / float64(n-1)
	for _, v := range vertices {
		d, err := g.WeightedDegree(v)
		if err != nil {
			return fmt.Errorf("centrality: %s of %q: %w", res.Measure, v, err)
		}
		res.Scores[v] = d * norm
	}

	return nil
}
