package centrality

import (
	"gonum.org/v1/gonum/floats"

	"github.com/strevik/grava/core"
)

// pagerankScores fills res with the damped PageRank of every vertex.
//
// Each iteration distributes rank along outgoing arcs in proportion to
// arc weight; dangling vertices (no outgoing arcs) spread their rank
// uniformly over the whole graph. Convergence is measured as the L1
// distance between consecutive rank vectors; exhausting MaxIterations
// flips res.Converged to false.
// Complexity: O(iterations · (V + E)).
func pagerankScores(g *core.Graph, o *Options, res *Result) error {
	vertices := g.Vertices()
	n := len(vertices)
	idx := make(map[string]int, n)
	for i, v := range vertices {
		idx[v] = i
	}

	arcs, err := buildArcs(g)
	if err != nil {
		return err
	}

	// outw[i] is the total weight·multiplicity leaving vertex i;
	// zero marks a dangling vertex.
	outw := make([]float64, n)
	for i, v := range vertices {
		for _, ar := range arcs[v] {
			outw[i] += ar.w * ar.mult
		}
	}

	x := make([]float64, n)
	next := make([]float64, n)
	for i := range x {
		x[i] = 1 / float64(n)
	}

	d := o.Damping
	base := (1 - d) / float64(n)

	converged := false
	for res.Iterations < o.MaxIterations {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		var dangling float64
		for i := range next {
			next[i] = 0
			if outw[i] == 0 {
				dangling += x[i]
			}
		}
		share := d * dangling / float64(n)
		for i := range next {
			next[i] = base + share
		}
		for i, v := range vertices {
			if outw[i] == 0 {
				continue
			}
			scale := d * x[i] / outw[i]
			for _, ar := range arcs[v] {
				next[idx[ar.to]] += scale * ar.w * ar.mult
			}
		}

		delta := floats.Distance(x, next, 1)
		x, next = next, x
		res.Iterations++
		if delta < o.Tolerance {
			converged = true
			break
		}
	}
	if !converged {
		res.Converged = false
	}

	res.Scores = make(map[string]float64, n)
	for i, v := range vertices {
		res.Scores[v] = x[i]
	}

	return nil
}
