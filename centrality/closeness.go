package centrality

import (
	"fmt"

	"github.com/strevik/grava/core"
	"github.com/strevik/grava/paths"
)

// closenessScores fills res with Wasserman–Faust closeness:
//
//	C(v) = ((r-1)/(n-1)) · ((r-1)/Σ d(v,u))
//
// where r is the number of vertices reachable from v (v included) and
// the sum runs over the reachable set. Unreachable vertices contribute
// nothing, so the value stays meaningful on disconnected graphs and lies
// in [0,1] for simple unweighted graphs. Vertices reaching nobody
// score 0.
// Complexity: one SSSP pass per vertex.
func closenessScores(g *core.Graph, o *Options, res *Result) error {
	vertices := g.Vertices()
	n := len(vertices)
	res.Scores = make(map[string]float64, n)

	for _, v := range vertices {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		dist, err := paths.FromSource(g, v, paths.WithContext(o.Ctx))
		if err != nil {
			return fmt.Errorf("centrality: %s from %q: %w", res.Measure, v, err)
		}

		reach := len(dist) // includes v itself at distance 0
		var sum float64
		for _, d := range dist {
			sum += d
		}
		if reach < 2 || sum == 0 || n < 2 {
			res.Scores[v] = 0
			continue
		}
		r1 := float64(reach - 1)
		res.Scores[v] = (r1 / float64(n-1)) * (r1 / sum)
	}

	return nil
}
