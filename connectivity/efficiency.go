package connectivity

import (
	"fmt"

	"github.com/strevik/grava/core"
	"github.com/strevik/grava/paths"
)

// GlobalEfficiency returns the mean of inverse shortest-path distances
// over all ordered vertex pairs u ≠ v:
//
//	E = 1/(n(n-1)) · Σ 1/d(u,v)
//
// with 1/d(u,v) = 0 for disconnected pairs. Graphs with fewer than two
// vertices have efficiency 0. Weighted graphs use weighted distances.
//
// Directed graphs use directed distances: the (u,v) and (v,u) terms can
// differ, and a pair unreachable in one direction contributes 0 for that
// ordering. Components, by contrast, always takes the undirected view.
// Complexity: O(V·(V+E)) unweighted, O(V·(V+E) log V) weighted.
func GlobalEfficiency(g *core.Graph, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vertices := g.Vertices()
	n := len(vertices)
	if n < 2 {
		return 0, nil
	}

	var sum float64
	for _, src := range vertices {
		dist, err := paths.FromSource(g, src, paths.WithContext(o.Ctx))
		if err != nil {
			return 0, fmt.Errorf("connectivity: efficiency from %q: %w", src, err)
		}
		for v, d := range dist {
			if v == src || d == 0 {
				continue
			}
			sum += 1 / d
		}
	}

	return sum / float64(n*(n-1)), nil
}
