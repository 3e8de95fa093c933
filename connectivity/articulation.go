package connectivity

import (
	"sort"

	"github.com/strevik/grava/core"
)

// ArticulationPoints returns, in ascending order, every vertex whose
// removal increases the number of connected components.
//
// Classic low-link DFS with an explicit stack (no recursion, so arbitrary
// graph depth is safe). A non-root vertex v is an articulation point iff
// some DFS child c has low[c] ≥ disc[v]; the root iff it has at least two
// DFS-tree children.
// Complexity: O(V + E).
func ArticulationPoints(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	adj := undirectedAdjacency(g)
	vertices := g.Vertices()

	// With multi-edges, a parallel edge back to the DFS parent is a real
	// back edge and must not be skipped as "the" tree edge.
	parallel := map[[2]string]bool{}
	if g.Multigraph() {
		count := map[[2]string]int{}
		for _, e := range g.Edges() {
			if e.From == e.To {
				continue
			}
			k := pairKey(e.From, e.To)
			count[k]++
			if count[k] > 1 {
				parallel[k] = true
			}
		}
	}

	disc := make(map[string]int, len(vertices))
	low := make(map[string]int, len(vertices))
	isAP := make(map[string]bool)
	timer := 0

	type frame struct {
		v          string
		parent     string
		idx        int  // next neighbor index to examine
		skippedPar bool // tree edge back to parent consumed once
	}

	for _, root := range vertices {
		if _, visited := disc[root]; visited {
			continue
		}
		disc[root] = timer
		low[root] = timer
		timer++
		rootChildren := 0

		stack := []frame{{v: root}}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]

			if f.idx < len(adj[f.v]) {
				w := adj[f.v][f.idx]
				f.idx++

				if w == f.parent && !f.skippedPar && !parallel[pairKey(f.v, w)] {
					f.skippedPar = true
					continue
				}
				if dw, visited := disc[w]; visited {
					if dw < low[f.v] {
						low[f.v] = dw // back edge
					}
					continue
				}
				disc[w] = timer
				low[w] = timer
				timer++
				if f.v == root {
					rootChildren++
				}
				stack = append(stack, frame{v: w, parent: f.v})
				continue
			}

			// All neighbors examined: pop and propagate low-link.
			child := *f
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				continue
			}
			p := &stack[len(stack)-1]
			if low[child.v] < low[p.v] {
				low[p.v] = low[child.v]
			}
			if p.v != root && low[child.v] >= disc[p.v] {
				isAP[p.v] = true
			}
		}

		if rootChildren >= 2 {
			isAP[root] = true
		}
	}

	out := make([]string, 0, len(isAP))
	for v := range isAP {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// pairKey returns the order-independent key for an unordered vertex pair.
func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}

	return [2]string{a, b}
}
