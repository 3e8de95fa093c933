package connectivity

import (
	"sort"

	"github.com/strevik/grava/core"
)

// Components partitions the vertex set into connected components via BFS
// over the undirected view of the graph (directed edges are traversable
// both ways, i.e. weak components).
//
// Ordering: descending by size; equal sizes by smallest member ID;
// members of each component ascending.
// Complexity: O(V + E + V log V).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	adj := undirectedAdjacency(g)
	vertices := g.Vertices()

	var comps [][]string
	seen := make(map[string]bool, len(vertices))
	for _, root := range vertices {
		if seen[root] {
			continue
		}
		seen[root] = true
		comp := []string{root}
		queue := []string{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adj[u] {
				if seen[v] {
					continue
				}
				seen[v] = true
				comp = append(comp, v)
				queue = append(queue, v)
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	// Descending size; equal sizes by smallest member (members are
	// sorted, so that is comp[0]).
	sort.Slice(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}
		return comps[i][0] < comps[j][0]
	})

	return comps, nil
}

// undirectedAdjacency builds a neighbor index ignoring edge direction,
// with sorted, de-duplicated neighbor lists.
func undirectedAdjacency(g *core.Graph) map[string][]string {
	sets := make(map[string]map[string]struct{}, g.VertexCount())
	for _, id := range g.Vertices() {
		sets[id] = make(map[string]struct{})
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue // self-loops never connect anything new
		}
		sets[e.From][e.To] = struct{}{}
		sets[e.To][e.From] = struct{}{}
	}

	adj := make(map[string][]string, len(sets))
	for id, set := range sets {
		nbrs := make([]string, 0, len(set))
		for v := range set {
			nbrs = append(nbrs, v)
		}
		sort.Strings(nbrs)
		adj[id] = nbrs
	}

	return adj
}
