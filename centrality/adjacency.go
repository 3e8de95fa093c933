package centrality

import (
	"sort"

	"github.com/strevik/grava/core"
)

// arc is one traversable connection in the flattened adjacency index.
// Parallel edges between the same endpoints collapse into a single arc:
// weight is the minimum parallel weight (the one any shortest path
// takes) and mult counts how many edges achieve it, so path counting
// credits every parallel shortest edge.
type arc struct {
	to   string
	w    float64
	mult float64
}

// buildArcs flattens the graph into per-vertex sorted arc lists.
// Directed edges appear under their source only; undirected edges under
// both endpoints. Unweighted graphs get w=1 per edge.
// Complexity: O(V + E log E).
func buildArcs(g *core.Graph) (map[string][]arc, error) {
	weighted := g.Weighted()
	type slot struct {
		w    float64
		mult float64
	}
	index := make(map[string]map[string]slot, g.VertexCount())
	for _, v := range g.Vertices() {
		index[v] = make(map[string]slot)
	}

	add := func(from, to string, w float64) {
		s, ok := index[from][to]
		switch {
		case !ok || w < s.w:
			index[from][to] = slot{w: w, mult: 1}
		case w == s.w:
			s.mult++
			index[from][to] = s
		}
	}

	for _, e := range g.Edges() {
		w := e.Weight
		if !weighted {
			w = 1
		}
		add(e.From, e.To, w)
		if !e.Directed && e.From != e.To {
			add(e.To, e.From, w)
		}
	}

	arcs := make(map[string][]arc, len(index))
	for v, slots := range index {
		list := make([]arc, 0, len(slots))
		for to, s := range slots {
			list = append(list, arc{to: to, w: s.w, mult: s.mult})
		}
		sort.Slice(list, func(i, j int) bool { return list[i].to < list[j].to })
		arcs[v] = list
	}

	return arcs, nil
}
