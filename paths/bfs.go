package paths

import (
	"fmt"

	"github.com/strevik/grava/core"
)

// FromSource returns shortest-path distances from src to every reachable
// vertex, dispatching to BFS or Dijkstra on the graph's weight mode.
func FromSource(g *core.Graph, src string, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Weighted() {
		return DijkstraFrom(g, src, opts...)
	}

	return BFSFrom(g, src, opts...)
}

// BFSFrom runs breadth-first search on an unweighted graph, returning
// hop-count distances from src. Unreachable vertices are absent.
// Complexity: O(V + E).
func BFSFrom(g *core.Graph, src string, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}
	if !g.HasVertex(src) {
		return nil, ErrSourceNotFound
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dist := map[string]float64{src: 0}
	queue := []string{src}
	for len(queue) > 0 {
		// Cancellation check once per dequeued vertex.
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		u := queue[0]
		queue = queue[1:]

		neighbors, err := g.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("paths: neighbors of %q: %w", u, err)
		}
		for _, v := range neighbors {
			if _, seen := dist[v]; seen {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist, nil
}
