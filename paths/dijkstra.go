package paths

import (
	"container/heap"
	"fmt"

	"github.com/strevik/grava/core"
)

// DijkstraFrom computes weighted shortest-path distances from src over a
// graph with non-negative weights. Unreachable vertices are absent from
// the result.
//
// Uses the lazy-decrease-key strategy: improved distances push duplicate
// heap entries, and stale entries are skipped when popped.
// Complexity: O((V + E) log V) time, O(V + E) space.
func DijkstraFrom(g *core.Graph, src string, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(src) {
		return nil, ErrSourceNotFound
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dist := map[string]float64{src: 0}
	done := make(map[string]bool)

	pq := make(nodePQ, 0, g.VertexCount())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	for pq.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if done[u] {
			continue // stale lazy entry
		}
		done[u] = true

		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("paths: neighbors of %q: %w", u, err)
		}
		for _, e := range edges {
			v := e.To
			if v == u {
				v = e.From
			}
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %s-%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
			cand := dist[u] + e.Weight
			cur, seen := dist[v]
			if seen && cand >= cur {
				continue
			}
			dist[v] = cand
			heap.Push(&pq, &nodeItem{id: v, dist: cand})
		}
	}

	return dist, nil
}

// nodeItem is a heap entry pairing a vertex with its tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending distance.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
