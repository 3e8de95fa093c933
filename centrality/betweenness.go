package centrality

import (
	"container/heap"

	"github.com/strevik/grava/core"
)

// pred records one shortest-path predecessor and how many parallel
// minimal edges carry the relation.
type pred struct {
	v    string
	mult float64
}

// sssp is the per-source shortest-path summary Brandes accumulation
// consumes: vertices in non-decreasing distance order, the predecessor
// lists along shortest paths, and the shortest-path counts.
type sssp struct {
	order []string
	preds map[string][]pred
	sigma map[string]float64
}

// betweennessScores fills res with Brandes betweenness. The same
// accumulation serves both the vertex and the edge measure; res.Measure
// picks which side collects the credit.
//
// Shortest paths are counted by hops on unweighted graphs and by weight
// otherwise; parallel minimal edges multiply the path count. Scores are
// normalized by the number of ordered vertex pairs excluding the
// endpoint(s): (n-1)(n-2) for vertices, n(n-1) for edges.
// Complexity: O(V·E) unweighted, O(V·(E + V log V)) weighted.
func betweennessScores(g *core.Graph, o *Options, res *Result) error {
	vertices := g.Vertices()
	n := len(vertices)
	arcs, err := buildArcs(g)
	if err != nil {
		return err
	}

	edgeMode := res.Measure.EdgeMeasure()
	weighted := g.Weighted()

	nodeScore := make(map[string]float64, n)
	edgeScore := make(map[string]float64)
	if edgeMode {
		// Every present edge gets a score, including edges on no
		// shortest path at all.
		for _, e := range g.Edges() {
			edgeScore[EdgeKey(e.From, e.To)] = 0
		}
	}

	for _, s := range vertices {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		var sp sssp
		if weighted {
			sp = dijkstraDAG(s, arcs)
		} else {
			sp = bfsDAG(s, arcs)
		}

		// Reverse accumulation of pair dependencies.
		delta := make(map[string]float64, len(sp.order))
		for i := len(sp.order) - 1; i >= 0; i-- {
			w := sp.order[i]
			coeff := (1 + delta[w]) / sp.sigma[w]
			for _, p := range sp.preds[w] {
				c := sp.sigma[p.v] * p.mult * coeff
				delta[p.v] += c
				if edgeMode {
					edgeScore[EdgeKey(p.v, w)] += c
				}
			}
			if w != s {
				nodeScore[w] += delta[w]
			}
		}
	}

	if edgeMode {
		res.Scores = edgeScore
		if n > 1 {
			norm := 1 / (float64(n) * float64(n-1))
			for k := range res.Scores {
				res.Scores[k] *= norm
			}
		}
		return nil
	}

	res.Scores = make(map[string]float64, n)
	if n > 2 {
		norm := 1 / (float64(n-1) * float64(n-2))
		for _, v := range vertices {
			res.Scores[v] = nodeScore[v] * norm
		}
	} else {
		for _, v := range vertices {
			res.Scores[v] = 0
		}
	}

	return nil
}

// bfsDAG builds the shortest-path DAG from s by hop count.
func bfsDAG(s string, arcs map[string][]arc) sssp {
	sp := sssp{
		preds: make(map[string][]pred),
		sigma: map[string]float64{s: 1},
	}
	dist := map[string]int{s: 0}
	queue := []string{s}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		sp.order = append(sp.order, u)

		for _, ar := range arcs[u] {
			v := ar.to
			d, seen := dist[v]
			switch {
			case !seen:
				dist[v] = dist[u] + 1
				queue = append(queue, v)
				sp.sigma[v] = sp.sigma[u] * ar.mult
				sp.preds[v] = append(sp.preds[v], pred{v: u, mult: ar.mult})
			case d == dist[u]+1:
				sp.sigma[v] += sp.sigma[u] * ar.mult
				sp.preds[v] = append(sp.preds[v], pred{v: u, mult: ar.mult})
			}
		}
	}

	return sp
}

// dijkstraDAG builds the shortest-path DAG from s by total weight,
// using a lazy-decrease-key binary heap. Equal-distance predecessors
// are compared with exact float equality: ties that matter here come
// from identical sums of the same weights.
func dijkstraDAG(s string, arcs map[string][]arc) sssp {
	sp := sssp{
		preds: make(map[string][]pred),
		sigma: map[string]float64{s: 1},
	}
	dist := map[string]float64{s: 0}
	settled := make(map[string]bool)

	pq := &spQueue{{v: s, d: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(spItem)
		u := item.v
		if settled[u] || item.d > dist[u] {
			continue // stale entry
		}
		settled[u] = true
		sp.order = append(sp.order, u)

		for _, ar := range arcs[u] {
			v := ar.to
			nd := dist[u] + ar.w
			cur, seen := dist[v]
			switch {
			case !seen || nd < cur:
				dist[v] = nd
				sp.sigma[v] = sp.sigma[u] * ar.mult
				sp.preds[v] = []pred{{v: u, mult: ar.mult}}
				heap.Push(pq, spItem{v: v, d: nd})
			case nd == cur && !settled[v]:
				sp.sigma[v] += sp.sigma[u] * ar.mult
				sp.preds[v] = append(sp.preds[v], pred{v: u, mult: ar.mult})
			}
		}
	}

	return sp
}

// spItem / spQueue implement container/heap for the weighted DAG pass.
type spItem struct {
	v string
	d float64
}

type spQueue []spItem

func (q spQueue) Len() int            { return len(q) }
func (q spQueue) Less(i, j int) bool  { return q[i].d < q[j].d }
func (q spQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *spQueue) Push(x interface{}) { *q = append(*q, x.(spItem)) }
func (q *spQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
