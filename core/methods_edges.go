package core

import (
	"sort"
	"strconv"
)

const edgeIDPrefix = "e"

// AddEdge creates an edge from 'from' to 'to' with the given weight and
// returns its unique edge ID. Missing endpoints are added automatically.
//
// Returns ErrEmptyVertexID, ErrNegativeWeight, ErrBadWeight,
// ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 {
		return "", ErrNegativeWeight
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Ensure both endpoints exist (idempotent).
	if _, ok := g.vertices[from]; !ok {
		g.vertices[from] = struct{}{}
		g.ensureAdj(from)
	}
	if _, ok := g.vertices[to]; !ok {
		g.vertices[to] = struct{}{}
		g.ensureAdj(to)
	}

	if !g.allowMulti {
		if set, ok := g.adjacency[from][to]; ok && len(set) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	g.nextEdgeID++
	eid := edgeIDPrefix + strconv.FormatUint(g.nextEdgeID, 10)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e

	g.ensureAdjPair(from, to)
	g.adjacency[from][to][eid] = struct{}{}
	if !e.Directed && from != to {
		g.ensureAdjPair(to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID (and its mirror entry).
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[eid]; !ok {
		return ErrEdgeNotFound
	}
	g.dropEdgeLocked(eid)

	return nil
}

// RemoveEdgeBetween deletes every edge between from and to (both
// orientations on undirected graphs).
// Returns ErrEdgeNotFound when no edge connects the pair.
// Complexity: O(k) for k parallel edges.
func (g *Graph) RemoveEdgeBetween(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	set, ok := g.adjacency[from][to]
	if !ok || len(set) == 0 {
		return ErrEdgeNotFound
	}
	for eid := range set {
		g.dropEdgeLocked(eid)
	}

	return nil
}

// HasEdge reports whether at least one edge runs from 'from' to 'to'.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adjacency[from][to]

	return ok && len(set) > 0
}

// EdgeWeight returns the weight of an edge from 'from' to 'to', or 1 on
// unweighted graphs. With parallel edges, the minimum weight is returned
// (the one every shortest-path computation would pick).
// Returns ErrEdgeNotFound when no edge connects the pair.
// Complexity: O(k) for k parallel edges.
func (g *Graph) EdgeWeight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adjacency[from][to]
	if !ok || len(set) == 0 {
		return 0, ErrEdgeNotFound
	}
	if !g.weighted {
		return 1, nil
	}
	best := -1.0
	for eid := range set {
		if w := g.edges[eid].Weight; best < 0 || w < best {
			best = w
		}
	}

	return best, nil
}

// Edges returns all edges sorted by ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// ensureAdj makes adjacency[id] non-nil.
func (g *Graph) ensureAdj(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjPair makes adjacency[from][to] non-nil.
func (g *Graph) ensureAdjPair(from, to string) {
	g.ensureAdj(from)
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// dropEdgeLocked removes eid from the catalog and both adjacency
// orientations. Caller holds the write lock.
func (g *Graph) dropEdgeLocked(eid string) {
	e, ok := g.edges[eid]
	if !ok {
		return
	}
	delete(g.edges, eid)
	if set := g.adjacency[e.From][e.To]; set != nil {
		delete(set, eid)
		if len(set) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if set := g.adjacency[e.To][e.From]; set != nil {
			delete(set, eid)
			if len(set) == 0 {
				delete(g.adjacency[e.To], e.From)
			}
		}
	}
}
