package core

import "sort"

// Neighbors returns all edges traversable from vertex id: outgoing edges
// on directed graphs, all incident edges on undirected graphs.
// The result is sorted by Edge.ID for reproducible iteration.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d), d = number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the IDs of all vertices adjacent to id, in
// ascending order.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else {
			seen[e.From] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of edges traversable from id
// (self-loops count once).
// Complexity: O(d).
func (g *Graph) Degree(id string) (int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	return len(edges), nil
}

// WeightedDegree returns the sum of weights of the edges traversable from
// id; on unweighted graphs every edge contributes 1, so it equals Degree.
// Complexity: O(d).
func (g *Graph) WeightedDegree(id string) (float64, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}
	if !g.weighted {
		return float64(len(edges)), nil
	}
	var sum float64
	for _, e := range edges {
		sum += e.Weight
	}

	return sum, nil
}
