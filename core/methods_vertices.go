package core

import "sort"

// AddVertex inserts a vertex with the given ID.
// Returns ErrEmptyVertexID if id is empty; adding an existing vertex is a
// no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}
	g.ensureAdj(id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex and every incident edge.
// Surviving vertex IDs are untouched (no renumbering).
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(deg(v)) with the nested adjacency index.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Collect every edge touching id before mutating the index. The
	// adjacency row for id lists all incident edge IDs (undirected edges
	// are mirrored there); directed in-edges are indexed under the
	// opposite row, so those come from the edge catalog.
	var incident []string
	for _, toSet := range g.adjacency[id] {
		for eid := range toSet {
			incident = append(incident, eid)
		}
	}
	if g.directed {
		for eid, e := range g.edges {
			if e.To == id && e.From != id {
				incident = append(incident, eid)
			}
		}
	}
	for _, eid := range incident {
		g.dropEdgeLocked(eid)
	}

	delete(g.vertices, id)
	delete(g.adjacency, id)

	return nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
