package core

// CloneEmpty returns a new Graph with identical configuration and
// vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	clone := NewGraph(opts...)
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.ensureAdj(id)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges
// and adjacency. Edge IDs are preserved, so trial removals on a clone can
// be replayed against the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	clone.nextEdgeID = g.nextEdgeID
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		clone.edges[eid] = ne
		clone.ensureAdjPair(e.From, e.To)
		clone.adjacency[e.From][e.To][eid] = struct{}{}
		if !e.Directed && e.From != e.To {
			clone.ensureAdjPair(e.To, e.From)
			clone.adjacency[e.To][e.From][eid] = struct{}{}
		}
	}

	return clone
}
