// Package core: type declarations, sentinel errors, and the Graph
// constructor. Method implementations live in methods_*.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative edge weight; all analyzers
	// assume non-negative weights, so the constructor rejects them.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: non-zero weight on unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted while loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted while
	// multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a connection between two vertices.
//
// For undirected graphs From/To record insertion order only; the edge is
// traversable both ways and mirrored in the adjacency index.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the non-negative cost of the edge.
	// It is 0 on unweighted graphs; EdgeWeight reports 1 there.
	Weight float64

	// Directed mirrors the Graph's directedness at insertion time.
	Directed bool
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected, the default).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the core in-memory graph.
//
// Adjacency is a nested index adjacency[from][to] = set of edge IDs,
// giving O(1) existence checks and O(1) edge removal; undirected edges
// appear under both orientations.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	weighted   bool
	allowLoops bool
	allowMulti bool

	nextEdgeID uint64

	vertices  map[string]struct{}
	edges     map[string]*Edge
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
// Defaults: undirected, unweighted, no loops, no multi-edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph carries meaningful edge weights.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }
