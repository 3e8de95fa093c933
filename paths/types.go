// Package paths: sentinel errors and functional options shared by the
// BFS and Dijkstra entry points.
package paths

import (
	"context"
	"errors"
)

// Sentinel errors for shortest-path computation.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("paths: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is absent.
	ErrSourceNotFound = errors.New("paths: source vertex not found")

	// ErrWeightedGraph is returned when BFS is run on a weighted graph;
	// hop counts would silently ignore the weights.
	ErrWeightedGraph = errors.New("paths: BFS requires an unweighted graph")

	// ErrUnweightedGraph is returned when Dijkstra is run on an
	// unweighted graph; BFS is the right tool there.
	ErrUnweightedGraph = errors.New("paths: Dijkstra requires a weighted graph")

	// ErrNegativeWeight is returned when a negative edge weight is
	// observed. core rejects negative weights at insertion, so this
	// guards against graphs mutated through other means.
	ErrNegativeWeight = errors.New("paths: negative edge weight encountered")
)

// Option configures a shortest-path run via functional arguments.
type Option func(*Options)

// Options holds parameters for a single shortest-path computation.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued vertex.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
