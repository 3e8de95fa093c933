// Package connectivity: Report type, sentinel errors and options.
package connectivity

import (
	"context"
	"errors"
)

// ErrNilGraph is returned if a nil graph pointer is passed.
var ErrNilGraph = errors.New("connectivity: graph is nil")

// Report is a snapshot of the connectivity of one graph state.
//
// Invariants: Largest ≥ SecondLargest ≥ 0 and Largest ≤ vertex count;
// Components is a set partition of the current vertex set.
type Report struct {
	// Components holds the connected components, descending by size,
	// equal sizes ordered by smallest member; members sorted ascending.
	Components [][]string

	// Largest is the size of the largest connected component (LCC).
	Largest int

	// SecondLargest is the size of the second-largest component (SLCC),
	// 0 when fewer than two components exist.
	SecondLargest int

	// ArticulationPoints lists cut vertices in ascending order.
	ArticulationPoints []string

	// Efficiency is the global efficiency, 0 for graphs with fewer than
	// two vertices. Not populated when WithoutEfficiency was set.
	Efficiency float64
}

// Option configures Analyze via functional arguments.
type Option func(*Options)

// Options holds parameters for one Analyze pass.
type Options struct {
	// Ctx allows cancellation of the all-pairs efficiency pass.
	Ctx context.Context

	// SkipEfficiency drops the all-pairs pass, the dominant cost of a
	// Report. Trial removals in the brute-force attack only need LCC.
	SkipEfficiency bool
}

// DefaultOptions returns Options with a background context and the full
// Report populated.
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

// WithoutEfficiency skips the global-efficiency computation.
func WithoutEfficiency() Option {
	return func(o *Options) { o.SkipEfficiency = true }
}
