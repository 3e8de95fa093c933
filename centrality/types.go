// Package centrality: measure enum, Result type, options and errors.
package centrality

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for centrality computation.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrEmptyGraph is returned for a graph with zero vertices.
	ErrEmptyGraph = errors.New("centrality: graph has no vertices")

	// ErrUnknownMeasure is returned for a Measure outside the enum.
	ErrUnknownMeasure = errors.New("centrality: unknown measure")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Measure selects one centrality definition. The set is closed; Compute
// dispatches on it in a single switch.
type Measure int

const (
	// Degree scores each vertex by its (weighted) degree / (n-1).
	Degree Measure = iota

	// Closeness scores each vertex by Wasserman–Faust closeness.
	Closeness

	// Eigenvector scores vertices by the leading eigenvector of the
	// adjacency (or weight) matrix, per connected component.
	Eigenvector

	// PageRank scores vertices by the damped random-walk stationary
	// distribution.
	PageRank

	// Betweenness scores vertices by the fraction of shortest paths
	// passing through them.
	Betweenness

	// EdgeBetweenness scores edges by the fraction of shortest paths
	// traversing them; Result keys are canonical EdgeKeys.
	EdgeBetweenness
)

// String returns the snake_case name used in error context.
func (m Measure) String() string {
	switch m {
	case Degree:
		return "degree"
	case Closeness:
		return "closeness"
	case Eigenvector:
		return "eigenvector"
	case PageRank:
		return "pagerank"
	case Betweenness:
		return "betweenness"
	case EdgeBetweenness:
		return "edge_betweenness"
	default:
		return fmt.Sprintf("measure(%d)", int(m))
	}
}

// EdgeMeasure reports whether the measure scores edges rather than
// vertices.
func (m Measure) EdgeMeasure() bool { return m == EdgeBetweenness }

// edgeKeySep joins the two endpoint IDs of a canonical edge key.
// Vertex IDs containing the separator are the caller's responsibility.
const edgeKeySep = "|"

// EdgeKey returns the order-independent key identifying the edge between
// u and v, as used by EdgeBetweenness scores.
func EdgeKey(u, v string) string {
	if u > v {
		u, v = v, u
	}

	return u + edgeKeySep + v
}

// SplitEdgeKey returns the two endpoints of a canonical edge key.
func SplitEdgeKey(key string) (string, string) {
	u, v, _ := strings.Cut(key, edgeKeySep)

	return u, v
}

// Result holds the outcome of one Compute call.
type Result struct {
	// Measure is the measure that produced the scores.
	Measure Measure

	// Scores maps vertex ID (or canonical EdgeKey) to score, covering
	// exactly the elements present in the graph at computation time.
	Scores map[string]float64

	// Converged is false only when an iterative measure exhausted
	// MaxIterations before meeting Tolerance; the scores are then the
	// best available approximation.
	Converged bool

	// Iterations is the number of iterations an iterative measure used
	// (the maximum over components for Eigenvector); 0 for direct
	// measures.
	Iterations int
}

// Option configures Compute via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Compute runs.
type Option func(*Options)

// Options holds tuning parameters for the iterative measures.
type Options struct {
	// Ctx allows cancellation; checked once per source (path-based
	// measures) or per iteration (spectral measures).
	Ctx context.Context

	// Damping is the PageRank damping factor, in (0, 1).
	Damping float64

	// Tolerance is the convergence threshold for iterative measures.
	Tolerance float64

	// MaxIterations caps iterative measures; hitting the cap yields
	// Converged=false, not an error.
	MaxIterations int

	// err records the first invalid option for surfacing at Compute.
	err error
}

// Defaults for the iterative measures.
const (
	// DefaultDamping is the conventional PageRank damping factor.
	DefaultDamping = 0.85

	// DefaultTolerance is the convergence threshold between successive
	// score vectors.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps power iteration and PageRank sweeps.
	DefaultMaxIterations = 100
)

// DefaultOptions returns Options with the package defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Damping:       DefaultDamping,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDamping sets the PageRank damping factor; must lie in (0, 1).
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d <= 0 || d >= 1 {
			o.err = fmt.Errorf("%w: damping %g outside (0,1)", ErrOptionViolation, d)
			return
		}
		o.Damping = d
	}
}

// WithTolerance sets the convergence threshold; must be positive.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance %g must be positive", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations caps the iterative measures; must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations %d must be positive", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}
