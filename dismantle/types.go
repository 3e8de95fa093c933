package dismantle

import (
	"context"
	"errors"
	"fmt"

	"github.com/strevik/grava/centrality"
	"github.com/strevik/grava/connectivity"
)

// Sentinel errors for attack configuration and execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("dismantle: graph is nil")

	// ErrEmptyGraph is returned when the attacked graph has no vertices.
	ErrEmptyGraph = errors.New("dismantle: graph has no vertices")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dismantle: invalid option supplied")

	// ErrUnitMismatch is returned when the strategy cannot rank the
	// configured target unit.
	ErrUnitMismatch = errors.New("dismantle: strategy cannot rank target unit")
)

// Strategy selects how each step's victim is chosen.
type Strategy int

const (
	// Degree removes the highest-degree target each step.
	Degree Strategy = iota

	// Closeness removes the target with the highest closeness.
	Closeness

	// Eigenvector removes the target with the highest eigenvector score.
	Eigenvector

	// PageRank removes the target with the highest PageRank.
	PageRank

	// Betweenness removes the vertex with the highest betweenness.
	Betweenness

	// EdgeBetweenness removes the edge with the highest betweenness;
	// requires TargetUnit Edges.
	EdgeBetweenness

	// Articulation removes the smallest-ID articulation point, falling
	// back to the highest-degree vertex when no articulation point
	// exists.
	Articulation

	// ArticulationBruteForce trial-removes every current articulation
	// point on a clone and applies the candidate minimizing the
	// surviving largest component.
	ArticulationBruteForce

	// Random removes a uniformly random remaining target each step.
	Random
)

// String returns the snake_case strategy name used in error context.
func (s Strategy) String() string {
	switch s {
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
	case Articulation:
		return "articulation"
	case ArticulationBruteForce:
		return "articulation_brute_force"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// measure maps a centrality-backed strategy onto its measure; ok is false
// for the articulation and random strategies.
func (s Strategy) measure() (centrality.Measure, bool) {
	switch s {
	case Degree:
		return centrality.Degree, true
	case Closeness:
		return centrality.Closeness, true
	case Eigenvector:
		return centrality.Eigenvector, true
	case PageRank:
		return centrality.PageRank, true
	case Betweenness:
		return centrality.Betweenness, true
	case EdgeBetweenness:
		return centrality.EdgeBetweenness, true
	default:
		return 0, false
	}
}

// TargetUnit selects whether the attack removes vertices or edges.
type TargetUnit int

const (
	// Nodes removes one vertex (with its incident edges) per step.
	Nodes TargetUnit = iota

	// Edges removes one edge per step; valid only with the
	// EdgeBetweenness and Random strategies.
	Edges
)

// String returns the unit name.
func (u TargetUnit) String() string {
	if u == Edges {
		return "edges"
	}

	return "nodes"
}

// RecomputePolicy controls when the ranking is refreshed.
type RecomputePolicy int

const (
	// Iterative recomputes the ranking after every removal.
	Iterative RecomputePolicy = iota

	// Static ranks once on the initial graph and removes in that fixed
	// order, skipping targets that vanished as a side effect of earlier
	// removals. Valid only for centrality-backed strategies.
	Static
)

// State is the terminal condition of a run.
type State int

const (
	// Initialized: the run has not started.
	Initialized State = iota

	// Running: the removal loop is in progress.
	Running

	// Completed: the target set was exhausted.
	Completed

	// Stopped: a stop condition or cancellation ended the run early.
	Stopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Step is one removal record. Score is the victim's ranking value at
// removal time: the centrality score for measure strategies, 1 for a
// plain articulation hit (vertex degree on the fallback path), the
// minimized trial LCC for the brute-force attack, and 0 for Random.
type Step struct {
	// Index is the zero-based position in the trajectory.
	Index int

	// Removed is the vertex ID or canonical edge key taken out.
	Removed string

	// Score is the ranking value described above.
	Score float64

	// Report is the connectivity analysis of the graph after this
	// removal.
	Report *connectivity.Report
}

// Trajectory is the append-only outcome of one run.
type Trajectory struct {
	// Steps holds one record per removal, in order.
	Steps []Step

	// State is Completed or Stopped once Run returns.
	State State

	// Converged is false if any iterative centrality computation during
	// the run exhausted its iteration cap; the scores used were then
	// best-effort approximations.
	Converged bool
}

// Option configures Run via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Run starts.
type Option func(*Options)

// Options holds the full attack configuration.
type Options struct {
	// Ctx allows cancellation, checked once per step before ranking.
	Ctx context.Context

	// Strategy picks the victim-selection rule.
	Strategy Strategy

	// Unit picks vertices or edges as removal targets.
	Unit TargetUnit

	// Policy picks iterative re-ranking or a fixed static order.
	Policy RecomputePolicy

	// MaxRemovals stops the run after this many steps; 0 = unlimited.
	MaxRemovals int

	// LCCThreshold stops the run once the largest component is smaller
	// than this; 0 = disabled.
	LCCThreshold int

	// Seed drives the Random strategy's generator.
	Seed int64

	// Damping, Tolerance and MaxIterations pass through to the
	// centrality engine for the iterative measures.
	Damping       float64
	Tolerance     float64
	MaxIterations int

	// err records the first invalid option for surfacing at Run.
	err error
}

// DefaultSeed is the Random strategy's generator seed when none is set.
const DefaultSeed int64 = 1

// DefaultOptions returns an iterative highest-degree node attack with no
// stop condition.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Strategy:      Degree,
		Unit:          Nodes,
		Policy:        Iterative,
		Seed:          DefaultSeed,
		Damping:       centrality.DefaultDamping,
		Tolerance:     centrality.DefaultTolerance,
		MaxIterations: centrality.DefaultMaxIterations,
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

// WithStrategy selects the victim-selection rule.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s < Degree || s > Random {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithTargetUnit selects vertices or edges as removal targets.
func WithTargetUnit(u TargetUnit) Option {
	return func(o *Options) {
		if u != Nodes && u != Edges {
			o.err = fmt.Errorf("%w: unknown target unit %d", ErrOptionViolation, int(u))
			return
		}
		o.Unit = u
	}
}

// WithRecomputePolicy selects iterative or static ranking.
func WithRecomputePolicy(p RecomputePolicy) Option {
	return func(o *Options) {
		if p != Iterative && p != Static {
			o.err = fmt.Errorf("%w: unknown recompute policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Policy = p
	}
}

// WithMaxRemovals stops the run after n steps; n must be positive.
func WithMaxRemovals(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max removals %d must be positive", ErrOptionViolation, n)
			return
		}
		o.MaxRemovals = n
	}
}

// WithLCCThreshold stops the run once the largest component is smaller
// than k; k must be positive.
func WithLCCThreshold(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: LCC threshold %d must be positive", ErrOptionViolation, k)
			return
		}
		o.LCCThreshold = k
	}
}

// WithSeed fixes the Random strategy's generator seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithDamping passes the PageRank damping factor through; must lie
// in (0, 1).
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d <= 0 || d >= 1 {
			o.err = fmt.Errorf("%w: damping %g outside (0,1)", ErrOptionViolation, d)
			return
		}
		o.Damping = d
	}
}

// WithTolerance passes the convergence threshold through; must be
// positive.
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

// validate rejects strategy/unit/policy combinations that cannot rank.
func (o *Options) validate() error {
	if o.err != nil {
		return o.err
	}

	switch o.Unit {
	case Edges:
		if o.Strategy != EdgeBetweenness && o.Strategy != Random {
			return fmt.Errorf("%w: %s cannot target edges", ErrUnitMismatch, o.Strategy)
		}
	case Nodes:
		if o.Strategy == EdgeBetweenness {
			return fmt.Errorf("%w: edge_betweenness requires edge targets", ErrUnitMismatch)
		}
	}

	if o.Policy == Static {
		if _, ok := o.Strategy.measure(); !ok {
			return fmt.Errorf("%w: static policy requires a centrality strategy, got %s",
				ErrOptionViolation, o.Strategy)
		}
	}

	return nil
}
