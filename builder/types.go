package builder

import (
	"errors"
	"math/rand"
	"strconv"

	"github.com/strevik/grava/core"
)

// Sentinel errors returned by topology constructors.
var (
	// ErrTooFewVertices is returned when a topology needs more vertices
	// than requested.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidDimension is returned for non-positive grid dimensions.
	ErrInvalidDimension = errors.New("builder: invalid dimension")

	// ErrInvalidProbability is returned for an edge probability outside
	// [0, 1].
	ErrInvalidProbability = errors.New("builder: invalid probability")
)

// WeightFn produces one edge weight per call; it receives the builder's
// seeded generator so stochastic weights stay reproducible.
type WeightFn func(rng *rand.Rand) float64

// Constructor applies one deterministic topology to the graph under the
// resolved configuration.
type Constructor func(g *core.Graph, cfg config) error

// Option configures BuildGraph via functional arguments.
type Option func(*config)

// config is the resolved builder configuration, immutable during
// construction.
type config struct {
	seed     int64
	prefix   string
	weightFn WeightFn
	rng      *rand.Rand
}

// DefaultSeed drives RandomSparse and stochastic weight functions when
// no seed is set.
const DefaultSeed int64 = 1

// defaultPrefix starts every generated vertex ID.
const defaultPrefix = "v"

// WithSeed fixes the generator used by RandomSparse and WeightFn.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithIDPrefix replaces the "v" prefix of generated vertex IDs.
func WithIDPrefix(prefix string) Option {
	return func(c *config) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithWeightFn sets the per-edge weight source for weighted graphs.
func WithWeightFn(fn WeightFn) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// newConfig resolves options and seeds the generator.
func newConfig(opts []Option) config {
	c := config{
		seed:     DefaultSeed,
		prefix:   defaultPrefix,
		weightFn: func(*rand.Rand) float64 { return 1 },
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.rng = rand.New(rand.NewSource(c.seed))

	return c
}

// id returns the generated vertex ID for index i.
func (c config) id(i int) string {
	return c.prefix + strconv.Itoa(i)
}

// weight returns the next edge weight: 0 on unweighted graphs (their
// edges reject non-zero weights), the configured source otherwise.
func (c config) weight(g *core.Graph) float64 {
	if !g.Weighted() {
		return 0
	}

	return c.weightFn(c.rng)
}

// BuildGraph creates a graph with gopts, resolves bopts, and applies the
// constructors in order, stopping at the first error.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts)
	for _, con := range cons {
		if err := con(g, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}
