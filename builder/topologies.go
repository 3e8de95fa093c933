package builder

import (
	"fmt"

	"github.com/strevik/grava/core"
)

// Path builds the simple path v0–v1–…–v(n-1); n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("path: n=%d: %w", n, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(cfg.id(i-1), cfg.id(i), cfg.weight(g)); err != nil {
				return fmt.Errorf("path: %w", err)
			}
		}

		return nil
	}
}

// Cycle builds the n-cycle v0–v1–…–v(n-1)–v0; n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 3 {
			return fmt.Errorf("cycle: n=%d: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if _, err := g.AddEdge(cfg.id(i), cfg.id((i+1)%n), cfg.weight(g)); err != nil {
				return fmt.Errorf("cycle: %w", err)
			}
		}

		return nil
	}
}

// Star builds a hub v0 with spokes to v1…v(n-1); n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("star: n=%d: %w", n, ErrTooFewVertices)
		}
		hub := cfg.id(0)
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(hub, cfg.id(i), cfg.weight(g)); err != nil {
				return fmt.Errorf("star: %w", err)
			}
		}

		return nil
	}
}

// Complete builds K_n, every unordered pair connected; n ≥ 2.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("complete: n=%d: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(cfg.id(i), cfg.id(j), cfg.weight(g)); err != nil {
					return fmt.Errorf("complete: %w", err)
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols lattice with 4-neighborhood edges; vertex
// (r, c) gets index r·cols+c. Both dimensions must be positive and the
// lattice must hold at least two vertices.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("grid: %dx%d: %w", rows, cols, ErrInvalidDimension)
		}
		if rows*cols < 2 {
			return fmt.Errorf("grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := cfg.id(r*cols + c)
				if c+1 < cols {
					if _, err := g.AddEdge(at, cfg.id(r*cols+c+1), cfg.weight(g)); err != nil {
						return fmt.Errorf("grid: %w", err)
					}
				}
				if r+1 < rows {
					if _, err := g.AddEdge(at, cfg.id((r+1)*cols+c), cfg.weight(g)); err != nil {
						return fmt.Errorf("grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi G(n, p) graph: each unordered pair
// drawn independently with probability p from the seeded generator, so a
// fixed Seed reproduces the topology. Isolated vertices are kept.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("random_sparse: n=%d: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("random_sparse: p=%g: %w", p, ErrInvalidProbability)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return fmt.Errorf("random_sparse: %w", err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if _, err := g.AddEdge(cfg.id(i), cfg.id(j), cfg.weight(g)); err != nil {
					return fmt.Errorf("random_sparse: %w", err)
				}
			}
		}

		return nil
	}
}
