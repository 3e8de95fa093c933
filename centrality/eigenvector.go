package centrality

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/strevik/grava/connectivity"
	"github.com/strevik/grava/core"
)

// eigenvectorScores fills res with the leading eigenvector of the
// adjacency (or weight) matrix, obtained by power iteration.
//
// Policy for disconnected graphs: each connected component is iterated
// independently on its own submatrix; isolated singletons score 0.
// The dismantling loop fragments graphs constantly, and every surviving
// vertex still needs a score for the argmax step, so refusing
// multi-component input is not an option here.
//
// Convergence: the L2-normalized score vector must move less than
// Tolerance between iterations; exhausting MaxIterations flips
// res.Converged to false and keeps the best approximation.
// Complexity: O(iterations · n²) per component of size n.
func eigenvectorScores(g *core.Graph, o *Options, res *Result) error {
	comps, err := connectivity.Components(g)
	if err != nil {
		return err
	}
	arcs, err := buildArcs(g)
	if err != nil {
		return err
	}

	res.Scores = make(map[string]float64, g.VertexCount())
	for _, comp := range comps {
		if len(comp) < 2 {
			res.Scores[comp[0]] = 0
			continue
		}

		iters, converged, err := powerIterate(comp, arcs, o, res.Scores)
		if err != nil {
			return err
		}
		if iters > res.Iterations {
			res.Iterations = iters
		}
		if !converged {
			res.Converged = false
		}
	}

	return nil
}

// powerIterate runs power iteration on one component and writes the
// final vector entries into scores.
func powerIterate(comp []string, arcs map[string][]arc, o *Options, scores map[string]float64) (int, bool, error) {
	n := len(comp)
	idx := make(map[string]int, n)
	for i, v := range comp {
		idx[v] = i
	}

	// Dense submatrix: row i collects the arcs leaving comp[i], so
	// MulVec computes y_i = Σ_j A_ij · x_j.
	a := mat.NewDense(n, n, nil)
	for i, v := range comp {
		for _, ar := range arcs[v] {
			j, ok := idx[ar.to]
			if !ok {
				continue // arc leaves the component (cannot happen for weak components)
			}
			a.Set(i, j, a.At(i, j)+ar.w*ar.mult)
		}
	}

	x := mat.NewVecDense(n, nil)
	y := mat.NewVecDense(n, nil)
	uniform := 1 / math.Sqrt(float64(n))
	for i := 0; i < n; i++ {
		x.SetVec(i, uniform)
	}

	converged := false
	iters := 0
	for iters < o.MaxIterations {
		select {
		case <-o.Ctx.Done():
			return iters, false, o.Ctx.Err()
		default:
		}

		// Iterate on A+I rather than A: same eigenvectors, but the
		// shift keeps bipartite components (whose spectrum contains
		// ±λmax) from oscillating instead of converging.
		y.MulVec(a, x)
		y.AddVec(y, x)
		y.ScaleVec(1/mat.Norm(y, 2), y)

		delta := floats.Distance(x.RawVector().Data, y.RawVector().Data, 2)
		x.CopyVec(y)
		iters++
		if delta < o.Tolerance {
			converged = true
			break
		}
	}

	for i, v := range comp {
		scores[v] = math.Abs(x.AtVec(i))
	}

	return iters, converged, nil
}
