package centrality

import (
	"github.com/strevik/grava/core"
)

// Compute scores every vertex (or edge, for edge measures) of g under
// the requested measure. Scores are computed fresh from the current
// graph state; see the package documentation for the per-measure
// definitions and complexity.
func Compute(g *core.Graph, m Measure, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	res := &Result{Measure: m, Converged: true}
	var err error
	switch m {
	case Degree:
		err = degreeScores(g, res)
	case Closeness:
		err = closenessScores(g, &o, res)
	case Eigenvector:
		err = eigenvectorScores(g, &o, res)
	case PageRank:
		err = pagerankScores(g, &o, res)
	case Betweenness, EdgeBetweenness:
		err = betweennessScores(g, &o, res)
	default:
		return nil, ErrUnknownMeasure
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}
