package connectivity

import (
	"github.com/strevik/grava/core"
)

// Analyze produces a full connectivity Report for the current graph
// state. An empty graph yields a zero-valued Report: the terminal row of
// a complete dismantling trajectory.
// Complexity: dominated by the efficiency pass unless WithoutEfficiency.
func Analyze(g *core.Graph, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	comps, err := Components(g)
	if err != nil {
		return nil, err
	}

	r := &Report{Components: comps}
	if len(comps) > 0 {
		r.Largest = len(comps[0])
	}
	if len(comps) > 1 {
		r.SecondLargest = len(comps[1])
	}

	if r.ArticulationPoints, err = ArticulationPoints(g); err != nil {
		return nil, err
	}

	if !o.SkipEfficiency {
		if r.Efficiency, err = GlobalEfficiency(g, opts...); err != nil {
			return nil, err
		}
	}

	return r, nil
}
