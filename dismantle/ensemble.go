package dismantle

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/strevik/grava/core"
)

// EnsembleStep aggregates one trajectory position across runs.
type EnsembleStep struct {
	// MeanLCC and StdLCC summarize the largest component size after
	// this many removals.
	MeanLCC float64
	StdLCC  float64

	// MeanEfficiency and StdEfficiency summarize global efficiency at
	// the same position.
	MeanEfficiency float64
	StdEfficiency  float64
}

// Ensemble is the aggregate outcome of repeated random attacks.
type Ensemble struct {
	// Runs is the number of independent attacks aggregated.
	Runs int

	// Steps covers the positions every run reached; with no stop
	// condition that is the full target count, with stop conditions it
	// is truncated to the shortest run.
	Steps []EnsembleStep
}

// RandomEnsemble repeats the Random attack over independent clones of g
// and returns per-step mean and standard deviation of the largest
// component size and global efficiency. A single random trajectory says
// little about a network's robustness; the ensemble average is the
// quantity the targeted attacks are compared against.
//
// g itself is never mutated. Run i uses seed Seed+i, so the whole
// ensemble is reproducible from one Seed. Options other than the
// strategy pass through to each run; the strategy is forced to Random.
func RandomEnsemble(g *core.Graph, runs int, opts ...Option) (*Ensemble, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if runs <= 0 {
		return nil, fmt.Errorf("%w: runs %d must be positive", ErrOptionViolation, runs)
	}

	base := DefaultOptions()
	for _, opt := range opts {
		opt(&base)
	}
	if base.err != nil {
		return nil, base.err
	}

	trajs := make([]*Trajectory, 0, runs)
	minLen := -1
	for i := 0; i < runs; i++ {
		clone := g.Clone()
		traj, err := Run(clone, append(opts,
			WithStrategy(Random),
			WithSeed(base.Seed+int64(i)),
		)...)
		if err != nil {
			return nil, fmt.Errorf("dismantle: ensemble run %d: %w", i, err)
		}
		trajs = append(trajs, traj)
		if minLen < 0 || len(traj.Steps) < minLen {
			minLen = len(traj.Steps)
		}
	}

	ens := &Ensemble{Runs: runs, Steps: make([]EnsembleStep, minLen)}
	lcc := make([]float64, runs)
	eff := make([]float64, runs)
	for step := 0; step < minLen; step++ {
		for i, traj := range trajs {
			lcc[i] = float64(traj.Steps[step].Report.Largest)
			eff[i] = traj.Steps[step].Report.Efficiency
		}
		meanL, stdL := stat.MeanStdDev(lcc, nil)
		meanE, stdE := stat.MeanStdDev(eff, nil)
		if runs == 1 {
			// Sample deviation is undefined for a single run.
			stdL, stdE = 0, 0
		}
		ens.Steps[step] = EnsembleStep{
			MeanLCC:        meanL,
			StdLCC:         stdL,
			MeanEfficiency: meanE,
			StdEfficiency:  stdE,
		}
	}

	return ens, nil
}
