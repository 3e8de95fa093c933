package dismantle

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/strevik/grava/centrality"
	"github.com/strevik/grava/connectivity"
	"github.com/strevik/grava/core"
)

// Run executes one dismantling attack on g, mutating it in place, and
// returns the trajectory of removal steps. The graph is the run's single
// owner for its duration; analyzers only read it.
//
// Each step is atomic: the victim is ranked and selected first, then
// removed, then the post-removal connectivity report is appended. A
// ranking failure (including cancellation) leaves the graph exactly as
// the previous step left it, so the returned trajectory is always valid
// and resumable.
func Run(g *core.Graph, opts ...Option) (*Trajectory, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	r := &runner{
		g:    g,
		o:    &o,
		traj: &Trajectory{State: Initialized, Converged: true},
	}
	if o.Strategy == Random {
		r.rng = rand.New(rand.NewSource(o.Seed))
	}
	if o.Policy == Static {
		if err := r.rankStatic(); err != nil {
			return nil, fmt.Errorf("dismantle: static ranking (%s): %w", o.Strategy, err)
		}
	}

	return r.traj, r.loop()
}

// rankEntry is one slot of the precomputed static order.
type rankEntry struct {
	id    string
	score float64
}

// runner holds the mutable state of one attack.
type runner struct {
	g      *core.Graph
	o      *Options
	traj   *Trajectory
	rng    *rand.Rand
	static []rankEntry // fixed rank order, Static policy only
}

// loop drives steps until the target set is exhausted or a stop
// condition fires.
func (r *runner) loop() error {
	r.traj.State = Running

	for {
		if r.remaining() == 0 {
			r.traj.State = Completed
			return nil
		}
		if r.o.MaxRemovals > 0 && len(r.traj.Steps) >= r.o.MaxRemovals {
			r.traj.State = Stopped
			return nil
		}
		if r.o.LCCThreshold > 0 {
			lcc, err := r.currentLCC()
			if err != nil {
				r.traj.State = Stopped
				return err
			}
			if lcc < r.o.LCCThreshold {
				r.traj.State = Stopped
				return nil
			}
		}
		select {
		case <-r.o.Ctx.Done():
			r.traj.State = Stopped
			return r.o.Ctx.Err()
		default:
		}

		victim, score, ok, err := r.selectTarget()
		if err != nil {
			r.traj.State = Stopped
			return fmt.Errorf("dismantle: step %d (%s): %w",
				len(r.traj.Steps), r.o.Strategy, err)
		}
		if !ok {
			r.traj.State = Completed
			return nil
		}

		if err := r.remove(victim); err != nil {
			r.traj.State = Stopped
			return fmt.Errorf("dismantle: step %d (%s): remove %q: %w",
				len(r.traj.Steps), r.o.Strategy, victim, err)
		}

		// The report deliberately runs without the step's cancellation
		// point: once the removal happened, the row must land so the
		// trajectory stays consistent with the mutated graph.
		rep, err := connectivity.Analyze(r.g)
		if err != nil {
			r.traj.State = Stopped
			return fmt.Errorf("dismantle: step %d (%s): analyze: %w",
				len(r.traj.Steps), r.o.Strategy, err)
		}

		r.traj.Steps = append(r.traj.Steps, Step{
			Index:   len(r.traj.Steps),
			Removed: victim,
			Score:   score,
			Report:  rep,
		})
	}
}

// remaining counts the targets still present.
func (r *runner) remaining() int {
	if r.o.Unit == Edges {
		return r.g.EdgeCount()
	}

	return r.g.VertexCount()
}

// currentLCC is the largest component size after the last step, computed
// directly on the initial graph when no step has run yet.
func (r *runner) currentLCC() (int, error) {
	if n := len(r.traj.Steps); n > 0 {
		return r.traj.Steps[n-1].Report.Largest, nil
	}

	rep, err := connectivity.Analyze(r.g, connectivity.WithoutEfficiency())
	if err != nil {
		return 0, err
	}

	return rep.Largest, nil
}

// selectTarget picks this step's victim and its score. ok is false when
// the static order is exhausted.
func (r *runner) selectTarget() (string, float64, bool, error) {
	switch {
	case r.o.Policy == Static:
		return r.popStatic()
	case r.o.Strategy == Random:
		return r.pickRandom()
	case r.o.Strategy == Articulation:
		return r.pickArticulation()
	case r.o.Strategy == ArticulationBruteForce:
		return r.pickBruteForce()
	default:
		m, _ := r.o.Strategy.measure()
		victim, score, err := r.rankAndPick(m)

		return victim, score, true, err
	}
}

// rankAndPick computes the measure on the current graph and returns the
// top-scored target, ties broken toward the smallest identifier.
func (r *runner) rankAndPick(m centrality.Measure) (string, float64, error) {
	res, err := centrality.Compute(r.g, m,
		centrality.WithContext(r.o.Ctx),
		centrality.WithDamping(r.o.Damping),
		centrality.WithTolerance(r.o.Tolerance),
		centrality.WithMaxIterations(r.o.MaxIterations),
	)
	if err != nil {
		return "", 0, err
	}
	if !res.Converged {
		r.traj.Converged = false
	}

	victim, score := argmax(res.Scores)

	return victim, score, nil
}

// pickRandom draws uniformly from the sorted remaining target list so a
// fixed seed reproduces the removal sequence.
func (r *runner) pickRandom() (string, float64, bool, error) {
	targets := r.targetList()
	if len(targets) == 0 {
		return "", 0, false, nil
	}

	return targets[r.rng.Intn(len(targets))], 0, true, nil
}

// pickArticulation removes the smallest-ID articulation point, falling
// back to the highest-degree vertex when none exists.
func (r *runner) pickArticulation() (string, float64, bool, error) {
	aps, err := connectivity.ArticulationPoints(r.g)
	if err != nil {
		return "", 0, false, err
	}
	if len(aps) == 0 {
		victim, score, err := r.highestDegree()

		return victim, score, true, err
	}

	return aps[0], 1, true, nil
}

// pickBruteForce trial-removes every current articulation point on a
// clone and keeps the candidate minimizing the surviving largest
// component. Falls back like the plain articulation strategy when the
// articulation set is empty.
func (r *runner) pickBruteForce() (string, float64, bool, error) {
	aps, err := connectivity.ArticulationPoints(r.g)
	if err != nil {
		return "", 0, false, err
	}
	if len(aps) == 0 {
		victim, score, err := r.highestDegree()

		return victim, score, true, err
	}

	best := ""
	bestLCC := math.MaxInt
	for _, ap := range aps {
		select {
		case <-r.o.Ctx.Done():
			return "", 0, false, r.o.Ctx.Err()
		default:
		}

		trial := r.g.Clone()
		if err := trial.RemoveVertex(ap); err != nil {
			return "", 0, false, err
		}
		rep, err := connectivity.Analyze(trial, connectivity.WithoutEfficiency())
		if err != nil {
			return "", 0, false, err
		}
		// aps is sorted, so strict < keeps the smallest ID on ties.
		if rep.Largest < bestLCC {
			bestLCC = rep.Largest
			best = ap
		}
	}

	return best, float64(bestLCC), true, nil
}

// highestDegree is the progression fallback when no articulation point
// exists: the smallest-ID vertex of maximum degree.
func (r *runner) highestDegree() (string, float64, error) {
	best := ""
	bestDeg := -1
	for _, v := range r.g.Vertices() {
		d, err := r.g.Degree(v)
		if err != nil {
			return "", 0, err
		}
		if d > bestDeg {
			bestDeg = d
			best = v
		}
	}

	return best, float64(bestDeg), nil
}

// rankStatic fixes the removal order from one computation on the initial
// graph.
func (r *runner) rankStatic() error {
	m, _ := r.o.Strategy.measure()
	res, err := centrality.Compute(r.g, m,
		centrality.WithContext(r.o.Ctx),
		centrality.WithDamping(r.o.Damping),
		centrality.WithTolerance(r.o.Tolerance),
		centrality.WithMaxIterations(r.o.MaxIterations),
	)
	if err != nil {
		return err
	}
	if !res.Converged {
		r.traj.Converged = false
	}

	r.static = make([]rankEntry, 0, len(res.Scores))
	for id, s := range res.Scores {
		r.static = append(r.static, rankEntry{id: id, score: s})
	}
	sort.Slice(r.static, func(i, j int) bool {
		if r.static[i].score != r.static[j].score {
			return r.static[i].score > r.static[j].score
		}

		return r.static[i].id < r.static[j].id
	})

	return nil
}

// popStatic advances the fixed order past targets that vanished as a
// side effect of earlier removals.
func (r *runner) popStatic() (string, float64, bool, error) {
	for len(r.static) > 0 {
		e := r.static[0]
		r.static = r.static[1:]
		if r.present(e.id) {
			return e.id, e.score, true, nil
		}
	}

	return "", 0, false, nil
}

// present reports whether a target still exists in the graph.
func (r *runner) present(target string) bool {
	if r.o.Unit == Edges {
		u, v := centrality.SplitEdgeKey(target)

		return r.g.HasEdge(u, v)
	}

	return r.g.HasVertex(target)
}

// remove takes the victim out of the graph.
func (r *runner) remove(victim string) error {
	if r.o.Unit == Edges {
		u, v := centrality.SplitEdgeKey(victim)

		return r.g.RemoveEdgeBetween(u, v)
	}

	return r.g.RemoveVertex(victim)
}

// targetList is the sorted list of remaining targets: vertex IDs or
// deduplicated canonical edge keys.
func (r *runner) targetList() []string {
	if r.o.Unit == Nodes {
		return r.g.Vertices()
	}

	seen := make(map[string]struct{})
	keys := make([]string, 0, r.g.EdgeCount())
	for _, e := range r.g.Edges() {
		k := centrality.EdgeKey(e.From, e.To)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// argmax returns the top-scored key, ties broken toward the smallest.
func argmax(scores map[string]float64) (string, float64) {
	best := ""
	bestScore := math.Inf(-1)
	first := true
	for k, s := range scores {
		if first || s > bestScore || (s == bestScore && k < best) {
			best, bestScore, first = k, s, false
		}
	}

	return best, bestScore
}
