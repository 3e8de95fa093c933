// Package dismantle drives the network-collapse simulation: an iterative
// loop that ranks the current graph's nodes (or edges) under a configured
// strategy, removes the top-ranked target, re-analyzes connectivity, and
// records a trajectory row, repeating until the target set is exhausted
// or a stop condition fires.
//
// What
//
//   - Run executes one attack on a graph, mutating it in place, and
//     returns the Trajectory of removal steps.
//   - Strategies: the six centrality measures, the articulation-point
//     heuristic, the brute-force articulation attack (trial-remove every
//     articulation point, keep the one minimizing the surviving largest
//     component), and seeded uniform Random.
//   - RecomputePolicy chooses between re-ranking after every removal
//     (Iterative) and ranking once on the initial graph (Static).
//   - RandomEnsemble repeats the Random attack over independent clones
//     and aggregates per-step mean and standard deviation of the largest
//     component size and global efficiency.
//
// Why
//
// Global measures (betweenness, eigenvector, pagerank, closeness) can
// shift arbitrarily after a single removal, so the Iterative policy
// recomputes them from scratch each step; Static exists as the cheap
// baseline attack the literature compares against.
//
// Determinism
//
// Ranking ties break toward the smallest vertex ID (or smallest canonical
// edge key). Random selection draws from the sorted remaining target list
// with a seeded generator, so a fixed Seed reproduces the exact removal
// sequence.
//
// Errors
//
//   - ErrNilGraph, ErrEmptyGraph — invalid input graph.
//   - ErrOptionViolation — invalid option value or strategy/policy combo.
//   - ErrUnitMismatch — the strategy cannot rank the configured target
//     unit (only EdgeBetweenness and Random may target edges).
//   - Centrality and connectivity errors abort the run wrapped with the
//     step index and strategy; the failed step leaves the graph
//     untouched. Cancellation between steps returns the trajectory built
//     so far together with the context error.
package dismantle
