// Package centrality scores the structural importance of vertices (and
// edges) of a core.Graph behind a single entry point:
//
//	res, err := centrality.Compute(g, centrality.Betweenness)
//
// What
//
//   - Degree:          (weighted) degree, normalized by n-1.
//   - Closeness:       Wasserman–Faust closeness, sound on disconnected
//     graphs (unreachable vertices contribute nothing).
//   - Eigenvector:     leading eigenvector of the adjacency/weight
//     matrix via power iteration, computed per connected component.
//   - PageRank:        damped random walk with uniform teleportation;
//     dangling mass is redistributed uniformly.
//   - Betweenness:     Brandes' accumulation of shortest-path pair
//     dependencies; ties split credit proportionally.
//   - EdgeBetweenness: same accumulation attributed to edges, keyed by
//     the canonical EdgeKey of the endpoints.
//
// The measure set is closed, so it is a plain enum dispatched in one
// switch rather than an interface hierarchy.
//
// Scores are computed fresh from the current graph state on every call:
// a removal can change any score, so caching across mutations is
// unsound. Every vertex (or edge) present in the graph gets an entry;
// isolated vertices score 0.
//
// Convergence
//
//	Eigenvector and PageRank stop when successive score vectors differ
//	by less than the configured tolerance, or after the configured
//	maximum number of iterations. Hitting the cap is not an error: the
//	best available approximation is returned with Result.Converged set
//	to false.
//
// Errors
//
//   - ErrNilGraph        nil graph pointer.
//   - ErrEmptyGraph      graph with zero vertices.
//   - ErrUnknownMeasure  measure outside the enum.
//   - ErrOptionViolation invalid option value (damping outside (0,1),
//     non-positive tolerance or iteration cap).
//   - Negative-weight errors from the paths package propagate with the
//     measure and source vertex attached.
package centrality
