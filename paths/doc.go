// Package paths provides single-source shortest-path distances over a
// core.Graph: breadth-first search for unweighted graphs and Dijkstra's
// algorithm for weighted graphs with non-negative weights.
//
// What
//
//   - BFSFrom:      hop-count distances, O(V + E).
//   - DijkstraFrom: weighted distances via a lazy-decrease-key min-heap,
//     O((V + E) log V).
//   - FromSource:   dispatches on Graph.Weighted() so callers that only
//     need distances never branch themselves.
//
// Results map vertex ID to distance; unreachable vertices are absent from
// the map, which is what the closeness and efficiency formulas want (an
// unreachable pair contributes nothing).
//
// Determinism
//
//	Neighbors are visited in core's sorted edge order, so distance maps
//	and traversal side effects are reproducible run to run.
//
// Errors
//
//   - ErrNilGraph         nil graph pointer.
//   - ErrSourceNotFound   source vertex absent.
//   - ErrWeightedGraph    BFS requested on a weighted graph.
//   - ErrUnweightedGraph  Dijkstra requested on an unweighted graph.
//   - ErrNegativeWeight   negative weight observed during relaxation.
package paths
