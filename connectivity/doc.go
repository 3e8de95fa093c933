// Package connectivity measures how intact a core.Graph currently is:
// connected components, articulation points, and global efficiency.
//
// What
//
//   - Components: partition of the vertex set into connected components
//     (weak components on directed graphs), sorted largest first.
//   - ArticulationPoints: vertices whose removal increases the number of
//     components, found with one low-link DFS pass.
//   - GlobalEfficiency: mean of inverse shortest-path distances over all
//     ordered vertex pairs; disconnected pairs contribute 0.
//   - Analyze: one snapshot Report combining the above, the row the
//     dismantling trajectory records after every removal.
//
// Determinism
//
//	Components are ordered by descending size, ties by their smallest
//	member ID; members and articulation points are sorted ascending.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Components:         O(V + E)
//   - ArticulationPoints: O(V + E)
//   - GlobalEfficiency:   O(V·(V + E)) unweighted, O(V·(V+E) log V) weighted
//
// Errors
//
//   - ErrNilGraph for a nil graph pointer. An empty graph is not an
//     error here: the last trajectory row of a full dismantling run is
//     exactly the empty-graph Report (all zeros).
package connectivity
