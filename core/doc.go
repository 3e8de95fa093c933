// Package core provides the mutable in-memory graph that every analyzer
// and the dismantling engine operate on.
//
// What
//
//   - Vertices are opaque string IDs; edges carry a non-negative float64
//     weight (treated as 1 on unweighted graphs).
//   - Directed or undirected by construction; self-loops and parallel
//     edges are opt-in via GraphOption.
//   - Removal-centric API: RemoveVertex and RemoveEdgeBetween report
//     ErrVertexNotFound / ErrEdgeNotFound on absent targets, so a removal
//     loop can distinguish "already gone" from a stale target list.
//   - Clone produces a deep copy for trial removals and ensemble runs;
//     the dismantling loop itself mutates one instance in place.
//
// Determinism
//
//	Vertices(), Edges() and NeighborIDs() return sorted slices, so every
//	iteration order, and therefore every tie-break downstream, is
//	reproducible for a fixed construction sequence.
//
// Concurrency
//
//	All mutations take a write lock, all queries a read lock, on a single
//	RWMutex. Analyzers that fan out per-source work may read concurrently;
//	only one owner is expected to mutate.
//
// Errors
//
//   - ErrEmptyVertexID       empty vertex ID.
//   - ErrVertexNotFound      referenced vertex absent.
//   - ErrEdgeNotFound        referenced edge absent.
//   - ErrNegativeWeight      negative weight where non-negative required.
//   - ErrBadWeight           non-zero weight on an unweighted graph.
//   - ErrLoopNotAllowed      self-loop while loops are disabled.
//   - ErrMultiEdgeNotAllowed parallel edge while multi-edges are disabled.
package core
