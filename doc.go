// Package grava analyzes network robustness: it scores nodes and edges
// by structural importance and simulates a network's collapse under
// targeted or random removal.
//
// The library is organized leaf-first:
//
//	core/         — mutable graph: vertices, weighted edges, adjacency queries
//	paths/        — single-source shortest paths (BFS / Dijkstra)
//	connectivity/ — components, articulation points, global efficiency
//	centrality/   — degree, closeness, eigenvector, pagerank, betweenness,
//	                edge betweenness behind one Compute entry point
//	dismantle/    — the removal loop: strategies, trajectories, ensembles
//	builder/      — deterministic fixture topologies
//
// A typical experiment builds or ingests a graph, then hands it to
// dismantle.Run, which repeatedly ranks the surviving targets under the
// configured strategy, removes the top one, and records how the largest
// component and global efficiency degrade step by step.
//
// All packages are deterministic for a fixed input and seed, return
// sentinel errors branchable with errors.Is, and accept a
// context.Context for cancelling long computations.
package grava
