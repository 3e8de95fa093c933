// Package builder assembles deterministic graph fixtures for tests,
// examples and attack experiments.
//
// One orchestrator, BuildGraph, creates a core.Graph, resolves the
// builder options, and applies the given Constructors in order. Each
// topology factory (Path, Cycle, Star, Complete, Grid, RandomSparse)
// returns a Constructor closure, so fixtures compose:
//
//	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
//
// Determinism: the same graph options, builder options (including Seed)
// and constructor order always produce an identical graph. Vertex IDs
// are prefix+index ("v0", "v1", …) unless WithIDPrefix overrides the
// prefix.
//
// Errors: constructors validate parameters early and return sentinel
// errors (ErrTooFewVertices, ErrInvalidDimension, ErrInvalidProbability)
// wrapped with the topology name; BuildGraph stops at the first failure.
package builder
