// Package graph defines the host labelled-multigraph type consumed by the
// flow package: Vertex, Edge, and Graph, plus thread-safe primitives for
// building, querying, and cloning graphs.
//
// Graph supports directed and undirected edges, optional parallel edges
// (multi-edges), optional self-loops, and optional per-edge directedness
// overrides (mixed mode). Edges carry an open-ended attribute bag
// (map[string]float64) rather than a single fixed weight, because the flow
// package's capacity attribute name is caller-selected per call (default
// "capacity") — a missing attribute denotes infinite capacity, which only
// the caller-supplied attribute name can determine.
//
// This package intentionally does not know about flows, residual capacity,
// or augmenting paths — it is the "standard labelled-multigraph API" the
// flow package assumes as an external collaborator (spec §1, §6). See
// package flow for the max-flow/min-cut solvers themselves.
package graph
