// Package flow implements a family of maximum-flow / minimum-cut solvers
// over graphs from package graph. It computes the maximum feasible s→t
// flow in a capacitated network, reconstructs a full per-edge flow
// assignment, and extracts an (S, T) vertex partition inducing a minimum
// s–t cut.
//
// Four solvers share one residual-graph representation:
//
//   - Edmonds–Karp    — BFS for shortest (fewest-edge) augmenting paths.
//     Time: O(V·E²). Memory: O(V+E). Supports Cutoff.
//
//   - Ford–Fulkerson   — DFS for any augmenting path; no polynomial
//     guarantee. Kept for correctness comparison and legacy callers: unlike
//     the other three, it eagerly materializes its FlowDict at solve time
//     rather than reconstructing it from the residual on demand, and tags
//     its Residual with Algorithm AlgoFordFulkersonLegacy so consumers know
//     to read FlowDict directly.
//     Time: O(E·F). Memory: O(V+E).
//
//   - ShortestAugmentingPath (SAP) — per-vertex distance labels with an
//     advance/retreat main loop; optional TwoPhase finisher. Supports Cutoff.
//     Time: O(V²·E).
//
//   - PreflowPush (highest-label push–relabel) — periodic global relabeling
//     plus the gap heuristic. Time: O(V²·√E).
//
// # Residual graph
//
// BuildResidual materializes a Residual: an arc arena with O(1) reverse-arc
// lookup (spec §9's "cyclic residual structure" resolved as stable integer
// indices rather than pointers). Parallel edges are summed; antiparallel
// edges are kept distinct; undirected edges become two residual arcs of
// equal capacity; a missing capacity attribute is infinite, represented by
// a concrete sentinel INF (never math.Inf) computed per call as the sum of
// all finite capacities in the graph plus the largest single finite
// capacity (at least 1).
//
// # Options
//
// FlowOptions configures all four solvers; DefaultOptions returns the
// production-safe zero-ish configuration (CapacityAttr "capacity", Epsilon
// 1e-9, no cutoff, single-phase SAP, default-frequency global relabel).
//
// # Errors
//
//	InvalidArgumentError — s == t; s or t absent from the graph; negative
//	capacity; an unrecognized flow_func; cutoff passed to MinimumCut;
//	GlobalRelabelFreq < 0; an option the selected solver does not accept.
//	ErrUnbounded — the max flow is infinite: an s→t path exists composed
//	entirely of edges lacking the capacity attribute.
//
// # Determinism
//
// All solvers walk neighbours in the residual adjacency's insertion order
// (itself inherited from the input graph's edge insertion order), so two
// runs over the same graph produce byte-identical augmenting-path choices.
package flow
