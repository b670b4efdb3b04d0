// Package flowmax is a maximum-flow / minimum-cut library for capacitated
// graphs.
//
// Given a directed or undirected graph whose edges carry non-negative
// capacities and a pair of distinct vertices (source s, sink t), flowmax
// computes the maximum feasible s→t flow value, a full flow assignment on
// every edge, and an (S, T) vertex partition inducing a minimum s–t cut.
//
// Two packages make up the module:
//
//	graph/ — the host labelled-multigraph type (Vertex, Edge, Graph):
//	         directed or undirected, with optional parallel edges, loops,
//	         and mixed per-edge directedness.
//	flow/  — the library itself: residual-graph construction, four
//	         max-flow solvers (Edmonds–Karp, Ford–Fulkerson, Shortest
//	         Augmenting Path, Preflow-Push/Highest-Label), minimum-cut
//	         extraction, flow-dictionary reconstruction, and the
//	         maximum_flow/minimum_cut dispatcher.
//
// Quick example:
//
//	g := graph.NewGraph(graph.WithDirected(true))
//	g.AddEdge("s", "a", map[string]float64{"capacity": 10})
//	g.AddEdge("a", "t", map[string]float64{"capacity": 10})
//	value, flows, err := flow.MaximumFlow(g, "s", "t", flow.AlgoShortestAugmentingPath, flow.DefaultOptions())
//
// See package flow's doc comment for the full solver catalogue and their
// complexity/algorithm trade-offs.
package flowmax
