package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclane/flowmax/flow"
	"github.com/arclane/flowmax/graph"
)

// TestMixedFiniteAndInfiniteCapacityEdges ports networkx's
// test_digraph_infcap_edges: a directed network where some edges lack the
// capacity attribute (infinite) but no s-t path is made entirely of such
// edges, so the true flow is finite. This is exactly the shape that
// stresses isInfArc's classification — s->a is infinite but a->c/a->t are
// finite, and c->t is infinite but reached only through finite edges.
func TestMixedFiniteAndInfiniteCapacityEdges(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	_, _ = g.AddEdge("s", "a", nil)
	_, _ = g.AddEdge("s", "b", map[string]float64{"capacity": 30})
	_, _ = g.AddEdge("a", "c", map[string]float64{"capacity": 25})
	_, _ = g.AddEdge("b", "c", map[string]float64{"capacity": 12})
	_, _ = g.AddEdge("a", "t", map[string]float64{"capacity": 60})
	_, _ = g.AddEdge("c", "t", nil)

	for _, algo := range allAlgorithms {
		value, _, err := flow.MaximumFlow(g, "s", "t", algo, flow.DefaultOptions())
		require.NoError(t, err, "algo=%s", algo)
		require.InDelta(t, 97.0, value, 1e-6, "algo=%s", algo)
	}
}

// TestMixedFiniteAndInfiniteCapacityDigon ports the second half of the same
// networkx test: an infinite-capacity digon (a->c and c->a both uncapacitated)
// sitting inside an otherwise finite network. Neither arc alone forms an
// s-t path of infinite arcs, so the flow is still finite.
func TestMixedFiniteAndInfiniteCapacityDigon(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	_, _ = g.AddEdge("s", "a", map[string]float64{"capacity": 85})
	_, _ = g.AddEdge("s", "b", map[string]float64{"capacity": 30})
	_, _ = g.AddEdge("a", "c", nil)
	_, _ = g.AddEdge("c", "a", nil)
	_, _ = g.AddEdge("b", "c", map[string]float64{"capacity": 12})
	_, _ = g.AddEdge("a", "t", map[string]float64{"capacity": 60})
	_, _ = g.AddEdge("c", "t", map[string]float64{"capacity": 37})

	value, _, err := flow.MaximumFlow(g, "s", "t", flow.AlgoShortestAugmentingPath, flow.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, 97.0, value, 1e-6)
}

// TestMixedFiniteAndInfiniteCapacityUndirectedEdges ports networkx's
// test_graph_infcap_edges: the undirected analogue, which additionally
// exercises BuildFlowDict's undirected-twin net-flow reconciliation on an
// infinite-capacity edge.
func TestMixedFiniteAndInfiniteCapacityUndirectedEdges(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddEdge("s", "a", nil)
	_, _ = g.AddEdge("s", "b", map[string]float64{"capacity": 30})
	_, _ = g.AddEdge("a", "c", map[string]float64{"capacity": 25})
	_, _ = g.AddEdge("b", "c", map[string]float64{"capacity": 12})
	_, _ = g.AddEdge("a", "t", map[string]float64{"capacity": 60})
	_, _ = g.AddEdge("c", "t", nil)

	for _, algo := range allAlgorithms {
		value, _, err := flow.MaximumFlow(g, "s", "t", algo, flow.DefaultOptions())
		require.NoError(t, err, "algo=%s", algo)
		require.InDelta(t, 97.0, value, 1e-6, "algo=%s", algo)
	}
}

// TestTicket429AntiparallelFiniteNetwork ports networkx's regression test
// for ticket #429: a small network with an antiparallel a<->b pair of
// different capacities, where the correct flow value is sensitive to
// whether the reverse arc of a<->b is mistakenly folded into one undirected
// arc instead of staying distinct.
func TestTicket429AntiparallelFiniteNetwork(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	_, _ = g.AddEdge("s", "a", map[string]float64{"capacity": 2})
	_, _ = g.AddEdge("s", "b", map[string]float64{"capacity": 2})
	_, _ = g.AddEdge("a", "b", map[string]float64{"capacity": 5})
	_, _ = g.AddEdge("a", "t", map[string]float64{"capacity": 1})
	_, _ = g.AddEdge("b", "a", map[string]float64{"capacity": 1})
	_, _ = g.AddEdge("b", "t", map[string]float64{"capacity": 3})

	for _, algo := range allAlgorithms {
		value, _, err := flow.MaximumFlow(g, "s", "t", algo, flow.DefaultOptions())
		require.NoError(t, err, "algo=%s", algo)
		require.InDelta(t, 4.0, value, 1e-6, "algo=%s", algo)
	}
}
