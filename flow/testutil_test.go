package flow_test

import (
	"fmt"

	"github.com/arclane/flowmax/graph"
)

// trivialUndirected builds scenario 1: a single undirected edge (1,2) of
// capacity 1.
func trivialUndirected() (*graph.Graph, string, string) {
	g := graph.NewGraph()
	_, _ = g.AddEdge("1", "2", map[string]float64{"capacity": 1.0})
	return g, "1", "2"
}

// cormenExample builds scenario 2: the classic CLRS six-node flow network
// with s, v1..v4, t; max flow is 23.
func cormenExample(attr string) (*graph.Graph, string, string) {
	g := graph.NewGraph(graph.WithDirected(true))
	edges := []struct {
		from, to string
		cap      float64
	}{
		{"s", "v1", 16}, {"s", "v2", 13},
		{"v1", "v2", 10}, {"v2", "v1", 4},
		{"v1", "v3", 12}, {"v3", "v2", 9},
		{"v2", "v4", 14}, {"v4", "v3", 7},
		{"v3", "t", 20}, {"v4", "t", 4},
	}
	for _, e := range edges {
		_, _ = g.AddEdge(e.from, e.to, map[string]float64{attr: e.cap})
	}
	return g, "s", "t"
}

// funnel builds scenario 3: a high-capacity funnel with a capacity-1
// cross edge b->c that does not limit the flow, max flow 2000.
func funnel() (*graph.Graph, string, string) {
	g := graph.NewGraph(graph.WithDirected(true))
	_, _ = g.AddEdge("a", "b", map[string]float64{"capacity": 1000})
	_, _ = g.AddEdge("a", "c", map[string]float64{"capacity": 1000})
	_, _ = g.AddEdge("b", "c", map[string]float64{"capacity": 1})
	_, _ = g.AddEdge("b", "d", map[string]float64{"capacity": 1000})
	_, _ = g.AddEdge("c", "d", map[string]float64{"capacity": 1000})
	return g, "a", "d"
}

// infinitePath builds scenario 5: an s-t path made entirely of edges
// lacking the capacity attribute, plus finite back edges that must not
// mask the unbounded s->t reachability.
func infinitePath() (*graph.Graph, string, string) {
	g := graph.NewGraph(graph.WithDirected(true))
	_, _ = g.AddEdge("s", "a", nil)
	_, _ = g.AddEdge("a", "c", nil)
	_, _ = g.AddEdge("c", "t", nil)
	_, _ = g.AddEdge("t", "a", map[string]float64{"capacity": 5})
	_, _ = g.AddEdge("c", "s", map[string]float64{"capacity": 5})
	return g, "s", "t"
}

// disconnected builds scenario 6: removing vertex 1 from a 0-1-2-3 chain
// leaves s=0 unable to reach t=3, so max flow is 0.
func disconnected() (*graph.Graph, string, string) {
	g := graph.NewGraph(graph.WithDirected(true))
	_, _ = g.AddEdge("0", "1", map[string]float64{"capacity": 1})
	_, _ = g.AddEdge("1", "2", map[string]float64{"capacity": 1})
	_, _ = g.AddEdge("2", "3", map[string]float64{"capacity": 1})
	_ = g.RemoveVertex("1")
	return g, "0", "3"
}

// layeredParallelPaths builds scenario 8: k parallel directed paths of
// length p each, capacity 1 per arc, source feeding every path head and
// every path tail feeding the sink. Max flow is k regardless of solver.
func layeredParallelPaths(k, p int) (*graph.Graph, string, string) {
	g := graph.NewGraph(graph.WithDirected(true), graph.WithMultiEdges())
	s, t := "s", "t"
	for i := 0; i < k; i++ {
		prev := s
		for j := 0; j < p-1; j++ {
			node := fmt.Sprintf("p%d_%d", i, j)
			_, _ = g.AddEdge(prev, node, map[string]float64{"capacity": 1})
			prev = node
		}
		_, _ = g.AddEdge(prev, t, map[string]float64{"capacity": 1})
	}
	return g, s, t
}
