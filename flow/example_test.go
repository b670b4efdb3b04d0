package flow_test

import (
	"fmt"
	"log"

	"github.com/arclane/flowmax/flow"
	"github.com/arclane/flowmax/graph"
)

// Example models the throughput of a small CDN: a client feeding two
// points-of-presence, each with limited uplinks to both of two origin
// tiers, which drain into a shared backbone sink.
func Example() {
	g := graph.NewGraph(graph.WithDirected(true))

	edges := []struct {
		from, to string
		capacity float64
	}{
		{"Client", "PoP1", 10},
		{"Client", "PoP2", 15},
		{"PoP1", "Origin1", 5},
		{"PoP1", "Origin2", 5},
		{"PoP2", "Origin1", 10},
		{"PoP2", "Origin2", 3},
		{"Origin1", "Sink", 20},
		{"Origin2", "Sink", 20},
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.from, e.to, map[string]float64{"capacity": e.capacity}); err != nil {
			log.Fatalf("add edge: %v", err)
		}
	}

	value, _, err := flow.MaximumFlow(g, "Client", "Sink", flow.AlgoShortestAugmentingPath, flow.DefaultOptions())
	if err != nil {
		log.Fatalf("max flow: %v", err)
	}
	fmt.Printf("max throughput: %.0f Gbps\n", value)
	// Output: max throughput: 23 Gbps
}
