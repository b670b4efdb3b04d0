package flow

import (
	"sort"

	"github.com/arclane/flowmax/graph"
)

// Cut is a minimum s-t cut: S is the set of vertices reachable from s in
// the residual graph using only positive-residual arcs; T is everything
// else. Value is the sum of original capacities of every G edge crossing
// from S to T (undirected edges counted once), which by max-flow/min-cut
// duality equals the terminated Residual's FlowValue.
type Cut struct {
	S, T  []string
	Value float64
}

// ExtractCut computes the minimum cut induced by a terminated Residual
// (spec §4.7). Every edge of g crossing from S to T is, as a contract
// guaranteed by solver correctness, saturated (flow == capacity); their
// capacities sum to Value. eps is the same residual-capacity tolerance the
// solver that produced r was run with, so reachability here agrees with
// what that solver itself treated as "residual capacity remaining".
func ExtractCut(g *graph.Graph, r *Residual, eps float64) Cut {
	_, visited := forwardResidualBFS(r, r.source, eps)

	inS := make(map[string]bool, r.numVertices())
	var sSet, tSet []string
	for v := 0; v < r.numVertices(); v++ {
		id := r.idOf(v)
		if visited[v] {
			inS[id] = true
			sSet = append(sSet, id)
		} else {
			tSet = append(tSet, id)
		}
	}
	sort.Strings(sSet)
	sort.Strings(tSet)

	var value float64
	counted := make(map[string]bool)
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		fromS, toS := inS[e.From], inS[e.To]
		var crosses bool
		if e.Directed {
			crosses = fromS && !toS
		} else {
			crosses = fromS != toS
			if crosses && counted[e.ID] {
				continue
			}
		}
		if !crosses {
			continue
		}
		counted[e.ID] = true
		c, ok := e.Capacity(r.capacityAttr)
		if !ok {
			c = r.inf
		}
		value += c
	}

	return Cut{S: sSet, T: tSet, Value: value}
}
