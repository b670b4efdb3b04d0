package flow

import (
	"github.com/arclane/flowmax/graph"
)

// BuildFlowDict reconstructs a map[u][v]=f flow dictionary from a
// terminated Residual and its originating graph (spec §4.8).
//
// For a directed (or one-directional) edge u->v, f is the arc's own flow
// floored at 0 (a "real" forward arc never reports negative; a synthetic
// reverse arc, identifiable by zero original capacity, is never a real
// edge of g and is skipped entirely).
//
// An undirected edge became two independent arc pairs at build time (u->v
// and v->u, each capacity c) so that solvers could treat it exactly like
// two directed edges; BuildResidual links their forward halves via
// undirectedTwin. Reporting both of those independently would let the two
// directions disagree, so here they are netted: net = uv.flow - vu.flow,
// and both directions are written |net| — giving the single non-negative
// value, mirrored both ways, spec §4.8 requires.
func BuildFlowDict(g *graph.Graph, r *Residual) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, r.numVertices())
	for _, id := range r.vertexID {
		out[id] = make(map[string]float64)
	}
	for _, u := range r.vertexID {
		ids, err := g.NeighborIDs(u)
		if err != nil {
			continue
		}
		for _, v := range ids {
			out[u][v] = 0
		}
	}

	visitedUndirected := make(map[int]bool)
	for u := 0; u < r.numVertices(); u++ {
		for _, ai := range r.adj[u] {
			a := &r.arcs[ai]
			if a.capacity == 0 {
				continue // synthetic reverse arc
			}
			if a.undirectedTwin >= 0 {
				if visitedUndirected[ai] {
					continue
				}
				visitedUndirected[ai] = true
				visitedUndirected[a.undirectedTwin] = true
				twin := &r.arcs[a.undirectedTwin]
				net := a.flow - twin.flow
				uID, vID := r.idOf(u), r.idOf(a.to)
				if net >= 0 {
					out[uID][vID] += net
					out[vID][uID] += net
				} else {
					out[uID][vID] += -net
					out[vID][uID] += -net
				}
				continue
			}
			f := a.flow
			if f < 0 {
				f = 0
			}
			out[r.idOf(u)][r.idOf(a.to)] += f
		}
	}

	return out
}
