package flow

import (
	"github.com/arclane/flowmax/graph"
)

// BuildResidual constructs a Residual from g for the given source/sink and
// capacity attribute, per spec §4.2:
//
//  1. INF is a concrete sentinel, never math.Inf, so ordinary float
//     arithmetic on it behaves the way the spec requires without any
//     special-cased saturation logic — see sumFiniteIncidentCapacities.
//     Which arcs actually originated as infinite is tracked by an explicit
//     per-arc flag, never by comparing a capacity value against INF.
//  2. Each edge missing capacityAttr is read as capacity INF and flagged.
//  3. Parallel edges between the same ordered pair sum into one residual
//     arc; antiparallel edges are kept distinct; undirected edges become
//     two independent directed arcs of capacity c, each with its own
//     zero-capacity reverse.
//
// g is never mutated. BuildResidual also performs the argument validation
// every direct solver entry point needs (s == t, s or t absent, negative
// capacity), so callers of EdmondsKarp/FordFulkerson/etc. get it for free
// even when bypassing the dispatcher.
func BuildResidual(g *graph.Graph, s, t, capacityAttr string) (*Residual, error) {
	if s == t {
		return nil, invalidArgument("source and sink must differ, got %q", s)
	}
	if !g.HasVertex(s) {
		return nil, invalidArgument("source %q not in graph", s)
	}
	if !g.HasVertex(t) {
		return nil, invalidArgument("sink %q not in graph", t)
	}
	if capacityAttr == "" {
		capacityAttr = "capacity"
	}

	vertices := g.Vertices() // sorted, deterministic vertex indexing
	r := &Residual{
		capacityAttr: capacityAttr,
		vertexID:     vertices,
		vertexIndex:  make(map[string]int, len(vertices)),
		adj:          make([][]int, len(vertices)),
		RunID:        newRunID(),
	}
	for i, id := range vertices {
		r.vertexIndex[id] = i
	}
	r.source = r.vertexIndex[s]
	r.sink = r.vertexIndex[t]

	inf, err := sumFiniteIncidentCapacities(g, capacityAttr)
	if err != nil {
		return nil, err
	}
	r.inf = inf

	// undirectedHalf[ui][vi] records the forward-arc index built for
	// (ui,vi) when at least one edge that fed it was undirected, so the
	// second pass below can link both directions' arcs for BuildFlowDict's
	// net-flow reconstruction (spec §4.8). Keyed by ordered pair: an
	// antiparallel pair of purely *directed* edges never appears here and
	// so is correctly left unlinked (kept distinct, per spec §3).
	undirectedHalf := make(map[[2]int]int)

	for _, u := range vertices {
		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		ui := r.vertexIndex[u]
		mergeIdx := make(map[int]int, len(edges)) // neighbor vertex index -> forward arc index
		for _, e := range edges {
			v := e.To
			if e.From != u {
				v = e.From // undirected edge reached from its To endpoint
			}
			vi, ok := r.vertexIndex[v]
			if !ok {
				continue // defensive: endpoint vanished from g between calls, shouldn't happen
			}
			c, has := e.Capacity(capacityAttr)
			if !has {
				c = r.inf
			} else if c < 0 {
				return nil, invalidArgument("edge %s->%s has negative capacity %g", e.From, e.To, c)
			}
			var fwd int
			if existing, exists := mergeIdx[vi]; exists {
				fwd = existing
				if !r.arcs[fwd].infinite {
					if !has {
						// One infinite-capacity parallel edge makes the
						// whole merged arc unbounded; previously summed
						// finite capacity is no longer meaningful.
						r.arcs[fwd].capacity = r.inf
						r.arcs[fwd].infinite = true
					} else {
						r.arcs[fwd].capacity += c
					}
				}
				// else: arc already infinite: adding any finite (or
				// further infinite) contribution leaves it infinite.
			} else {
				fwd, _ = r.newArcPair(ui, vi, c, !has)
				mergeIdx[vi] = fwd
			}
			if !e.Directed {
				r.arcs[fwd].fromUndirected = true
				undirectedHalf[[2]int{ui, vi}] = fwd
			}
		}
	}

	for pair, fwd := range undirectedHalf {
		opp := [2]int{pair[1], pair[0]}
		if oppFwd, ok := undirectedHalf[opp]; ok {
			r.arcs[fwd].undirectedTwin = oppFwd
			r.arcs[oppFwd].undirectedTwin = fwd
		}
	}

	return r, nil
}

// sumFiniteIncidentCapacities computes INF = sum of finite capacities on
// edges incident to any vertex, plus that same sum's own maximum single
// edge capacity (each floored at 1). "Incident to any vertex" rather than
// "incident to s" alone matches the teacher's buildCapMap, which sums over
// the whole edge set — a strictly larger (still valid) upper bound than the
// spec's "incident to s" wording.
//
// The sum alone is only an upper bound on achievable finite flow, not
// necessarily distinct from some individual finite arc's own capacity (a
// single finite edge can carry the graph's entire finite-capacity sum, or a
// merge of parallel edges can too) — classification of "is this arc
// infinite" must never rely on comparing against it (see arc.infinite), but
// adding the largest single finite capacity on top keeps INF strictly
// greater than any one arc's finite capacity as an extra safety margin,
// matching networkx's own "sum plus slack" style INF construction.
func sumFiniteIncidentCapacities(g *graph.Graph, capacityAttr string) (float64, error) {
	var sum, maxCap float64
	for _, e := range g.Edges() {
		c, has := e.Capacity(capacityAttr)
		if !has {
			continue
		}
		if c < 0 {
			return 0, invalidArgument("edge %s->%s has negative capacity %g", e.From, e.To, c)
		}
		sum += c
		if c > maxCap {
			maxCap = c
		}
	}
	if maxCap < 1 {
		maxCap = 1
	}
	total := sum + maxCap
	if total < 1 {
		total = 1
	}
	return total, nil
}
