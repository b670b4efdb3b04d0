package flow

import (
	"github.com/google/uuid"
)

// arc is one directed residual arc, addressed by its position in
// Residual.arcs. rev is the index of its twin: arcs[a.rev].rev == the
// index of a itself (spec §9's "arc arena" — stable integer indices in
// place of a pointer cycle). capacity never changes after construction;
// flow is the only mutable field.
type arc struct {
	to       int
	capacity float64
	flow     float64
	rev      int

	// infinite marks an arc that originated from at least one g edge
	// missing capacityAttr — its capacity field is set to Residual.inf as a
	// concrete number for ordinary float arithmetic to operate on, but
	// "is this arc unbounded" is always decided from this flag, never from
	// comparing capacity against inf: INF is only an upper bound, not
	// guaranteed distinct from every finite arc's own capacity (e.g. a
	// single finite edge whose capacity happens to equal the graph's total
	// finite-capacity sum), so an equality test would misclassify it.
	infinite bool

	// fromUndirected marks an arc summed, in whole or part, from an
	// undirected g edge. undirectedTwin is the index of the arc running
	// the opposite direction between the same two vertices when both
	// sides trace back to an undirected edge (-1 otherwise); solving
	// ignores both fields entirely — they exist only so BuildFlowDict can
	// net out+back flow on an undirected edge into the single non-negative
	// value spec §4.8 requires, without also netting genuine antiparallel
	// directed edges, which must stay distinct.
	fromUndirected bool
	undirectedTwin int
}

func (a *arc) residual() float64 {
	return a.capacity - a.flow
}

// Residual is the mutable residual graph a solver operates on. It is built
// once by BuildResidual, mutated by exactly one solver call, then read-only.
// Per spec §5, a Residual is never shared live across concurrent solver
// calls; build one per call.
type Residual struct {
	// RunID correlates Verbose log lines and Metrics events from one
	// solver invocation; it has no bearing on the computed flow.
	RunID uuid.UUID

	// Algorithm names the solver that produced this Residual. Zero value
	// ("") until a solver sets it.
	Algorithm Algorithm

	// FlowValue is the net flow out of the source once the solver has
	// terminated.
	FlowValue float64

	// FlowDict is populated eagerly only by Ford-Fulkerson (legacy);
	// other solvers leave it nil and callers reconstruct it on demand via
	// BuildFlowDict.
	FlowDict map[string]map[string]float64

	source, sink int
	capacityAttr string
	inf          float64

	vertexID    []string
	vertexIndex map[string]int
	arcs        []arc
	// adj[v] lists, in construction order, the indices into arcs of every
	// residual arc leaving vertex v — forward arcs in G's own edge
	// insertion order, interleaved with the synthetic reverse arcs
	// created alongside arcs leaving other vertices. Construction order
	// is deterministic for a fixed G, which is what spec §5 requires.
	adj [][]int
}

func (r *Residual) numVertices() int { return len(r.vertexID) }

func (r *Residual) idOf(v int) string { return r.vertexID[v] }

func (r *Residual) indexOf(id string) (int, bool) {
	i, ok := r.vertexIndex[id]
	return i, ok
}

// isInfArc reports whether arc i originated with infinite capacity — used
// by Unbounded detection and by every solver's saturation check. Reads the
// explicit infinite flag, never capacity == r.inf: INF is an upper bound,
// not a value guaranteed to differ from every finite arc's own capacity.
func (r *Residual) isInfArc(i int) bool {
	return r.arcs[i].infinite
}

// push moves delta units of flow along arc i, maintaining skew symmetry
// (I2: arc.flow + arc.reverse.flow == 0) via the twin's rev index.
func (r *Residual) push(i int, delta float64) {
	r.arcs[i].flow += delta
	rv := r.arcs[i].rev
	r.arcs[rv].flow -= delta
}

func (r *Residual) residualCap(i int) float64 {
	return r.arcs[i].residual()
}

func (r *Residual) newArcPair(u, v int, capacity float64, infinite bool) (fwd, rev int) {
	fwd = len(r.arcs)
	r.arcs = append(r.arcs, arc{to: v, capacity: capacity, infinite: infinite, undirectedTwin: -1})
	rev = len(r.arcs)
	r.arcs = append(r.arcs, arc{to: u, capacity: 0, undirectedTwin: -1})
	r.arcs[fwd].rev = rev
	r.arcs[rev].rev = fwd
	r.adj[u] = append(r.adj[u], fwd)
	r.adj[v] = append(r.adj[v], rev)
	return fwd, rev
}

// newRunID assigns RunID once; a build helper, not exported.
func newRunID() uuid.UUID {
	return uuid.New()
}
