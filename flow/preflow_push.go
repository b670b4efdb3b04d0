package flow

import (
	"github.com/arclane/flowmax/graph"
)

// PreflowPush computes maximum s-t flow with the highest-label push-relabel
// method: O(V^2*sqrt(E)).
//
// height[v] lower-bounds v's residual distance to t (height[s] fixed at n);
// excess[v] >= 0 is inflow minus outflow at a non-terminal vertex during
// execution. Every out-arc of s is saturated up front. While an active
// vertex (excess > 0, v != s,t) remains, the highest-height one is
// processed: Push along an admissible arc (height[u] == height[v]+1,
// residual > 0) moving min(excess[u], residual); Relabel when no admissible
// arc exists, raising height[u] to 1 + min height[v] over residual-positive
// arcs (2n+1 if none). Ties among equal-height active vertices favor the
// most-recently-activated one (LIFO per-height bucket).
//
// Two mandatory heuristics keep this near its complexity bound:
//   - Global relabel, every opts.globalRelabelFreq()*n work units (or
//     disabled via opts.DisableGlobalRelabel): a fresh reverse BFS from t
//     gives exact heights for every t-reachable vertex; a second reverse
//     BFS from s then finds vertices that can only reach s and elevates
//     their height to n+dist-to-s, so their excess starts draining toward
//     s instead of idling at height n indefinitely.
//   - Gap heuristic: when a height level 0 < h < n empties out entirely,
//     every vertex at a height strictly between h and n is provably
//     disconnected from t and is lifted straight to n+1.
//
// opts.ValueOnly lets the solver stop as soon as a global relabel shows no
// remaining active vertex can reach t — FlowValue is already final at that
// point, but any excess still parked at intermediate vertices is never
// drained back to s, so the resulting Residual does not satisfy
// conservation (I3) and must not be used to reconstruct a FlowDict.
func PreflowPush(g *graph.Graph, s, t string, opts FlowOptions) (*Residual, error) {
	opts = withDefaults(opts)
	if opts.GlobalRelabelFreq != nil && *opts.GlobalRelabelFreq < 0 {
		return nil, invalidArgument("global_relabel_freq must be non-negative, got %g", *opts.GlobalRelabelFreq)
	}
	r, err := BuildResidual(g, s, t, opts.CapacityAttr)
	if err != nil {
		return nil, err
	}
	r.Algorithm = AlgoPreflowPush
	runID := r.RunID.String()
	opts.Metrics.SolveStarted(r.Algorithm, runID)

	if err := checkUnbounded(r); err != nil {
		opts.Metrics.SolveFinished(r.Algorithm, runID, 0, err)
		return nil, err
	}

	pp := newPushRelabelState(r, opts)
	pp.run()

	r.FlowValue = pp.excess[r.sink]
	verbosef(opts, runID, "terminated with flow_value=%g", r.FlowValue)
	opts.Metrics.SolveFinished(r.Algorithm, runID, r.FlowValue, nil)
	return r, nil
}

type pushRelabelState struct {
	r   *Residual
	o   FlowOptions
	n   int
	eps float64

	height []int
	excess []float64
	curArc []int

	buckets  [][]int
	maxH     int
	countByH []int

	workUnits   float64
	workPerGlob float64
	valueOnly   bool
	runID       string
}

func newPushRelabelState(r *Residual, o FlowOptions) *pushRelabelState {
	n := r.numVertices()
	bucketCount := 2*n + 2
	pp := &pushRelabelState{
		r: r, o: o, n: n, eps: o.Epsilon,
		height:    make([]int, n),
		excess:    make([]float64, n),
		curArc:    make([]int, n),
		buckets:   make([][]int, bucketCount),
		countByH:  make([]int, bucketCount),
		maxH:      -1,
		valueOnly: o.ValueOnly,
		runID:     r.RunID.String(),
	}
	pp.workPerGlob = o.globalRelabelFreq() * float64(n)
	if pp.workPerGlob <= 0 {
		pp.workPerGlob = float64(n) // treat freq=0 as "relabel often" without dividing by zero
	}

	hT := reverseResidualBFS(r, r.sink, pp.eps)
	copy(pp.height, hT)
	pp.height[r.source] = n
	for v := 0; v < n; v++ {
		if v != r.source && v != r.sink {
			pp.countByH[pp.height[v]]++
		}
	}

	for _, ai := range r.adj[r.source] {
		c := r.residualCap(ai)
		if c <= pp.eps {
			continue
		}
		r.push(ai, c)
		v := r.arcs[ai].to
		pp.excess[v] += c
		pp.excess[r.source] -= c
		pp.activate(v)
	}

	return pp
}

func (pp *pushRelabelState) setHeight(u, newH int) {
	if newH >= len(pp.buckets) {
		pp.grow(newH)
	}
	if u != pp.r.source && u != pp.r.sink {
		old := pp.height[u]
		pp.countByH[old]--
		pp.countByH[newH]++
		if pp.countByH[old] == 0 && old > 0 && old < pp.n {
			pp.gapLift(old)
		}
	}
	pp.height[u] = newH
}

func (pp *pushRelabelState) grow(upto int) {
	for upto >= len(pp.buckets) {
		pp.buckets = append(pp.buckets, nil)
		pp.countByH = append(pp.countByH, 0)
	}
}

// gapLift implements the gap heuristic: once height h has zero occupants,
// every non-terminal vertex strictly between h and n is unreachable from t
// and is lifted to n+1 in one batch, without needing to recheck each one
// individually against the residual graph.
func (pp *pushRelabelState) gapLift(h int) {
	for v := 0; v < pp.n; v++ {
		if v == pp.r.source || v == pp.r.sink {
			continue
		}
		if pp.height[v] > h && pp.height[v] < pp.n {
			pp.countByH[pp.height[v]]--
			pp.height[v] = pp.n + 1
			pp.countByH[pp.n+1]++
		}
	}
}

func (pp *pushRelabelState) activate(v int) {
	if v == pp.r.source || v == pp.r.sink || pp.excess[v] <= pp.eps {
		return
	}
	h := pp.height[v]
	if h >= len(pp.buckets) {
		pp.grow(h)
	}
	pp.buckets[h] = append(pp.buckets[h], v)
	if h > pp.maxH {
		pp.maxH = h
	}
}

func (pp *pushRelabelState) popHighest() (int, bool) {
	for pp.maxH >= 0 {
		b := pp.buckets[pp.maxH]
		for len(b) > 0 {
			u := b[len(b)-1]
			b = b[:len(b)-1]
			pp.buckets[pp.maxH] = b
			if pp.excess[u] > pp.eps && pp.height[u] == pp.maxH {
				return u, true
			}
		}
		pp.maxH--
	}
	return -1, false
}

func (pp *pushRelabelState) run() {
	for {
		u, ok := pp.popHighest()
		if !ok {
			return
		}
		pp.dischargeOne(u)

		if pp.workUnits >= pp.workPerGlob && !pp.o.DisableGlobalRelabel {
			if pp.globalRelabel() {
				return // ValueOnly early exit: no active vertex can still reach t
			}
			pp.workUnits = 0
		}
	}
}

// dischargeOne pushes u's excess out along admissible arcs starting at its
// current-arc pointer, relabeling whenever no admissible arc remains, and
// keeps going until u's excess is gone; u is never re-queued from here.
func (pp *pushRelabelState) dischargeOne(u int) {
	r := pp.r
	adj := r.adj[u]
	for pp.excess[u] > pp.eps {
		if pp.curArc[u] >= len(adj) {
			pp.relabel(u)
			pp.curArc[u] = 0
			pp.workUnits += float64(len(adj))
			continue
		}
		ai := adj[pp.curArc[u]]
		v := r.arcs[ai].to
		if rc := r.residualCap(ai); rc > pp.eps && pp.height[u] == pp.height[v]+1 {
			delta := pp.excess[u]
			if rc < delta {
				delta = rc
			}
			r.push(ai, delta)
			pp.excess[u] -= delta
			pp.excess[v] += delta
			pp.o.Metrics.Augmented(pp.r.Algorithm, delta)
			verbosef(pp.o, pp.runID, "pushed %g from %s to %s", delta, r.idOf(u), r.idOf(v))
			pp.activate(v)
			pp.workUnits++
			if pp.excess[u] <= pp.eps {
				return
			}
			continue
		}
		pp.curArc[u]++
	}
}

func (pp *pushRelabelState) relabel(u int) {
	r := pp.r
	newH := 2*pp.n + 1
	for _, ai := range r.adj[u] {
		if r.residualCap(ai) <= pp.eps {
			continue
		}
		if h := pp.height[r.arcs[ai].to] + 1; h < newH {
			newH = h
		}
	}
	pp.setHeight(u, newH)
	verbosef(pp.o, pp.runID, "relabeled %s to height %d", r.idOf(u), newH)
}

// globalRelabel recomputes exact heights from scratch; returns true when
// opts.ValueOnly is set and this snapshot proves no remaining active
// vertex can reach t, meaning the caller should stop immediately.
func (pp *pushRelabelState) globalRelabel() bool {
	r := pp.r
	n := pp.n
	hT := reverseResidualBFS(r, r.sink, pp.eps)

	noneReachable := true
	for v := 0; v < n; v++ {
		if v == r.source || v == r.sink {
			continue
		}
		if pp.excess[v] > pp.eps && hT[v] < n {
			noneReachable = false
			break
		}
	}
	if pp.valueOnly && noneReachable {
		return true
	}

	for v := 0; v < n; v++ {
		if v != r.source && v != r.sink {
			pp.countByH[pp.height[v]]--
		}
	}
	for v := 0; v < n; v++ {
		pp.height[v] = hT[v]
	}
	pp.height[r.source] = n

	hS := reverseResidualBFS(r, r.source, pp.eps)
	for v := 0; v < n; v++ {
		if v == r.source || v == r.sink {
			continue
		}
		if pp.height[v] == n && hS[v] < n {
			pp.height[v] = n + hS[v]
		}
	}
	for v := 0; v < n; v++ {
		if v != r.source && v != r.sink {
			pp.grow(pp.height[v])
			pp.countByH[pp.height[v]]++
		}
		pp.curArc[v] = 0
	}

	pp.buckets = make([][]int, len(pp.buckets))
	pp.maxH = -1
	for v := 0; v < n; v++ {
		if pp.excess[v] > pp.eps {
			pp.activate(v)
		}
	}

	verbosef(pp.o, pp.runID, "global relabel complete")
	return false
}
