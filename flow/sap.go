package flow

import (
	"github.com/arclane/flowmax/graph"
)

// ShortestAugmentingPath computes maximum s-t flow using per-vertex
// distance labels and an advance/retreat main loop (O(V^2*E)):
//
//   - d[v] lower-bounds v's residual distance to t; initialized by a
//     reverse BFS from t over arcs with positive residual.
//   - Advance: from u, walk the first admissible arc (u,v) found at or
//     after u's current-arc pointer — residual(u,v) > 0 and d[u] ==
//     d[v]+1 — onto the path stack. Reaching t augments the whole stack
//     by its bottleneck and restarts from s.
//   - Retreat: when u has no admissible arc, relabel d[u] to 1 plus the
//     minimum d[v] over any arc (u,v) with positive residual (n if none),
//     reset u's current-arc pointer, and back up one step on the path
//     stack (or terminate, at s, once d[s] >= n).
//
// Honors opts.Cutoff exactly as EdmondsKarp does.
//
// opts.TwoPhase runs an extra residual-BFS augmentation pass (identical in
// shape to EdmondsKarp's loop) once the advance/retreat phase terminates;
// it is skipped when that phase stopped at opts.Cutoff.
// Because advance/retreat already halts only once d[s] >= n — which by
// max-flow/min-cut duality means no augmenting path remains and the
// current flow is already optimal — this pass is a verifying no-op; see
// DESIGN.md for why this spec's literal two-stage description (phase one
// "heuristically" overshooting the true max flow) is not implemented as
// written.
func ShortestAugmentingPath(g *graph.Graph, s, t string, opts FlowOptions) (*Residual, error) {
	opts = withDefaults(opts)
	r, err := BuildResidual(g, s, t, opts.CapacityAttr)
	if err != nil {
		return nil, err
	}
	r.Algorithm = AlgoShortestAugmentingPath
	runID := r.RunID.String()
	opts.Metrics.SolveStarted(r.Algorithm, runID)

	if err := checkUnbounded(r); err != nil {
		opts.Metrics.SolveFinished(r.Algorithm, runID, 0, err)
		return nil, err
	}

	if err := sapAdvanceRetreat(r, opts, runID); err != nil {
		opts.Metrics.SolveFinished(r.Algorithm, runID, r.FlowValue, err)
		return nil, err
	}

	if opts.TwoPhase && (opts.Cutoff == nil || r.FlowValue < *opts.Cutoff) {
		if err := sapPhaseTwoFinisher(r, opts, runID); err != nil {
			opts.Metrics.SolveFinished(r.Algorithm, runID, r.FlowValue, err)
			return nil, err
		}
	}

	opts.Metrics.SolveFinished(r.Algorithm, runID, r.FlowValue, nil)
	return r, nil
}

func sapAdvanceRetreat(r *Residual, opts FlowOptions, runID string) error {
	n := r.numVertices()
	eps := opts.Epsilon
	d := reverseResidualBFS(r, r.sink, eps)
	curArc := make([]int, n)

	pathVert := []int{r.source}
	pathArc := make([]int, 0, n)

	for {
		if d[r.source] >= n {
			return nil
		}
		if opts.Cutoff != nil && r.FlowValue >= *opts.Cutoff {
			verbosef(opts, runID, "cutoff reached at flow_value=%g", r.FlowValue)
			return nil
		}

		u := pathVert[len(pathVert)-1]
		if u == r.sink {
			delta := r.inf
			allInfinite := true
			for _, ai := range pathArc {
				if c := r.residualCap(ai); c < delta {
					delta = c
				}
				if !r.isInfArc(ai) {
					allInfinite = false
				}
			}
			if allInfinite {
				return unboundedf("augmenting path saturated entirely by infinite-capacity arcs")
			}
			if opts.Cutoff != nil {
				if room := 2*(*opts.Cutoff) - r.FlowValue; delta > room {
					delta = room // keep FlowValue within [Cutoff, 2*Cutoff]
				}
			}
			for _, ai := range pathArc {
				r.push(ai, delta)
			}
			r.FlowValue += delta
			opts.Metrics.Augmented(r.Algorithm, delta)
			verbosef(opts, runID, "augmented by %g, flow_value=%g", delta, r.FlowValue)
			pathVert = pathVert[:1]
			pathArc = pathArc[:0]
			continue
		}

		advanced := false
		for curArc[u] < len(r.adj[u]) {
			ai := r.adj[u][curArc[u]]
			v := r.arcs[ai].to
			if r.residualCap(ai) > eps && d[u] == d[v]+1 {
				pathVert = append(pathVert, v)
				pathArc = append(pathArc, ai)
				advanced = true
				break
			}
			curArc[u]++
		}
		if advanced {
			continue
		}

		newD := n
		for _, ai := range r.adj[u] {
			if r.residualCap(ai) <= eps {
				continue
			}
			if v := r.arcs[ai].to; d[v]+1 < newD {
				newD = d[v] + 1
			}
		}
		d[u] = newD
		curArc[u] = 0

		if u == r.source {
			if d[r.source] >= n {
				return nil
			}
			continue
		}
		pathVert = pathVert[:len(pathVert)-1]
		pathArc = pathArc[:len(pathArc)-1]
	}
}

func sapPhaseTwoFinisher(r *Residual, opts FlowOptions, runID string) error {
	for {
		parentArc, visited := forwardResidualBFS(r, r.source, opts.Epsilon)
		if !visited[r.sink] {
			return nil
		}
		delta := pathBottleneck(r, parentArc, r.sink)
		if pathAllInfinite(r, parentArc, r.sink) {
			return unboundedf("augmenting path saturated entirely by infinite-capacity arcs")
		}
		augmentPath(r, parentArc, r.sink, delta)
		r.FlowValue += delta
		opts.Metrics.Augmented(r.Algorithm, delta)
		verbosef(opts, runID, "phase-two augmented by %g, flow_value=%g", delta, r.FlowValue)
	}
}
