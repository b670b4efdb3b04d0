package flow

import (
	"github.com/arclane/flowmax/graph"
)

// FordFulkerson computes maximum s-t flow via repeated DFS augmenting
// paths. Unlike the other three solvers it carries no polynomial-time
// guarantee — it is kept for correctness comparison against the other
// solvers and for legacy callers. Uniquely among the four, it eagerly
// reconstructs its FlowDict before returning and tags the Residual
// AlgoFordFulkersonLegacy, so callers know to read FlowDict directly
// rather than call BuildFlowDict themselves.
//
// FordFulkerson does not accept a Cutoff; a DFS path search gives no
// useful bound on how far from optimal an early stop would land.
func FordFulkerson(g *graph.Graph, s, t string, opts FlowOptions) (*Residual, error) {
	opts = withDefaults(opts)
	r, err := BuildResidual(g, s, t, opts.CapacityAttr)
	if err != nil {
		return nil, err
	}
	r.Algorithm = AlgoFordFulkersonLegacy
	runID := r.RunID.String()
	opts.Metrics.SolveStarted(r.Algorithm, runID)

	if err := checkUnbounded(r); err != nil {
		opts.Metrics.SolveFinished(r.Algorithm, runID, 0, err)
		return nil, err
	}

	n := r.numVertices()
	for {
		visited := make([]bool, n)
		parentArc := make([]int, n)
		for i := range parentArc {
			parentArc[i] = -1
		}
		if !dfsAugmentingPath(r, r.source, r.sink, opts.Epsilon, visited, parentArc) {
			break
		}
		delta := pathBottleneck(r, parentArc, r.sink)
		if pathAllInfinite(r, parentArc, r.sink) {
			err := unboundedf("augmenting path saturated entirely by infinite-capacity arcs")
			opts.Metrics.SolveFinished(r.Algorithm, runID, r.FlowValue, err)
			return nil, err
		}
		augmentPath(r, parentArc, r.sink, delta)
		r.FlowValue += delta
		opts.Metrics.Augmented(r.Algorithm, delta)
		verbosef(opts, runID, "augmented by %g, flow_value=%g", delta, r.FlowValue)
	}

	r.FlowDict = BuildFlowDict(g, r)
	opts.Metrics.SolveFinished(r.Algorithm, runID, r.FlowValue, nil)
	return r, nil
}

// dfsAugmentingPath recurses in residual-adjacency insertion order,
// recording each step's arc index in parentArc, and returns true as soon
// as target is reached.
func dfsAugmentingPath(r *Residual, u, target int, eps float64, visited []bool, parentArc []int) bool {
	if u == target {
		return true
	}
	visited[u] = true
	for _, ai := range r.adj[u] {
		if r.residualCap(ai) <= eps {
			continue
		}
		v := r.arcs[ai].to
		if visited[v] {
			continue
		}
		parentArc[v] = ai
		if dfsAugmentingPath(r, v, target, eps, visited, parentArc) {
			return true
		}
	}
	return false
}
