package flow

import (
	"github.com/arclane/flowmax/graph"
)

// EdmondsKarp computes maximum s-t flow by repeated BFS augmenting paths:
// the shortest (fewest-arc) augmenting path is found and saturated on each
// iteration, giving O(V*E^2) overall. BFS visits each vertex's residual
// neighbours in insertion order, so two calls on the same graph choose
// identical augmenting paths every time.
//
// Honors opts.Cutoff: once FlowValue >= *Cutoff the solver stops early,
// returning a Residual whose FlowValue lies in [Cutoff, 2*Cutoff] but is
// not guaranteed optimal.
//
// Returns ErrUnbounded if an s-t path made entirely of infinite-capacity
// arcs exists.
func EdmondsKarp(g *graph.Graph, s, t string, opts FlowOptions) (*Residual, error) {
	opts = withDefaults(opts)
	r, err := BuildResidual(g, s, t, opts.CapacityAttr)
	if err != nil {
		return nil, err
	}
	r.Algorithm = AlgoEdmondsKarp
	runID := r.RunID.String()
	opts.Metrics.SolveStarted(r.Algorithm, runID)

	if err := checkUnbounded(r); err != nil {
		opts.Metrics.SolveFinished(r.Algorithm, runID, 0, err)
		return nil, err
	}

	for {
		if opts.Cutoff != nil && r.FlowValue >= *opts.Cutoff {
			verbosef(opts, runID, "cutoff reached at flow_value=%g", r.FlowValue)
			break
		}
		parentArc, visited := forwardResidualBFS(r, r.source, opts.Epsilon)
		if !visited[r.sink] {
			break
		}
		delta := pathBottleneck(r, parentArc, r.sink)
		if pathAllInfinite(r, parentArc, r.sink) {
			err := unboundedf("augmenting path saturated entirely by infinite-capacity arcs")
			opts.Metrics.SolveFinished(r.Algorithm, runID, r.FlowValue, err)
			return nil, err
		}
		if opts.Cutoff != nil {
			if room := 2*(*opts.Cutoff) - r.FlowValue; delta > room {
				delta = room // keep FlowValue within [Cutoff, 2*Cutoff]
			}
		}
		augmentPath(r, parentArc, r.sink, delta)
		r.FlowValue += delta
		opts.Metrics.Augmented(r.Algorithm, delta)
		verbosef(opts, runID, "augmented by %g, flow_value=%g", delta, r.FlowValue)
	}

	opts.Metrics.SolveFinished(r.Algorithm, runID, r.FlowValue, nil)
	return r, nil
}
