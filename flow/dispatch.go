package flow

import (
	"github.com/arclane/flowmax/graph"
)

// defaultAlgorithm is the solver used when the caller leaves Algorithm
// unset, matching the language-neutral signatures of spec §6
// (flow_func=SAP by default).
const defaultAlgorithm Algorithm = AlgoShortestAugmentingPath

// MaximumFlow computes the maximum s-t flow value and a full flow
// assignment. algo selects the solver; the zero value Algorithm("") uses
// ShortestAugmentingPath. Fails with InvalidArgumentError for s == t, a
// missing endpoint, an unrecognized algo, or an option not applicable to
// the solver in effect (whether algo is explicit or left at its default).
func MaximumFlow(g *graph.Graph, s, t string, algo Algorithm, opts FlowOptions) (float64, map[string]map[string]float64, error) {
	r, err := runSolver(g, s, t, algo, opts)
	if err != nil {
		return 0, nil, err
	}
	if r.FlowDict != nil {
		return r.FlowValue, r.FlowDict, nil
	}
	return r.FlowValue, BuildFlowDict(g, r), nil
}

// MaximumFlowValue computes only the maximum s-t flow value, skipping flow
// dictionary reconstruction.
func MaximumFlowValue(g *graph.Graph, s, t string, algo Algorithm, opts FlowOptions) (float64, error) {
	r, err := runSolver(g, s, t, algo, opts)
	if err != nil {
		return 0, err
	}
	return r.FlowValue, nil
}

// MinimumCut computes the minimum s-t cut value and its (S,T) vertex
// partition. Rejects opts.Cutoff outright: a cutoff flow need not induce a
// valid minimum cut (spec §4.1).
func MinimumCut(g *graph.Graph, s, t string, algo Algorithm, opts FlowOptions) (float64, Cut, error) {
	if opts.Cutoff != nil {
		return 0, Cut{}, invalidArgument("cutoff is not accepted by minimum_cut")
	}
	r, err := runSolver(g, s, t, algo, opts)
	if err != nil {
		return 0, Cut{}, err
	}
	cut := ExtractCut(g, r, withDefaults(opts).Epsilon)
	return cut.Value, cut, nil
}

// MinimumCutValue computes only the minimum s-t cut value.
func MinimumCutValue(g *graph.Graph, s, t string, algo Algorithm, opts FlowOptions) (float64, error) {
	_, cut, err := MinimumCut(g, s, t, algo, opts)
	if err != nil {
		return 0, err
	}
	return cut.Value, nil
}

func runSolver(g *graph.Graph, s, t string, algo Algorithm, opts FlowOptions) (*Residual, error) {
	if algo == "" {
		algo = defaultAlgorithm
	}
	if err := validateOptionsForAlgorithm(algo, opts); err != nil {
		return nil, err
	}

	switch algo {
	case AlgoEdmondsKarp:
		return EdmondsKarp(g, s, t, opts)
	case AlgoFordFulkersonLegacy:
		return FordFulkerson(g, s, t, opts)
	case AlgoShortestAugmentingPath:
		return ShortestAugmentingPath(g, s, t, opts)
	case AlgoPreflowPush:
		return PreflowPush(g, s, t, opts)
	default:
		return nil, invalidArgument("unrecognized flow_func %q", algo)
	}
}

// validateOptionsForAlgorithm rejects options the chosen solver ignores,
// per spec §4.1's "unknown kwargs when the default solver is in effect" —
// generalized here to any explicit algo, not just the default, since a Go
// caller has no **kwargs to distinguish "passed explicitly" from "left at
// the zero value" the way the source's keyword-argument dispatch did.
func validateOptionsForAlgorithm(algo Algorithm, opts FlowOptions) error {
	switch algo {
	case AlgoEdmondsKarp:
		if opts.TwoPhase || opts.GlobalRelabelFreq != nil || opts.DisableGlobalRelabel || opts.ValueOnly {
			return invalidArgument("edmonds_karp does not accept two_phase, global_relabel_freq, or value_only")
		}
	case AlgoFordFulkersonLegacy:
		if opts.Cutoff != nil || opts.TwoPhase || opts.GlobalRelabelFreq != nil || opts.DisableGlobalRelabel || opts.ValueOnly {
			return invalidArgument("ford_fulkerson accepts neither cutoff nor any preflow_push/SAP-only option")
		}
	case AlgoShortestAugmentingPath:
		if opts.GlobalRelabelFreq != nil || opts.DisableGlobalRelabel || opts.ValueOnly {
			return invalidArgument("shortest_augmenting_path does not accept preflow_push-only options")
		}
	case AlgoPreflowPush:
		if opts.Cutoff != nil || opts.TwoPhase {
			return invalidArgument("preflow_push does not accept cutoff or two_phase")
		}
		if opts.GlobalRelabelFreq != nil && *opts.GlobalRelabelFreq < 0 {
			return invalidArgument("global_relabel_freq must be non-negative, got %g", *opts.GlobalRelabelFreq)
		}
	}
	return nil
}
