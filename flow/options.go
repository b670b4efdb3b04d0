package flow

// Algorithm names the solver that produced (or should produce) a Residual.
type Algorithm string

const (
	AlgoEdmondsKarp            Algorithm = "edmonds_karp"
	AlgoFordFulkersonLegacy    Algorithm = "ford_fulkerson_legacy"
	AlgoShortestAugmentingPath Algorithm = "shortest_augmenting_path"
	AlgoPreflowPush            Algorithm = "preflow_push"
)

// FlowOptions configures a solver call. The zero value is usable: every
// solver entry point fills an empty CapacityAttr with "capacity", a
// non-positive Epsilon with 1e-9 and a nil Metrics with a no-op recorder
// (see withDefaults). Not every field applies to every solver; see each
// solver's doc comment.
type FlowOptions struct {
	// CapacityAttr names the numeric edge attribute read as capacity.
	// Defaults to "capacity" via DefaultOptions.
	CapacityAttr string

	// Epsilon is the tolerance used when comparing flow quantities for
	// termination (e.g. "excess == 0", "residual == 0"). Defaults to 1e-9.
	Epsilon float64

	// Verbose logs each augmentation / relabel / global-relabel pass via
	// the package logger, tagged with the run's RunID.
	Verbose bool

	// Cutoff is a cooperative soft stop: once flow_value >= *Cutoff the
	// solver returns early with flow_value in [Cutoff, 2*Cutoff], not
	// guaranteed optimal. Only EdmondsKarp and ShortestAugmentingPath
	// honor it; MinimumCut rejects it outright (spec's cut invalidation
	// rule — a cutoff flow has no associated minimum cut).
	Cutoff *float64

	// TwoPhase switches ShortestAugmentingPath to run a phase-two BFS
	// finisher after the heuristic first phase. Default false.
	TwoPhase bool

	// GlobalRelabelFreq scales PreflowPush's global-relabel interval to
	// freq*n work units. Negative is InvalidArgument. Nil means "use the
	// default frequency of 1.0"; set DisableGlobalRelabel to turn the
	// heuristic off entirely (the gap heuristic still applies).
	GlobalRelabelFreq   *float64
	DisableGlobalRelabel bool

	// ValueOnly lets PreflowPush skip the excess-return phase, yielding a
	// correct flow_value but not necessarily a conservation-respecting
	// flow_dict. Default false.
	ValueOnly bool

	// Metrics receives solver-lifecycle events. A nil Metrics is replaced
	// with a no-op recorder; see Metrics and flow/promflow for a
	// Prometheus-backed implementation.
	Metrics Metrics
}

// DefaultOptions returns the production-safe baseline: capacity attribute
// "capacity", epsilon 1e-9, no cutoff, single-phase SAP, default-frequency
// global relabel, no metrics recorder.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		CapacityAttr: "capacity",
		Epsilon:      1e-9,
	}
}

// withDefaults fills any zero-valued field that must never be empty,
// without clobbering explicit caller choices. Called once per solver entry
// point so direct callers of EdmondsKarp etc. (bypassing the dispatcher)
// still get sane defaults.
func withDefaults(o FlowOptions) FlowOptions {
	if o.CapacityAttr == "" {
		o.CapacityAttr = "capacity"
	}
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
	if o.Metrics == nil {
		o.Metrics = noopMetrics{}
	}
	return o
}

func (o FlowOptions) globalRelabelFreq() float64 {
	if o.GlobalRelabelFreq == nil {
		return 1.0
	}
	return *o.GlobalRelabelFreq
}
