// Package promflow is an optional Prometheus-backed implementation of
// flow.Metrics. The core flow package never imports Prometheus directly —
// only this subpackage does, so embedding applications that don't want the
// dependency never pull it in transitively.
package promflow

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/arclane/flowmax/flow"
)

// Recorder implements flow.Metrics with Prometheus collectors: a
// per-algorithm augmentation/push counter, a solves-by-outcome counter, and
// a gauge for the most recent terminal flow_value per algorithm. A
// solve-duration histogram is deliberately not included — FlowOptions
// carries no timing hook, so wrap SolveStarted/SolveFinished at the call
// site if wall-clock duration matters.
type Recorder struct {
	augmentations *prometheus.CounterVec
	solves        *prometheus.CounterVec
	lastFlowValue *prometheus.GaugeVec
}

// NewRecorder builds a Recorder and registers its collectors with reg. A
// nil reg uses prometheus.DefaultRegisterer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		augmentations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flowmax",
			Name:      "augmentations_total",
			Help:      "Number of augmenting paths (or pushes, for preflow_push) applied per algorithm.",
		}, []string{"algorithm"}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flowmax",
			Name:      "solves_total",
			Help:      "Number of solver invocations per algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		lastFlowValue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "flowmax",
			Name:      "last_flow_value",
			Help:      "Terminal flow_value of the most recent successful solve per algorithm.",
		}, []string{"algorithm"}),
	}
	reg.MustRegister(r.augmentations, r.solves, r.lastFlowValue)
	return r
}

func (r *Recorder) SolveStarted(flow.Algorithm, string) {}

func (r *Recorder) Augmented(algorithm flow.Algorithm, delta float64) {
	r.augmentations.WithLabelValues(string(algorithm)).Inc()
}

func (r *Recorder) SolveFinished(algorithm flow.Algorithm, runID string, flowValue float64, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.solves.WithLabelValues(string(algorithm), outcome).Inc()
	if err == nil {
		r.lastFlowValue.WithLabelValues(string(algorithm)).Set(flowValue)
	}
}

var _ flow.Metrics = (*Recorder)(nil)
