package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arclane/flowmax/flow"
	"github.com/arclane/flowmax/graph"
)

type SolverSuite struct {
	suite.Suite
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

func (s *SolverSuite) TestNegativeCapacityIsInvalidArgument() {
	g := graph.NewGraph(graph.WithDirected(true))
	_, _ = g.AddEdge("s", "t", map[string]float64{"capacity": -1})
	_, err := flow.BuildResidual(g, "s", "t", "capacity")
	var invalidArg *flow.InvalidArgumentError
	require.ErrorAs(s.T(), err, &invalidArg)
}

func (s *SolverSuite) TestMinimumCutRejectsCutoff() {
	g, src, sink := funnel()
	k := 10.0
	_, _, err := flow.MinimumCut(g, src, sink, flow.AlgoShortestAugmentingPath, flow.FlowOptions{CapacityAttr: "capacity", Epsilon: 1e-9, Cutoff: &k})
	var invalidArg *flow.InvalidArgumentError
	require.ErrorAs(s.T(), err, &invalidArg)
}

func (s *SolverSuite) TestUnrecognizedAlgorithmIsInvalidArgument() {
	g, src, sink := funnel()
	_, _, err := flow.MaximumFlow(g, src, sink, flow.Algorithm("quantum_flow"), flow.DefaultOptions())
	var invalidArg *flow.InvalidArgumentError
	require.ErrorAs(s.T(), err, &invalidArg)
}

func (s *SolverSuite) TestEdmondsKarpRejectsPreflowPushOptions() {
	g, src, sink := funnel()
	freq := 2.0
	opts := flow.DefaultOptions()
	opts.GlobalRelabelFreq = &freq
	_, _, err := flow.MaximumFlow(g, src, sink, flow.AlgoEdmondsKarp, opts)
	var invalidArg *flow.InvalidArgumentError
	require.ErrorAs(s.T(), err, &invalidArg)
}

func (s *SolverSuite) TestPreflowPushNegativeGlobalRelabelFreq() {
	g, src, sink := funnel()
	bad := -1.0
	opts := flow.DefaultOptions()
	opts.GlobalRelabelFreq = &bad
	_, err := flow.PreflowPush(g, src, sink, opts)
	var invalidArg *flow.InvalidArgumentError
	require.ErrorAs(s.T(), err, &invalidArg)
}

func (s *SolverSuite) TestPreflowPushValueOnlyMatchesFullSolve() {
	g, src, sink := cormenExample("capacity")

	full, err := flow.PreflowPush(g, src, sink, flow.DefaultOptions())
	require.NoError(s.T(), err)

	opts := flow.DefaultOptions()
	opts.ValueOnly = true
	partial, err := flow.PreflowPush(g, src, sink, opts)
	require.NoError(s.T(), err)

	require.InDelta(s.T(), full.FlowValue, partial.FlowValue, 1e-6)
}

func (s *SolverSuite) TestFordFulkersonEagerFlowDict() {
	g, src, sink := cormenExample("capacity")
	r, err := flow.FordFulkerson(g, src, sink, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.NotNil(s.T(), r.FlowDict)
	require.Equal(s.T(), flow.AlgoFordFulkersonLegacy, r.Algorithm)
	require.InDelta(s.T(), 23.0, r.FlowValue, 1e-6)
}

func (s *SolverSuite) TestDirectEdmondsKarpAgreesWithDispatcher() {
	g, src, sink := cormenExample("capacity")
	r, err := flow.EdmondsKarp(g, src, sink, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), flow.AlgoEdmondsKarp, r.Algorithm)
	require.InDelta(s.T(), 23.0, r.FlowValue, 1e-6)

	viaDispatcher, err := flow.MaximumFlowValue(g, src, sink, flow.AlgoEdmondsKarp, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.InDelta(s.T(), viaDispatcher, r.FlowValue, 1e-6)
}

func (s *SolverSuite) TestUndirectedFlowDictNetsOppositeDirections() {
	// A single undirected edge, built as two residual arcs, must be
	// reported as one net non-negative value mirrored on each side
	// (spec §4.8), not as two independently-summed values.
	g, src, sink := trivialUndirected()
	_, fd, err := flow.MaximumFlow(g, src, sink, flow.AlgoShortestAugmentingPath, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.InDelta(s.T(), fd["1"]["2"], fd["2"]["1"], 1e-9)
	require.GreaterOrEqual(s.T(), fd["1"]["2"], 0.0)
}

func (s *SolverSuite) TestAntiparallelEdgesKeptDistinct() {
	g := graph.NewGraph(graph.WithDirected(true))
	_, _ = g.AddEdge("u", "v", map[string]float64{"capacity": 3})
	_, _ = g.AddEdge("v", "u", map[string]float64{"capacity": 5})
	value, _, err := flow.MaximumFlow(g, "u", "v", flow.AlgoShortestAugmentingPath, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 3.0, value, 1e-6)
}

func (s *SolverSuite) TestParallelEdgesSumCapacity() {
	g := graph.NewGraph(graph.WithDirected(true), graph.WithMultiEdges())
	_, _ = g.AddEdge("u", "v", map[string]float64{"capacity": 3})
	_, _ = g.AddEdge("u", "v", map[string]float64{"capacity": 4})
	value, _, err := flow.MaximumFlow(g, "u", "v", flow.AlgoShortestAugmentingPath, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 7.0, value, 1e-6)
}
