package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arclane/flowmax/graph"
)

type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestAddEdgeMirrorsUndirected() {
	g := graph.NewGraph()
	_, err := g.AddEdge("A", "B", map[string]float64{"capacity": 4})
	require.NoError(s.T(), err)
	require.True(s.T(), g.HasEdge("A", "B"))
	require.True(s.T(), g.HasEdge("B", "A"))
}

func (s *GraphSuite) TestDirectedEdgeNotMirrored() {
	g := graph.NewGraph(graph.WithDirected(true))
	_, err := g.AddEdge("S", "T", map[string]float64{"capacity": 5})
	require.NoError(s.T(), err)
	require.True(s.T(), g.HasEdge("S", "T"))
	require.False(s.T(), g.HasEdge("T", "S"))
}

func (s *GraphSuite) TestMultiEdgeRejectedByDefault() {
	g := graph.NewGraph(graph.WithDirected(true))
	_, err := g.AddEdge("X", "Y", nil)
	require.NoError(s.T(), err)
	_, err = g.AddEdge("X", "Y", nil)
	require.ErrorIs(s.T(), err, graph.ErrMultiEdgeNotAllowed)
}

func (s *GraphSuite) TestMultiEdgeAllowed() {
	g := graph.NewGraph(graph.WithDirected(true), graph.WithMultiEdges())
	_, err := g.AddEdge("X", "Y", map[string]float64{"capacity": 2})
	require.NoError(s.T(), err)
	_, err = g.AddEdge("X", "Y", map[string]float64{"capacity": 7})
	require.NoError(s.T(), err)

	edges, err := g.Neighbors("X")
	require.NoError(s.T(), err)
	require.Len(s.T(), edges, 2)
}

func (s *GraphSuite) TestLoopRejectedByDefault() {
	g := graph.NewGraph(graph.WithDirected(true))
	_, err := g.AddEdge("A", "A", nil)
	require.ErrorIs(s.T(), err, graph.ErrLoopNotAllowed)
}

func (s *GraphSuite) TestNeighborsPreservesInsertionOrder() {
	g := graph.NewGraph(graph.WithDirected(true), graph.WithMultiEdges())
	for i := 0; i < 12; i++ {
		to := string(rune('a' + i))
		_, err := g.AddEdge("S", to, map[string]float64{"capacity": 1})
		require.NoError(s.T(), err)
	}
	edges, err := g.Neighbors("S")
	require.NoError(s.T(), err)
	require.Len(s.T(), edges, 12)
	for i, e := range edges {
		require.Equal(s.T(), string(rune('a'+i)), e.To)
	}
}

func (s *GraphSuite) TestEdgesSortedNumerically() {
	g := graph.NewGraph(graph.WithDirected(true), graph.WithMultiEdges())
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge("S", "T", map[string]float64{"capacity": 1})
		require.NoError(s.T(), err)
	}
	edges := g.Edges()
	require.Len(s.T(), edges, 11)
	require.Equal(s.T(), "e1", edges[0].ID)
	require.Equal(s.T(), "e10", edges[9].ID)
	require.Equal(s.T(), "e11", edges[10].ID)
}

func (s *GraphSuite) TestRemoveVertexCleansAdjacency() {
	g := graph.NewGraph()
	_, _ = g.AddEdge("A", "B", nil)
	require.NoError(s.T(), g.RemoveVertex("A"))
	require.False(s.T(), g.HasVertex("A"))
	require.False(s.T(), g.HasEdge("B", "A"))
}

func (s *GraphSuite) TestCloneEmptyCopiesVerticesNotEdges() {
	g := graph.NewGraph()
	_, _ = g.AddEdge("A", "B", map[string]float64{"capacity": 3})
	clone := g.CloneEmpty()
	require.True(s.T(), clone.HasVertex("A"))
	require.True(s.T(), clone.HasVertex("B"))
	require.Equal(s.T(), 0, clone.EdgeCount())
}

func (s *GraphSuite) TestCapacityMissingAttrIsNotOK() {
	g := graph.NewGraph(graph.WithDirected(true))
	_, err := g.AddEdge("A", "B", map[string]float64{"weight": 9})
	require.NoError(s.T(), err)
	edges, err := g.Neighbors("A")
	require.NoError(s.T(), err)
	_, ok := edges[0].Capacity("capacity")
	require.False(s.T(), ok)
}
