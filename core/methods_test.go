package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/netrank/core"
)

// QuerySuite exercises the read-only query surface on a small fixture:
//
//	A───B───C   D (isolated)
//	 \ /
//	  E
type QuerySuite struct {
	suite.Suite
	g *core.Graph
}

func (s *QuerySuite) SetupTest() {
	g, err := core.NewGraph([]core.Edge{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
		{From: "A", To: "E"},
		{From: "B", To: "E"},
	}, core.WithNodes("A", "B", "C", "D", "E"))
	s.Require().NoError(err)
	s.g = g
}

func (s *QuerySuite) TestCounts() {
	require := require.New(s.T())
	require.Equal(5, s.g.NodeCount())
	require.Equal(4, s.g.EdgeCount())
}

func (s *QuerySuite) TestDegreeAndNeighbors() {
	require := require.New(s.T())

	d, err := s.g.Degree("B")
	require.NoError(err)
	require.Equal(3, d)

	nb, err := s.g.Neighbors("E")
	require.NoError(err)
	require.Equal([]string{"A", "B"}, nb)

	_, err = s.g.Neighbors("missing")
	require.ErrorIs(err, core.ErrNodeNotFound)
	_, err = s.g.Degree("missing")
	require.ErrorIs(err, core.ErrNodeNotFound)
	require.False(s.g.HasEdge("missing", "A"))
	require.False(s.g.HasEdge("A", "missing"))
}

func (s *QuerySuite) TestEdgesDeterministic() {
	require := require.New(s.T())
	want := []core.Edge{
		{From: "A", To: "B"},
		{From: "A", To: "E"},
		{From: "B", To: "C"},
		{From: "B", To: "E"},
	}
	require.Equal(want, s.g.Edges())
	require.Equal(s.g.Edges(), s.g.Edges())
}

func (s *QuerySuite) TestNodesReturnsCopy() {
	nodes := s.g.Nodes()
	nodes[0] = "mutated"
	s.Require().Equal("A", s.g.Nodes()[0])
}

func (s *QuerySuite) TestStats() {
	st := s.g.Stats()
	s.Require().Equal(core.GraphStats{
		NodeCount:     5,
		EdgeCount:     4,
		IsolatedCount: 1,
		MaxDegree:     3,
		Density:       0.4,
	}, st)
}

func (s *QuerySuite) TestVectorAndScoreMap() {
	require := require.New(s.T())
	sm := s.g.Vector([]float64{0.5, 0.9, 0.1, 0, 0.9})
	require.Len(sm, 5)

	ranked := sm.Ranked(s.g)
	require.Equal("B", ranked[0].Node) // tie with E broken by index order
	require.Equal("E", ranked[1].Node)
	require.Equal("D", ranked[4].Node)

	require.InDelta(2.4, sm.Sum(s.g), 1e-12)
	lo, hi := sm.Bounds()
	require.Equal(0.0, lo)
	require.Equal(0.9, hi)

	short := s.g.Vector([]float64{1})
	require.Equal(0.0, short["E"])
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(QuerySuite))
}
