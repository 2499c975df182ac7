package centrality_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netrank/builder"
	"github.com/katalvlaran/netrank/centrality"
	"github.com/katalvlaran/netrank/core"
	"github.com/katalvlaran/netrank/spectral"
)

const eps = 1e-4

func TestDegree(t *testing.T) {
	g := kite(t)
	s, err := centrality.Degree(g)
	require.NoError(t, err)
	require.Len(t, s, 10)
	assert.InDelta(t, 6.0/9, s["Diane"], 1e-12)
	assert.InDelta(t, 5.0/9, s["Fernando"], 1e-12)
	assert.InDelta(t, 1.0/9, s["Jane"], 1e-12)

	one, err := centrality.Degree(single(t))
	require.NoError(t, err)
	assert.Equal(t, core.ScoreMap{"solo": 0}, one)
}

func TestEigenvector_Star(t *testing.T) {
	// λ = 2 for four leaves; the hub scores twice a leaf.
	s, err := centrality.Eigenvector(star(t, 4), centrality.DefaultEigenvectorOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt2, s["Center"], eps)
	for _, leaf := range []string{"0", "1", "2", "3"} {
		assert.InDelta(t, 1/math.Sqrt(8), s[leaf], eps)
	}
}

func TestEigenvector_MatchesDenseSolver(t *testing.T) {
	g := kite(t)
	s, err := centrality.Eigenvector(g, centrality.DefaultEigenvectorOptions())
	require.NoError(t, err)

	_, vec, err := spectral.Leading(g, 1e-12, 5000)
	require.NoError(t, err)

	var norm float64
	for i, id := range g.Nodes() {
		assert.InDelta(t, vec[i], s[id], eps, id)
		assert.GreaterOrEqual(t, s[id], 0.0)
		norm += s[id] * s[id]
	}
	assert.InDelta(t, 1, norm, 1e-9)
}

func TestEigenvector_Single(t *testing.T) {
	s, err := centrality.Eigenvector(single(t), centrality.DefaultEigenvectorOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1, s["solo"], 1e-12)
}

func TestKatz_Star(t *testing.T) {
	opts := centrality.DefaultKatzOptions()
	opts.Alpha = 0.05
	opts.Normalized = false
	raw, err := centrality.Katz(star(t, 4), opts)
	require.NoError(t, err)
	// c = 1 + 4αl, l = 1 + αc  ⇒  c = 1.2/0.99, l = 1.05/0.99
	assert.InDelta(t, 1.2/0.99, raw["Center"], 1e-6)
	assert.InDelta(t, 1.05/0.99, raw["0"], 1e-6)

	// α = 0.1/ρ = 0.05 when left at zero
	auto, err := centrality.Katz(star(t, 4), centrality.DefaultKatzOptions())
	require.NoError(t, err)
	assert.InDelta(t, 8.0/7, auto["Center"]/auto["0"], 1e-6)
	var norm float64
	for _, v := range auto {
		norm += v * v
	}
	assert.InDelta(t, 1, norm, 1e-9)
}

func TestKatz_EdgelessAndZeroBeta(t *testing.T) {
	g, err := core.NewGraph(nil, core.WithNodes("a", "b"))
	require.NoError(t, err)
	s, err := centrality.Katz(g, centrality.DefaultKatzOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt2, s["a"], 1e-12)

	// β = 0 keeps x at the origin; the zero vector is not rescaled
	opts := centrality.DefaultKatzOptions()
	opts.Beta = 0
	s, err = centrality.Katz(kite(t), opts)
	require.NoError(t, err)
	for id, v := range s {
		assert.Zero(t, v, id)
	}
}

func TestKatz_Divergent(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(5))
	require.NoError(t, err)
	opts := centrality.DefaultKatzOptions()
	opts.Alpha = 1 // ρ(K5) = 4
	_, err = centrality.Katz(g, opts)
	require.ErrorIs(t, err, centrality.ErrNumericalInstability)

	var nie *centrality.NumericalInstabilityError
	require.ErrorAs(t, err, &nie)
	assert.Equal(t, centrality.MetricKatz, nie.Metric)
}

func TestKatz_AutoAlphaSlowSpectrum(t *testing.T) {
	// long paths and grids have a tiny eigengap, so the radius estimate
	// does not settle within MaxIter
	path, err := builder.BuildGraph(nil, builder.Path(300))
	require.NoError(t, err)
	grid, err := builder.BuildGraph(nil, builder.Grid(40, 40))
	require.NoError(t, err)

	for name, g := range map[string]*core.Graph{"path300": path, "grid40x40": grid} {
		t.Run(name, func(t *testing.T) {
			s, err := centrality.Katz(g, centrality.DefaultKatzOptions())
			require.NoError(t, err)
			require.Len(t, s, g.NodeCount())

			var norm float64
			for _, v := range s {
				require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
				norm += v * v
			}
			assert.InDelta(t, 1, norm, 1e-9)

			lo, hi := s.Bounds()
			assert.Less(t, lo, hi)
		})
	}

	// endpoints of the path score the same and lowest
	s, err := centrality.Katz(path, centrality.DefaultKatzOptions())
	require.NoError(t, err)
	var ends []float64
	for i := 0; i < path.NodeCount(); i++ {
		if path.DegreeOf(i) == 1 {
			ends = append(ends, s[path.Label(i)])
		}
	}
	require.Len(t, ends, 2)
	assert.InDelta(t, ends[0], ends[1], 1e-9)
	lo, _ := s.Bounds()
	assert.InDelta(t, lo, ends[0], 1e-12)

	gs, err := centrality.Katz(grid, centrality.DefaultKatzOptions())
	require.NoError(t, err)
	assert.Less(t, gs["0,0"], gs["20,20"])
}

func TestPageRank_Star(t *testing.T) {
	s, err := centrality.PageRank(star(t, 4), centrality.DefaultPageRankOptions())
	require.NoError(t, err)
	// c = 0.03 + 3.4l, l = 0.03 + 0.2125c
	assert.InDelta(t, 0.132/0.2775, s["Center"], eps)
	assert.InDelta(t, 0.03+0.2125*0.132/0.2775, s["3"], eps)
}

func TestPageRank_Distribution(t *testing.T) {
	for name, g := range map[string]*core.Graph{
		"kite":     kite(t),
		"dangling": pathPlusIsolated(t),
		"single":   single(t),
		"random":   random(t, 200, 0.02, 5),
	} {
		t.Run(name, func(t *testing.T) {
			s, err := centrality.PageRank(g, centrality.DefaultPageRankOptions())
			require.NoError(t, err)
			assert.InDelta(t, 1, s.Sum(g), 1e-9)
			for id, v := range s {
				assert.Greater(t, v, 0.0, id)
			}
		})
	}

	s, err := centrality.PageRank(kite(t), centrality.DefaultPageRankOptions())
	require.NoError(t, err)
	assert.Equal(t, "Diane", s.Ranked(kite(t))[0].Node)
}

func TestPageRank_NoDamping(t *testing.T) {
	opts := centrality.DefaultPageRankOptions()
	opts.Damping = 0
	g := kite(t)
	s, err := centrality.PageRank(g, opts)
	require.NoError(t, err)
	for _, v := range s {
		assert.InDelta(t, 0.1, v, 1e-12)
	}
}

func TestCloseness_Kite(t *testing.T) {
	s, err := centrality.Closeness(kite(t), centrality.DefaultClosenessOptions())
	require.NoError(t, err)
	assert.InDelta(t, 9.0/14, s["Fernando"], 1e-12)
	assert.InDelta(t, 9.0/14, s["Garth"], 1e-12)
	assert.InDelta(t, 9.0/29, s["Jane"], 1e-12)
}

func TestCloseness_Disconnected(t *testing.T) {
	g := pathPlusIsolated(t)

	wf, err := centrality.Closeness(g, centrality.DefaultClosenessOptions())
	require.NoError(t, err)
	assert.InDelta(t, 4.0/9, wf["0"], 1e-12)
	assert.InDelta(t, 2.0/3, wf["1"], 1e-12)
	assert.Zero(t, wf["3"])

	plain, err := centrality.Closeness(g, centrality.ClosenessOptions{WFImproved: false, Workers: 1})
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3, plain["0"], 1e-12)
	assert.InDelta(t, 1, plain["1"], 1e-12)
	assert.Zero(t, plain["3"])
}

func TestBetweenness_Kite(t *testing.T) {
	g := kite(t)
	s, err := centrality.Betweenness(g, centrality.DefaultBetweennessOptions())
	require.NoError(t, err)
	// Heather separates {Ike, Jane} from seven nodes, Ike separates Jane
	// from eight; (n−1)(n−2)/2 = 36.
	assert.InDelta(t, 14.0/36, s["Heather"], 1e-12)
	assert.InDelta(t, 8.0/36, s["Ike"], 1e-12)
	assert.InDelta(t, s["Fernando"], s["Garth"], 1e-12)
	for _, id := range []string{"Carol", "Ed", "Jane"} {
		assert.Zero(t, s[id], id)
	}
	lo, hi := s.Bounds()
	assert.GreaterOrEqual(t, lo, 0.0)
	assert.LessOrEqual(t, hi, 1.0)
}

func TestBetweenness_StarAndPath(t *testing.T) {
	s, err := centrality.Betweenness(star(t, 4), centrality.DefaultBetweennessOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1, s["Center"], 1e-12)
	assert.Zero(t, s["0"])

	raw, err := centrality.Betweenness(pathPlusIsolated(t), centrality.BetweennessOptions{})
	require.NoError(t, err)
	assert.Equal(t, core.ScoreMap{"0": 0, "1": 1, "2": 0, "3": 0}, raw)

	pair, err := core.NewGraph([]core.Edge{{From: "a", To: "b"}})
	require.NoError(t, err)
	two, err := centrality.Betweenness(pair, centrality.DefaultBetweennessOptions())
	require.NoError(t, err)
	assert.Equal(t, core.ScoreMap{"a": 0, "b": 0}, two)
}

func TestBetweenness_Diamond(t *testing.T) {
	// two shortest A→D paths split the dependency evenly
	g, err := core.NewGraph([]core.Edge{
		{From: "A", To: "B"}, {From: "A", To: "C"},
		{From: "B", To: "D"}, {From: "C", To: "D"},
	})
	require.NoError(t, err)
	s, err := centrality.Betweenness(g, centrality.BetweennessOptions{})
	require.NoError(t, err)
	for _, id := range g.Nodes() {
		assert.InDelta(t, 0.5, s[id], 1e-12, id)
	}
}

func TestDeterministicAcrossWorkers(t *testing.T) {
	g := random(t, 3000, 0.002, 11)

	b1, err := centrality.Betweenness(random(t, 300, 0.02, 3), centrality.BetweennessOptions{Normalized: true, Workers: 1})
	require.NoError(t, err)
	b8, err := centrality.Betweenness(random(t, 300, 0.02, 3), centrality.BetweennessOptions{Normalized: true, Workers: 8})
	require.NoError(t, err)
	require.Equal(t, b1, b8)

	p1opts := centrality.DefaultPageRankOptions()
	p1opts.Workers = 1
	p4opts := p1opts
	p4opts.Workers = 4
	p1, err := centrality.PageRank(g, p1opts)
	require.NoError(t, err)
	p4, err := centrality.PageRank(g, p4opts)
	require.NoError(t, err)
	require.Equal(t, p1, p4)

	c1, err := centrality.Closeness(g, centrality.ClosenessOptions{WFImproved: true, Workers: 1})
	require.NoError(t, err)
	c4, err := centrality.Closeness(g, centrality.ClosenessOptions{WFImproved: true, Workers: 4})
	require.NoError(t, err)
	require.Equal(t, c1, c4)
}

func TestConvergenceErrors(t *testing.T) {
	g := star(t, 4)

	eo := centrality.DefaultEigenvectorOptions()
	eo.MaxIter = 1
	_, err := centrality.Eigenvector(g, eo)
	var ce *centrality.ConvergenceError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, centrality.MetricEigenvector, ce.Metric)
	assert.Equal(t, 1, ce.Iterations)
	assert.Greater(t, ce.Residual, eo.Tolerance)
	require.ErrorIs(t, err, centrality.ErrConvergence)

	ko := centrality.DefaultKatzOptions()
	ko.Alpha = 0.05
	ko.MaxIter = 1
	_, err = centrality.Katz(g, ko)
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, centrality.MetricKatz, ce.Metric)

	po := centrality.DefaultPageRankOptions()
	po.MaxIter = 1
	_, err = centrality.PageRank(g, po)
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, centrality.MetricPageRank, ce.Metric)
	assert.Contains(t, err.Error(), "pagerank did not converge in 1 iterations")
}

func TestConvergenceErrors_Disconnected(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Disjoint(builder.Path(3), builder.Cycle(3)))
	require.NoError(t, err)
	var ce *centrality.ConvergenceError

	eo := centrality.DefaultEigenvectorOptions()
	eo.MaxIter = 2
	_, err = centrality.Eigenvector(g, eo)
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, centrality.MetricEigenvector, ce.Metric)
	assert.Equal(t, 2, ce.Iterations)

	// automatic α: the radius estimate is capped too but still usable
	ko := centrality.DefaultKatzOptions()
	ko.MaxIter = 1
	_, err = centrality.Katz(g, ko)
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, centrality.MetricKatz, ce.Metric)
	assert.Equal(t, 1, ce.Iterations)

	po := centrality.DefaultPageRankOptions()
	po.MaxIter = 1
	_, err = centrality.PageRank(g, po)
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, centrality.MetricPageRank, ce.Metric)
	require.ErrorIs(t, err, centrality.ErrConvergence)
}

func TestOptionViolations(t *testing.T) {
	g := kite(t)
	bad := func(mut func(*centrality.PageRankOptions)) error {
		o := centrality.DefaultPageRankOptions()
		mut(&o)
		_, err := centrality.PageRank(g, o)
		return err
	}
	require.ErrorIs(t, bad(func(o *centrality.PageRankOptions) { o.Damping = 1 }), centrality.ErrOptionViolation)
	require.ErrorIs(t, bad(func(o *centrality.PageRankOptions) { o.Damping = -0.1 }), centrality.ErrOptionViolation)
	require.ErrorIs(t, bad(func(o *centrality.PageRankOptions) { o.Tolerance = 0 }), centrality.ErrOptionViolation)
	require.ErrorIs(t, bad(func(o *centrality.PageRankOptions) { o.MaxIter = 0 }), centrality.ErrOptionViolation)
	require.ErrorIs(t, bad(func(o *centrality.PageRankOptions) { o.Workers = -1 }), centrality.ErrOptionViolation)

	ko := centrality.DefaultKatzOptions()
	ko.Alpha = -0.1
	_, err := centrality.Katz(g, ko)
	require.ErrorIs(t, err, centrality.ErrOptionViolation)

	_, err = centrality.Eigenvector(g, centrality.EigenvectorOptions{})
	require.ErrorIs(t, err, centrality.ErrOptionViolation)
	_, err = centrality.Closeness(g, centrality.ClosenessOptions{Workers: -2})
	require.ErrorIs(t, err, centrality.ErrOptionViolation)
	_, err = centrality.Betweenness(g, centrality.BetweennessOptions{Workers: -2})
	require.ErrorIs(t, err, centrality.ErrOptionViolation)
}

func TestNilAndEmptyGraph(t *testing.T) {
	metrics := map[string]func(*core.Graph) (core.ScoreMap, error){
		"degree": centrality.Degree,
		"eigenvector": func(g *core.Graph) (core.ScoreMap, error) {
			return centrality.Eigenvector(g, centrality.DefaultEigenvectorOptions())
		},
		"katz": func(g *core.Graph) (core.ScoreMap, error) {
			return centrality.Katz(g, centrality.DefaultKatzOptions())
		},
		"pagerank": func(g *core.Graph) (core.ScoreMap, error) {
			return centrality.PageRank(g, centrality.DefaultPageRankOptions())
		},
		"closeness": func(g *core.Graph) (core.ScoreMap, error) {
			return centrality.Closeness(g, centrality.DefaultClosenessOptions())
		},
		"betweenness": func(g *core.Graph) (core.ScoreMap, error) {
			return centrality.Betweenness(g, centrality.DefaultBetweennessOptions())
		},
	}
	for name, fn := range metrics {
		t.Run(name, func(t *testing.T) {
			_, err := fn(nil)
			require.ErrorIs(t, err, centrality.ErrGraphNil)
			_, err = fn(&core.Graph{})
			require.ErrorIs(t, err, core.ErrEmptyGraph)

			s, err := fn(single(t))
			require.NoError(t, err)
			require.Len(t, s, 1)
		})
	}
}

func TestScoresFiniteAndComplete(t *testing.T) {
	g := random(t, 150, 0.03, 21)
	runs := []func() (core.ScoreMap, error){
		func() (core.ScoreMap, error) { return centrality.Degree(g) },
		func() (core.ScoreMap, error) {
			return centrality.Eigenvector(g, centrality.DefaultEigenvectorOptions())
		},
		func() (core.ScoreMap, error) { return centrality.Katz(g, centrality.DefaultKatzOptions()) },
		func() (core.ScoreMap, error) { return centrality.PageRank(g, centrality.DefaultPageRankOptions()) },
		func() (core.ScoreMap, error) { return centrality.Closeness(g, centrality.DefaultClosenessOptions()) },
		func() (core.ScoreMap, error) {
			return centrality.Betweenness(g, centrality.DefaultBetweennessOptions())
		},
	}
	for _, run := range runs {
		s, err := run()
		require.NoError(t, err)
		require.Len(t, s, g.NodeCount())
		for id, v := range s {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), id)
			require.GreaterOrEqual(t, v, 0.0, id)
		}
	}
}

func TestClosedForms(t *testing.T) {
	complete, err := builder.BuildGraph(nil, builder.Complete(6))
	require.NoError(t, err)
	d, err := centrality.Degree(complete)
	require.NoError(t, err)
	for id, v := range d {
		assert.InDelta(t, 1, v, 1e-12, id)
	}

	for _, k := range []int{2, 4, 9} {
		c, err := centrality.Closeness(star(t, k), centrality.DefaultClosenessOptions())
		require.NoError(t, err)
		assert.InDelta(t, 1, c["Center"], 1e-12)
		assert.InDelta(t, float64(k)/float64(2*k-1), c["0"], 1e-12, "k=%d", k)
	}
}

func TestRerunIdentical(t *testing.T) {
	g := random(t, 250, 0.02, 8)
	first, err := centrality.Eigenvector(g, centrality.DefaultEigenvectorOptions())
	require.NoError(t, err)
	second, err := centrality.Eigenvector(g, centrality.DefaultEigenvectorOptions())
	require.NoError(t, err)
	require.Equal(t, first, second)

	k1, err := centrality.Katz(g, centrality.DefaultKatzOptions())
	require.NoError(t, err)
	k2, err := centrality.Katz(g, centrality.DefaultKatzOptions())
	require.NoError(t, err)
	require.Equal(t, k1, k2)
}
