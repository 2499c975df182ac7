// SPDX-License-Identifier: MIT

package centrality

import (
	"github.com/katalvlaran/netrank/core"
)

// PageRank returns the stationary distribution of a random surfer that
// follows a uniformly chosen edge with probability Damping and otherwise
// teleports to a uniformly chosen node.
//
// Each undirected edge counts as two directed arcs. Rank held by degree-0
// (dangling) nodes is redistributed uniformly, so Σ rank = 1 after every
// iteration:
//
//	PR(v) = (1−d)/n + d·( Σ_{u∈N(v)} PR(u)/deg(u) + Σ_{w dangling} PR(w)/n )
//
// Iteration starts from the uniform vector 1/n and stops once the L1
// distance between iterates drops below Tolerance.
//
// Complexity: O(k·(n+m)) for k iterations.
func PageRank(g *core.Graph, opts PageRankOptions) (core.ScoreMap, error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	n := g.NodeCount()
	nf := float64(n)
	d := opts.Damping
	workers := resolveWorkers(opts.Workers)

	invDeg := make([]float64, n)
	var dangling []int
	for i := range invDeg {
		if deg := g.DegreeOf(i); deg > 0 {
			invDeg[i] = 1 / float64(deg)
		} else {
			dangling = append(dangling, i)
		}
	}

	rank := make([]float64, n)
	next := make([]float64, n)
	for i := range rank {
		rank[i] = 1 / nf
	}

	var diff float64
	for iter := 1; iter <= opts.MaxIter; iter++ {
		var danglingMass float64
		for _, w := range dangling {
			danglingMass += rank[w]
		}
		base := (1-d)/nf + d*danglingMass/nf

		parallelRange(n, workers, func(lo, hi int) {
			for v := lo; v < hi; v++ {
				var in float64
				for _, u := range g.NeighborsOf(v) {
					in += rank[u] * invDeg[u]
				}
				next[v] = base + d*in
			}
		})
		if err := checkFinite(MetricPageRank, g, next); err != nil {
			return nil, err
		}

		diff = l1(next, rank)
		rank, next = next, rank
		if diff < opts.Tolerance {
			return g.Vector(rank), nil
		}
	}

	return nil, &ConvergenceError{Metric: MetricPageRank, Iterations: opts.MaxIter, Residual: diff}
}
