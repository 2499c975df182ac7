// SPDX-License-Identifier: MIT

package centrality

import (
	"math"

	"github.com/katalvlaran/netrank/core"
)

// Eigenvector returns the leading eigenvector of the adjacency matrix,
// scaled to unit Euclidean norm with non-negative entries.
//
// Implementation:
//   - Start from x₀ = 1/√n on every node.
//   - Iterate x ← (A+I)x / ‖(A+I)x‖₂. The shift keeps the eigenvectors of
//     A and makes the leading eigenvalue strictly dominant in magnitude,
//     so bipartite graphs converge instead of oscillating.
//   - Stop once Σ|x_{k+1} − x_k| < Tolerance.
//
// Errors: ErrGraphNil, core.ErrEmptyGraph, ErrOptionViolation,
// *ConvergenceError after MaxIter iterations, *NumericalInstabilityError.
//
// Complexity: O(k·(n+m)) for k iterations.
func Eigenvector(g *core.Graph, opts EigenvectorOptions) (core.ScoreMap, error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	n := g.NodeCount()
	workers := resolveWorkers(opts.Workers)
	x := make([]float64, n)
	next := make([]float64, n)
	start := 1 / math.Sqrt(float64(n))
	for i := range x {
		x[i] = start
	}

	var diff float64
	for iter := 1; iter <= opts.MaxIter; iter++ {
		parallelRange(n, workers, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				sum := x[i]
				for _, j := range g.NeighborsOf(i) {
					sum += x[j]
				}
				next[i] = sum
			}
		})

		norm := euclidean(next)
		if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
			return nil, &NumericalInstabilityError{Metric: MetricEigenvector, Node: g.Label(0), Value: norm}
		}
		for i := range next {
			next[i] /= norm
		}

		diff = l1(next, x)
		x, next = next, x
		if diff < opts.Tolerance {
			orientNonNegative(x)
			if err := checkFinite(MetricEigenvector, g, x); err != nil {
				return nil, err
			}
			return g.Vector(x), nil
		}
	}

	return nil, &ConvergenceError{Metric: MetricEigenvector, Iterations: opts.MaxIter, Residual: diff}
}

// orientNonNegative flips x when its entries sum negative and clamps
// round-off below zero.
func orientNonNegative(x []float64) {
	var s float64
	for _, v := range x {
		s += v
	}
	sign := 1.0
	if s < 0 {
		sign = -1
	}
	for i, v := range x {
		x[i] = math.Max(0, sign*v)
	}
}
