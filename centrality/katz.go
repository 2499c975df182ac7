package centrality

import (
	"errors"
	"math"

	"github.com/katalvlaran/netrank/core"
	"github.com/katalvlaran/netrank/spectral"
)

// Katz returns Katz centrality x = αAx + β·1, solved by fixed-point
// iteration from x₀ = 0.
//
// Alpha == 0 selects α = 0.1/ρ(A), with ρ(A) estimated by
// spectral.Radius (α = 0.1 for an edgeless graph). An estimate that has
// not settled within MaxIter is still used, clamped to the bounds of ρ. An explicit α ≥ 1/ρ(A)
// makes the series diverge; that surfaces as *NumericalInstabilityError
// or *ConvergenceError, never as silent garbage.
//
// When Normalized is set the result is rescaled to unit Euclidean norm
// (a zero vector, from Beta == 0, is returned as is).
//
// Complexity: O(k·(n+m)) for k iterations, plus the radius estimate.
func Katz(g *core.Graph, opts KatzOptions) (core.ScoreMap, error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	alpha := opts.Alpha
	if alpha == 0 {
		rho, err := katzRadius(g, opts.Tolerance, opts.MaxIter)
		if err != nil {
			return nil, err
		}
		alpha = defaultKatzAlphaScale
		if rho > 0 {
			alpha = defaultKatzAlphaScale / rho
		}
	}

	n := g.NodeCount()
	workers := resolveWorkers(opts.Workers)
	beta := opts.Beta
	x := make([]float64, n)
	next := make([]float64, n)

	var diff float64
	for iter := 1; iter <= opts.MaxIter; iter++ {
		parallelRange(n, workers, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				var sum float64
				for _, j := range g.NeighborsOf(i) {
					sum += x[j]
				}
				next[i] = alpha*sum + beta
			}
		})
		if err := checkFinite(MetricKatz, g, next); err != nil {
			return nil, err
		}

		diff = l1(next, x)
		x, next = next, x
		if diff < opts.Tolerance {
			if opts.Normalized {
				if norm := euclidean(x); norm > 0 {
					for i := range x {
						x[i] /= norm
					}
				}
			}
			if err := checkFinite(MetricKatz, g, x); err != nil {
				return nil, err
			}
			return g.Vector(x), nil
		}
	}

	if math.IsInf(diff, 0) || math.IsNaN(diff) {
		return nil, &NumericalInstabilityError{Metric: MetricKatz, Node: g.Label(0), Value: diff}
	}

	return nil, &ConvergenceError{Metric: MetricKatz, Iterations: opts.MaxIter, Residual: diff}
}

// katzRadius estimates ρ(A) for the automatic α. Graphs with a small
// eigengap (long paths, grids) settle slowly, so an unconverged Rayleigh
// estimate is accepted and clamped to the bounds
//
//	max(2m/n, √Δ) ≤ ρ(A) ≤ Δ
//
// A Rayleigh quotient never exceeds ρ(A), so the clamped estimate lies in
// [max(2m/n, √Δ), ρ(A)].
func katzRadius(g *core.Graph, tol float64, maxIter int) (float64, error) {
	rho, err := spectral.Radius(g, tol, maxIter)
	if err != nil && !errors.Is(err, spectral.ErrEigenFailed) {
		return 0, err
	}

	st := g.Stats()
	if st.EdgeCount == 0 {
		return 0, nil
	}
	lo := math.Max(2*float64(st.EdgeCount)/float64(st.NodeCount), math.Sqrt(float64(st.MaxDegree)))
	hi := float64(st.MaxDegree)

	return math.Min(math.Max(rho, lo), hi), nil
}
