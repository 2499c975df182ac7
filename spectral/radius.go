package spectral

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netrank/core"
)

// Radius estimates ρ(A), the largest eigenvalue of g's adjacency matrix.
//
// Power iteration runs on the shifted operator (A + I), whose dominant
// eigenvalue ρ+1 is strictly larger in magnitude than every other one even
// on bipartite graphs. It stops when successive unit iterates differ by
// less than tol in L1 norm and returns the Rayleigh quotient xᵀAx.
// A graph without edges has ρ = 0.
//
// Returns ErrGraphNil, or ErrEigenFailed (wrapped) together with the last
// estimate when maxIter is exhausted.
//
// Complexity: O(maxIter · (n + m)).
func Radius(g *core.Graph, tol float64, maxIter int) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	n := g.NodeCount()
	if n == 0 || g.EdgeCount() == 0 {
		return 0, nil
	}

	x := make([]float64, n)
	next := make([]float64, n)
	for i := range x {
		x[i] = 1 / math.Sqrt(float64(n))
	}

	for iter := 0; iter < maxIter; iter++ {
		var norm float64
		for i := range next {
			sum := x[i]
			for _, j := range g.NeighborsOf(i) {
				sum += x[j]
			}
			next[i] = sum
			norm += sum * sum
		}
		norm = math.Sqrt(norm)

		var diff float64
		for i := range next {
			next[i] /= norm
			diff += math.Abs(next[i] - x[i])
		}
		x, next = next, x
		if diff < tol {
			return rayleigh(g, x), nil
		}
	}

	return rayleigh(g, x), fmt.Errorf("Radius: %d iterations: %w", maxIter, ErrEigenFailed)
}

// rayleigh returns xᵀAx for a unit vector x.
func rayleigh(g *core.Graph, x []float64) float64 {
	var q float64
	for i := range x {
		var ax float64
		for _, j := range g.NeighborsOf(i) {
			ax += x[j]
		}
		q += x[i] * ax
	}

	return q
}
