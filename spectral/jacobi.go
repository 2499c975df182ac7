// Jacobi computes all eigenvalues and eigenvectors of a real symmetric
// matrix using classical Jacobi rotations.
package spectral

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/netrank/core"
)

// Sentinel errors for spectral routines.
var (
	// ErrGraphNil indicates a nil *core.Graph.
	ErrGraphNil = errors.New("spectral: graph is nil")

	// ErrNonSquare is returned when a matrix is not n×n.
	ErrNonSquare = errors.New("spectral: matrix is not square")

	// ErrNotSymmetric is returned when the input matrix is not symmetric.
	ErrNotSymmetric = errors.New("spectral: matrix is not symmetric")

	// ErrEigenFailed is returned if an iteration does not converge within max iterations.
	ErrEigenFailed = errors.New("spectral: eigen decomposition did not converge")
)

// Dense returns the n×n 0/1 adjacency matrix of g in index order.
// Complexity: O(n² + m) time and space.
func Dense(g *core.Graph) ([][]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for _, j := range g.NeighborsOf(i) {
			a[i][j] = 1
		}
	}

	return a, nil
}

// Jacobi performs Jacobi eigenvalue decomposition on a symmetric matrix m.
// It returns the eigenvalues and a matrix whose columns are the matching
// unit eigenvectors. m is not modified.
// tol is the convergence threshold for the largest off-diagonal element;
// maxIter caps the number of rotations.
// Returns ErrNonSquare, ErrNotSymmetric, or ErrEigenFailed.
// Complexity: O(n²) to pick a pivot plus O(n) per rotation; Memory: O(n²).
func Jacobi(m [][]float64, tol float64, maxIter int) ([]float64, [][]float64, error) {
	// Stage 1: Validate input
	n := len(m)
	for i := range m {
		if len(m[i]) != n {
			return nil, nil, fmt.Errorf("Jacobi: row %d has %d cols, want %d: %w", i, len(m[i]), n, ErrNonSquare)
		}
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m[i][j]-m[j][i]) > tol {
				return nil, nil, ErrNotSymmetric // fail-fast on asymmetry
			}
		}
	}

	// Stage 2: Prepare A (work copy) and V (identity, accumulates rotations)
	a := make([][]float64, n)
	v := make([][]float64, n)
	for i = 0; i < n; i++ {
		a[i] = append([]float64(nil), m[i]...)
		v[i] = make([]float64, n)
		v[i][i] = 1
	}

	// Stage 3: Execute rotations on the largest off-diagonal pivot
	var (
		p, q               int
		maxOff             float64
		theta, t, c, s     float64
		app, aqq, apq      float64
		arp, arq, vrp, vrq float64
	)
	for iter := 0; ; iter++ {
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off := math.Abs(a[i][j]); off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			break // converged
		}
		if iter == maxIter {
			return nil, nil, ErrEigenFailed
		}

		app, aqq, apq = a[p][p], a[q][q], a[p][q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for r := 0; r < n; r++ {
			if r != p && r != q {
				arp, arq = a[r][p], a[r][q]
				a[r][p] = c*arp - s*arq
				a[p][r] = a[r][p]
				a[r][q] = s*arp + c*arq
				a[q][r] = a[r][q]
			}
			vrp, vrq = v[r][p], v[r][q]
			v[r][p] = c*vrp - s*vrq
			v[r][q] = s*vrp + c*vrq
		}
		a[p][p] = app - t*apq
		a[q][q] = aqq + t*apq
		a[p][q], a[q][p] = 0, 0
	}

	// Stage 4: Collect eigenvalues from the diagonal
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a[i][i]
	}

	return eigs, v, nil
}

// Leading returns the largest adjacency eigenvalue of g and its unit
// eigenvector, sign-flipped so its entries sum to a non-negative value.
// Exact up to tol; intended for graphs small enough for O(n³) work.
func Leading(g *core.Graph, tol float64, maxIter int) (float64, []float64, error) {
	a, err := Dense(g)
	if err != nil {
		return 0, nil, err
	}
	eigs, vecs, err := Jacobi(a, tol, maxIter)
	if err != nil {
		return 0, nil, fmt.Errorf("Leading: %w", err)
	}
	best := 0
	for k := 1; k < len(eigs); k++ {
		if eigs[k] > eigs[best] {
			best = k
		}
	}

	vec := make([]float64, len(eigs))
	var sum float64
	for r := range vec {
		vec[r] = vecs[r][best]
		sum += vec[r]
	}
	if sum < 0 {
		for r := range vec {
			vec[r] = -vec[r]
		}
	}

	return eigs[best], vec, nil
}
