// Package spectral provides the adjacency-spectrum helpers used around the
// centrality solvers:
//
//   - Radius: power-iteration estimate of ρ(A), the largest adjacency
//     eigenvalue, used to pick a safe default Katz attenuation.
//   - Dense + Jacobi: exact symmetric eigen-decomposition for small graphs,
//     O(n³) per sweep.
//   - Leading: the dominant eigenpair via Jacobi, with the eigenvector
//     oriented non-negative; an exact reference for eigenvector centrality.
//
// Errors:
//
//	ErrGraphNil     – nil graph
//	ErrNonSquare    – Jacobi input is not n×n
//	ErrNotSymmetric – Jacobi input is not symmetric within tol
//	ErrEigenFailed  – no convergence within maxIter
package spectral
