package spectral_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netrank/core"
	"github.com/katalvlaran/netrank/spectral"
)

func star(t *testing.T, leaves int) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, leaves)
	for i := range edges {
		edges[i] = core.Edge{From: "C", To: string(rune('a' + i))}
	}
	g, err := core.NewGraph(edges)
	require.NoError(t, err)
	return g
}

func TestJacobi_Triangle(t *testing.T) {
	g, err := core.NewGraph([]core.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "A"}})
	require.NoError(t, err)
	a, err := spectral.Dense(g)
	require.NoError(t, err)

	eigs, vecs, err := spectral.Jacobi(a, 1e-12, 100)
	require.NoError(t, err)
	sorted := append([]float64(nil), eigs...)
	sort.Float64s(sorted)
	assert.InDeltaSlice(t, []float64{-1, -1, 2}, sorted, 1e-9)

	// every column is a unit vector satisfying A v = λ v
	for k := range eigs {
		var norm float64
		for r := range vecs {
			norm += vecs[r][k] * vecs[r][k]
			var av float64
			for c := range a {
				av += a[r][c] * vecs[c][k]
			}
			assert.InDelta(t, eigs[k]*vecs[r][k], av, 1e-9)
		}
		assert.InDelta(t, 1, norm, 1e-9)
	}
}

func TestJacobi_Errors(t *testing.T) {
	_, _, err := spectral.Jacobi([][]float64{{1, 2}}, 1e-9, 10)
	require.ErrorIs(t, err, spectral.ErrNonSquare)

	_, _, err = spectral.Jacobi([][]float64{{0, 1}, {0, 0}}, 1e-9, 10)
	require.ErrorIs(t, err, spectral.ErrNotSymmetric)

	// a non-diagonal matrix cannot converge with zero rotations allowed
	_, _, err = spectral.Jacobi([][]float64{{0, 1}, {1, 0}}, 1e-9, 0)
	require.ErrorIs(t, err, spectral.ErrEigenFailed)

	_, err = spectral.Dense(nil)
	require.ErrorIs(t, err, spectral.ErrGraphNil)
}

func TestLeading_Star(t *testing.T) {
	g := star(t, 4)
	lambda, vec, err := spectral.Leading(g, 1e-12, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 2, lambda, 1e-9)

	c, _ := g.Index("C")
	// center component √k times each leaf component
	for i, x := range vec {
		if i == c {
			continue
		}
		assert.InDelta(t, vec[c]/2, x, 1e-9)
		assert.Greater(t, x, 0.0)
	}
}

func TestRadius(t *testing.T) {
	for _, k := range []int{1, 3, 9} {
		rho, err := spectral.Radius(star(t, k), 1e-12, 10000)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(float64(k)), rho, 1e-6, "star k=%d", k)
	}

	g, err := core.NewGraph(nil, core.WithNodes("solo"))
	require.NoError(t, err)
	rho, err := spectral.Radius(g, 1e-9, 10)
	require.NoError(t, err)
	assert.Zero(t, rho)

	_, err = spectral.Radius(nil, 1e-9, 10)
	require.ErrorIs(t, err, spectral.ErrGraphNil)
}

func TestRadius_IterationCap(t *testing.T) {
	rho, err := spectral.Radius(star(t, 5), 1e-15, 1)
	require.ErrorIs(t, err, spectral.ErrEigenFailed)
	assert.Greater(t, rho, 0.0)
}
