package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netrank/builder"
	"github.com/katalvlaran/netrank/core"
)

// kite returns the Krackhardt kite:
//
//	Andre, Beverly, Carol, Diane, Ed, Fernando, Garth form a dense core;
//	Heather bridges it to the tail Ike─Jane.
func kite(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.NewGraph([]core.Edge{
		{From: "Andre", To: "Beverly"}, {From: "Andre", To: "Carol"},
		{From: "Andre", To: "Diane"}, {From: "Andre", To: "Fernando"},
		{From: "Beverly", To: "Diane"}, {From: "Beverly", To: "Ed"},
		{From: "Beverly", To: "Garth"}, {From: "Carol", To: "Diane"},
		{From: "Carol", To: "Fernando"}, {From: "Diane", To: "Ed"},
		{From: "Diane", To: "Fernando"}, {From: "Diane", To: "Garth"},
		{From: "Ed", To: "Garth"}, {From: "Fernando", To: "Garth"},
		{From: "Fernando", To: "Heather"}, {From: "Garth", To: "Heather"},
		{From: "Heather", To: "Ike"}, {From: "Ike", To: "Jane"},
	})
	require.NoError(t, err)
	return g
}

// star returns a hub "Center" with leaves "0".."leaves-1".
func star(t testing.TB, leaves int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Star(leaves+1))
	require.NoError(t, err)
	return g
}

// pathPlusIsolated returns 0─1─2 and an isolated "3".
func pathPlusIsolated(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.NewGraph([]core.Edge{{From: "0", To: "1"}, {From: "1", To: "2"}}, core.WithNodes("3"))
	require.NoError(t, err)
	return g
}

func single(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(nil, core.WithNodes("solo"))
	require.NoError(t, err)
	return g
}

func random(t testing.TB, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	require.NoError(t, err)
	return g
}
