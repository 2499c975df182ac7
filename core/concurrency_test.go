// Package core_test verifies a built Graph under concurrent readers.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netrank/core"
)

// TestConcurrentReaders runs many readers against one Graph; with -race
// this asserts the no-lock read model.
func TestConcurrentReaders(t *testing.T) {
	const n = 200
	edges := make([]core.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, core.Edge{From: "hub", To: fmt.Sprintf("v%d", i)})
	}
	g, err := core.NewGraph(edges)
	require.NoError(t, err)

	const readers = 32
	degrees := make([]int, readers)
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func(slot int) {
			defer wg.Done()
			d, _ := g.Degree("hub")
			for i := 0; i < g.NodeCount(); i++ {
				_ = g.NeighborsOf(i)
			}
			degrees[slot] = d
		}(r)
	}
	wg.Wait()

	for _, d := range degrees {
		require.Equal(t, n, d)
	}
}
