package edgelist_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netrank/core"
	"github.com/katalvlaran/netrank/edgelist"
)

func TestRead(t *testing.T) {
	in := "# comment\n0 1\n\n1\t2   2 3\n  3 0  \n0 1\n"
	g, st, err := edgelist.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, g.Nodes())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, edgelist.Stats{Lines: 6, Pairs: 5}, st)
	assert.True(t, g.HasEdge("3", "2"))
}

func TestRead_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		line   int
		reason error
	}{
		{"odd tokens", "a b\nc\n", 2, core.ErrMalformedPair},
		{"odd tokens multi", "a b c\n", 1, core.ErrMalformedPair},
		{"self loop", "a b\n\nx x\n", 3, core.ErrSelfLoop},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := edgelist.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, core.ErrInvalidEdge)
			require.ErrorIs(t, err, tc.reason)
			var ie *core.InvalidEdgeError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tc.line, ie.Line)
		})
	}

	_, _, err := edgelist.Read(strings.NewReader("# nothing\n\n"))
	require.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestRead_NodeRange(t *testing.T) {
	in := "0 1\n1 7\nx 2\n2 1\n"
	g, st, err := edgelist.Read(strings.NewReader(in), edgelist.WithNodeRange(5))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, g.Nodes())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, st.Dropped)
	assert.Equal(t, 2, st.Pairs)

	d, err := g.Degree("4")
	require.NoError(t, err)
	assert.Zero(t, d)

	// non-canonical spellings would alias pre-registered labels
	g, st, err = edgelist.Read(strings.NewReader("0 1\n007 1\n+3 2\n-0 4\n2 03\n"), edgelist.WithNodeRange(10))
	require.NoError(t, err)
	assert.Equal(t, 10, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 4, st.Dropped)
	assert.False(t, g.HasNode("007"))
	assert.False(t, g.HasNode("+3"))

	_, _, err = edgelist.Read(strings.NewReader(in), edgelist.WithNodeRange(-1))
	require.ErrorIs(t, err, edgelist.ErrNodeRange)
}

func TestLoadAndMetadata(t *testing.T) {
	dir := t.TempDir()
	edges := filepath.Join(dir, "network.txt")
	require.NoError(t, os.WriteFile(edges, []byte("a b\nb c\n"), 0o644))
	meta := filepath.Join(dir, "metadata.json")
	require.NoError(t, os.WriteFile(meta, []byte(`{"num_nodes": 12, "num_edges": 3}`), 0o644))

	g, _, err := edgelist.Load(edges)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())

	md, err := edgelist.ReadMetadata(meta)
	require.NoError(t, err)
	assert.Equal(t, edgelist.Metadata{NumNodes: 12, NumEdges: 3}, md)

	_, _, err = edgelist.Load(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(meta, []byte(`{"num_nodes": "x"}`), 0o644))
	_, err = edgelist.ReadMetadata(meta)
	require.Error(t, err)
}
