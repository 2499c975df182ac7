// Package edgelist reads whitespace-separated edge lists into a
// core.Graph.
//
// Format: after trimming, each line is split on spaces and tabs and every
// consecutive pair of tokens is one undirected edge. Blank lines and lines
// starting with '#' are skipped. An odd token count is a
// *core.InvalidEdgeError with reason core.ErrMalformedPair and the 1-based
// line number; self-loops and empty labels are rejected the same way.
package edgelist

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/netrank/core"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ErrNodeRange indicates a non-positive WithNodeRange bound.
var ErrNodeRange = errors.New("edgelist: node range must be positive")

// Option configures Read and Load.
type Option func(*options)

type options struct {
	nodeRange int // 0 = unbounded
}

// WithNodeRange registers nodes "0".."n-1" up front, so nodes without
// edges are part of the graph, and drops pairs with an endpoint that is
// not an integer label in [0, n). Dropped pairs are counted in
// Stats.Dropped.
func WithNodeRange(n int) Option {
	return func(o *options) { o.nodeRange = n }
}

// Stats summarizes one read.
type Stats struct {
	Lines   int // lines consumed, including blanks and comments
	Pairs   int // pairs accepted (duplicates included)
	Dropped int // pairs rejected by WithNodeRange
}

// Read parses an edge list from r.
func Read(r io.Reader, opts ...Option) (*core.Graph, Stats, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.nodeRange < 0 {
		return nil, Stats{}, fmt.Errorf("%w: %d", ErrNodeRange, o.nodeRange)
	}

	b := core.NewBuilder()
	for i := 0; i < o.nodeRange; i++ {
		if _, err := b.AddNode(strconv.Itoa(i)); err != nil {
			return nil, Stats{}, err
		}
	}

	var st Stats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		st.Lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields)%2 != 0 {
			return nil, st, &core.InvalidEdgeError{
				Line:   st.Lines,
				From:   fields[len(fields)-1],
				Reason: core.ErrMalformedPair,
			}
		}
		for k := 0; k < len(fields); k += 2 {
			from, to := fields[k], fields[k+1]
			if o.nodeRange > 0 && !(inRange(from, o.nodeRange) && inRange(to, o.nodeRange)) {
				st.Dropped++
				continue
			}
			if err := b.AddEdgeAt(from, to, st.Lines); err != nil {
				return nil, st, err
			}
			st.Pairs++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("edgelist: line %d: %w", st.Lines+1, err)
	}

	g, err := b.Build()
	if err != nil {
		return nil, st, err
	}

	return g, st, nil
}

// Load opens path and parses it with Read.
func Load(path string, opts ...Option) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	g, st, err := Read(f, opts...)
	if err != nil {
		return nil, st, fmt.Errorf("edgelist: %s: %w", path, err)
	}

	return g, st, nil
}

// inRange reports whether label is the canonical decimal form of an
// integer in [0, n), so "007" or "+5" never alias "7" or "5".
func inRange(label string, n int) bool {
	v, err := strconv.Atoi(label)
	return err == nil && v >= 0 && v < n && strconv.Itoa(v) == label
}

// Metadata is the sidecar describing a network directory.
type Metadata struct {
	NumNodes int `json:"num_nodes"`
	NumEdges int `json:"num_edges,omitempty"`
}

// ReadMetadata decodes a metadata.json file.
func ReadMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("edgelist: read metadata: %w", err)
	}
	var md Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return Metadata{}, fmt.Errorf("edgelist: decode metadata %s: %w", path, err)
	}
	if md.NumNodes < 0 {
		return Metadata{}, fmt.Errorf("edgelist: metadata %s: num_nodes=%d: %w", path, md.NumNodes, ErrNodeRange)
	}

	return md, nil
}
