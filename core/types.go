// Package core defines the immutable Graph, the Edge pair type, the
// ScoreMap result type and the sentinel errors shared by every metric.
//
// Errors:
//
//	ErrInvalidEdge   - an input pair cannot become an edge (see InvalidEdgeError).
//	ErrSelfLoop      - both endpoints name the same node.
//	ErrEmptyNodeID   - an endpoint label is empty after trimming.
//	ErrMalformedPair - a pair is incomplete (odd token count on a line).
//	ErrEmptyGraph    - the graph has zero nodes.
//	ErrNodeNotFound  - a query referenced an unknown label.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidEdge is matched by every *InvalidEdgeError.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrSelfLoop indicates a pair whose endpoints are equal.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEmptyNodeID indicates an empty endpoint label.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrMalformedPair indicates an incomplete pair of tokens.
	ErrMalformedPair = errors.New("core: malformed pair")

	// ErrEmptyGraph indicates a graph with zero nodes.
	ErrEmptyGraph = errors.New("core: graph has no nodes")

	// ErrNodeNotFound indicates a query referenced a label absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Edge is an unordered pair of node labels.
type Edge struct {
	From string
	To   string
}

// InvalidEdgeError describes a rejected input pair.
//
// Line is the 1-based source line when the pair came from a text source,
// or the 1-based position in the edge slice otherwise (0 when unknown).
// Reason is one of ErrSelfLoop, ErrEmptyNodeID or ErrMalformedPair.
type InvalidEdgeError struct {
	Line   int
	From   string
	To     string
	Reason error
}

// Error implements error.
func (e *InvalidEdgeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("core: invalid edge %q-%q at %d: %v", e.From, e.To, e.Line, e.Reason)
	}

	return fmt.Sprintf("core: invalid edge %q-%q: %v", e.From, e.To, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidEdge) hold for every InvalidEdgeError.
func (e *InvalidEdgeError) Is(target error) bool { return target == ErrInvalidEdge }

// Unwrap exposes the concrete reason sentinel.
func (e *InvalidEdgeError) Unwrap() error { return e.Reason }

// Graph is an immutable, undirected, unweighted graph over dense node indices.
//
// Labels are assigned indices 0..n-1 in first-appearance order (explicit
// nodes from WithNodes first, then edge endpoints in input order). adj[i]
// holds the neighbor indices of i in ascending order; adjacency is
// symmetric and loop-free. A Graph is never mutated after construction
// and is safe for any number of concurrent readers.
type Graph struct {
	labels []string       // index → label
	index  map[string]int // label → index
	adj    [][]int        // sorted neighbor indices per node
	edges  int            // number of unique undirected edges
}

// GraphOption configures NewGraph.
type GraphOption func(b *Builder)

// WithNodes registers labels before any edge is added, so isolated nodes
// are part of the graph and the leading indices follow the given order.
// Empty labels are recorded and reported by NewGraph as ErrEmptyNodeID.
func WithNodes(ids ...string) GraphOption {
	return func(b *Builder) {
		for _, id := range ids {
			if _, err := b.AddNode(id); err != nil && b.err == nil {
				b.err = &InvalidEdgeError{Reason: err}
			}
		}
	}
}

// NewGraph builds an immutable Graph from edges.
//
// Duplicate pairs (in either orientation) collapse to one edge. The first
// rejected pair aborts construction with an *InvalidEdgeError whose Line
// is the 1-based position of the pair in edges. A graph without nodes
// returns ErrEmptyGraph.
//
// Complexity: O(n + m log Δ) time, O(n + m) space.
func NewGraph(edges []Edge, opts ...GraphOption) (*Graph, error) {
	b := NewBuilder()
	for _, opt := range opts {
		opt(b)
	}
	for i, e := range edges {
		if err := b.addEdgeAt(e.From, e.To, i+1); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
