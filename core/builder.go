// File: builder.go
// Role: Incremental ingestion surface producing an immutable Graph.
// Determinism:
//   - Node indices follow first-appearance order of AddNode/AddEdge calls.
//   - Build sorts and de-duplicates every neighbor list.
// Concurrency:
//   - A Builder is NOT safe for concurrent use; the Graph it builds is.

package core

import (
	"slices"
	"strings"
)

// Builder accumulates nodes and edges for a Graph.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	labels []string
	index  map[string]int
	adj    [][]int
	err    error // first error recorded by an option
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// AddNode registers id (idempotent) and returns its dense index.
// Surrounding whitespace is trimmed; an empty label yields ErrEmptyNodeID
// and leaves the Builder unchanged.
func (b *Builder) AddNode(id string) (int, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return -1, ErrEmptyNodeID
	}

	return b.intern(id), nil
}

// AddEdge records the undirected pair {from, to}.
// Errors are *InvalidEdgeError values (errors.Is(err, ErrInvalidEdge)).
func (b *Builder) AddEdge(from, to string) error {
	return b.AddEdgeAt(from, to, 0)
}

// AddEdgeAt is AddEdge with a source position (1-based line) attached to
// any returned *InvalidEdgeError. A rejected pair leaves the Builder
// unchanged.
func (b *Builder) AddEdgeAt(from, to string, line int) error {
	return b.addEdgeAt(from, to, line)
}

func (b *Builder) addEdgeAt(from, to string, line int) error {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	switch {
	case from == "" || to == "":
		return &InvalidEdgeError{Line: line, From: from, To: to, Reason: ErrEmptyNodeID}
	case from == to:
		return &InvalidEdgeError{Line: line, From: from, To: to, Reason: ErrSelfLoop}
	}
	u := b.intern(from)
	v := b.intern(to)
	b.adj[u] = append(b.adj[u], v)
	b.adj[v] = append(b.adj[v], u)

	return nil
}

// NodeCount reports how many distinct labels were registered so far.
func (b *Builder) NodeCount() int { return len(b.labels) }

// Build freezes the current contents into a new Graph. The Builder stays
// usable; later additions never affect graphs already built.
//
// Errors: the first option error, or ErrEmptyGraph when no node exists.
// Complexity: O(n + m log Δ).
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	n := len(b.labels)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	g := &Graph{
		labels: slices.Clone(b.labels),
		index:  make(map[string]int, n),
		adj:    make([][]int, n),
	}
	for id, i := range b.index {
		g.index[id] = i
	}

	var degreeSum int
	for i, nbrs := range b.adj {
		// duplicates collapse here: sort then compact
		list := slices.Clone(nbrs)
		slices.Sort(list)
		list = slices.Compact(list)
		g.adj[i] = slices.Clip(list)
		degreeSum += len(list)
	}
	g.edges = degreeSum / 2

	return g, nil
}

// intern returns the index of id, allocating the next one if absent.
func (b *Builder) intern(id string) int {
	if i, ok := b.index[id]; ok {
		return i
	}
	i := len(b.labels)
	b.index[id] = i
	b.labels = append(b.labels, id)
	b.adj = append(b.adj, nil)

	return i
}
