// File: methods_vertices.go
// Role: Node catalog queries (labels, indices, counts).
//
// Determinism:
//   - Nodes() returns labels in index order, which is the only iteration
//     order used by the metric packages.
//
// Concurrency:
//   - Read-only; no locks are needed on an immutable Graph.

package core

import "slices"

// Nodes returns a copy of all labels in index order.
// Complexity: O(n).
func (g *Graph) Nodes() []string {
	return slices.Clone(g.labels)
}

// NodeCount returns n.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.labels)
}

// HasNode reports whether id is a node of g.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Index returns the dense index of id.
// Complexity: O(1).
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Label returns the label stored at index i. It panics when i is out of
// range, like a slice access; indices come from this Graph only.
// Complexity: O(1).
func (g *Graph) Label(i int) string {
	return g.labels[i]
}
