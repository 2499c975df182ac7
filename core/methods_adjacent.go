// File: methods_adjacent.go
// Role: Neighborhood and degree queries, by label and by dense index.
//
// Determinism:
//   - Neighbor lists are sorted by index ascending.
//
// Notes:
//   - NeighborsOf returns the internal slice; callers must treat it as
//     read-only. This is the hot path of every solver.

package core

import (
	"fmt"
	"slices"
)

// Neighbors returns the labels adjacent to id, in index order.
//
// Errors:
//   - ErrNodeNotFound if id is not a node of g.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrNodeNotFound)
	}
	out := make([]string, len(g.adj[i]))
	for k, j := range g.adj[i] {
		out[k] = g.labels[j]
	}

	return out, nil
}

// Degree returns the number of neighbors of id.
//
// Errors:
//   - ErrNodeNotFound if id is not a node of g.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrNodeNotFound)
	}

	return len(g.adj[i]), nil
}

// HasEdge reports whether {u, v} is an edge. Unknown labels yield false.
// Complexity: O(log deg(u)).
func (g *Graph) HasEdge(u, v string) bool {
	i, ok := g.index[u]
	if !ok {
		return false
	}
	j, ok := g.index[v]
	if !ok {
		return false
	}
	_, found := slices.BinarySearch(g.adj[i], j)

	return found
}

// NeighborsOf returns the sorted neighbor indices of node i (read-only).
// Complexity: O(1).
func (g *Graph) NeighborsOf(i int) []int {
	return g.adj[i]
}

// DegreeOf returns the degree of node i.
// Complexity: O(1).
func (g *Graph) DegreeOf(i int) int {
	return len(g.adj[i])
}
