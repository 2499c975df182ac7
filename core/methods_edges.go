// File: methods_edges.go
// Role: Edge enumeration and counting.
// Determinism:
//   - Edges() lists each undirected edge once as {lower index, higher index},
//     ordered by (From index, To index).

package core

// Edges returns every edge once, lower-index endpoint first.
// Complexity: O(n + m).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for i, nbrs := range g.adj {
		for _, j := range nbrs {
			if j > i {
				out = append(out, Edge{From: g.labels[i], To: g.labels[j]})
			}
		}
	}

	return out
}

// EdgeCount returns m, the number of unique undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edges
}
