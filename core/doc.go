// Package core provides the immutable, index-backed Graph that every
// netrank metric reads.
//
// The Graph G = (V,E) is undirected and unweighted:
//
//   - Nodes are opaque string labels mapped to dense indices 0..n-1 in
//     first-appearance order; the mapping never changes.
//   - Adjacency is stored as one sorted []int per node (arena + index),
//     so solvers iterate plain slices instead of label-keyed maps.
//   - Duplicate pairs collapse to one edge; self-loops and empty labels
//     are rejected with *InvalidEdgeError.
//   - There are no mutators: once NewGraph or Builder.Build returns, the
//     Graph can be shared across goroutines without locks.
//
// Construction:
//
//	g, err := core.NewGraph([]core.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}})
//
//	b := core.NewBuilder()
//	_ = b.AddEdgeAt("A", "B", 1)
//	g, err := b.Build()
//
// Queries:
//
//	Nodes() []string                      // O(n), index order
//	Neighbors(id) ([]string, error)       // O(deg)
//	Degree(id) (int, error)               // O(1)
//	HasEdge(u, v) bool                    // O(log deg)
//	NodeCount(), EdgeCount()              // O(1)
//	Index(id), Label(i)                   // O(1)
//	NeighborsOf(i) []int, DegreeOf(i) int // O(1), read-only slices
//	Stats() GraphStats                    // O(n)
//
// Results:
//
//	ScoreMap is the node → score mapping returned by every metric;
//	Graph.Vector lifts a dense []float64 into one.
//
// Errors:
//
//	ErrInvalidEdge   – matched by every *InvalidEdgeError
//	ErrSelfLoop      – pair with equal endpoints
//	ErrEmptyNodeID   – empty label
//	ErrMalformedPair – incomplete pair (text sources)
//	ErrEmptyGraph    – zero nodes
//	ErrNodeNotFound  – unknown label in a query
package core
