// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries and the dense-vector → ScoreMap bridge.
// Policy:
//   - No algorithms here; metric packages live elsewhere.
//   - Every exported function documents its complexity.

package core

// GraphStats is a value snapshot of a Graph's size and shape.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	IsolatedCount int     // nodes with degree 0
	MaxDegree     int     // Δ(G)
	Density       float64 // 2m / (n(n-1)); 0 when n < 2
}

// Stats computes a GraphStats snapshot.
//
// Implementation:
//   - Stage 1: copy the O(1) counters.
//   - Stage 2: one pass over the degree sequence for isolated/max degree.
//
// Complexity:
//   - Time O(n), Space O(1).
func (g *Graph) Stats() GraphStats {
	n := len(g.labels)
	s := GraphStats{NodeCount: n, EdgeCount: g.edges}
	for _, nbrs := range g.adj {
		d := len(nbrs)
		if d == 0 {
			s.IsolatedCount++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	if n > 1 {
		s.Density = 2 * float64(g.edges) / (float64(n) * float64(n-1))
	}

	return s
}

// Vector lifts a dense score vector (indexed like g) into a ScoreMap.
// The vector length must equal NodeCount; extra entries are ignored and
// missing ones read as 0.
//
// Complexity:
//   - Time O(n), Space O(n).
func (g *Graph) Vector(scores []float64) ScoreMap {
	out := make(ScoreMap, len(g.labels))
	for i, id := range g.labels {
		if i < len(scores) {
			out[id] = scores[i]
		} else {
			out[id] = 0
		}
	}

	return out
}
