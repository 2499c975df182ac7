// Package clustering computes triangle-based local structure of a
// core.Graph: per-node triangle counts, the local clustering coefficient
// and its graph-wide average.
//
// A triangle at v is a pair of neighbors of v that are themselves
// adjacent. For deg(v) = d:
//
//	C(v) = 2·T(v) / (d·(d−1))   when d ≥ 2
//	C(v) = 0                    when d < 2
//
// Counting intersects neighbor lists through a stamp array, so each node
// costs O(Σ_{u∈N(v)} deg(u)) with no per-node allocation.
package clustering

import (
	"errors"

	"github.com/katalvlaran/netrank/core"
)

// ErrGraphNil indicates a nil *core.Graph.
var ErrGraphNil = errors.New("clustering: graph is nil")

// MetricClustering names this metric in results and exports.
const MetricClustering = "clustering"

// Triangles returns T(v) for every node, indexed like g.
//
// Complexity: O(Σ_v Σ_{u∈N(v)} deg(u)) = O(Σ deg²) time, O(n) space.
func Triangles(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, core.ErrEmptyGraph
	}

	tri := make([]int, n)
	// stamp[w] == v+1 marks w as a neighbor of the node being scanned
	stamp := make([]int, n)
	for v := 0; v < n; v++ {
		nbrs := g.NeighborsOf(v)
		if len(nbrs) < 2 {
			continue
		}
		for _, u := range nbrs {
			stamp[u] = v + 1
		}
		var links int
		for _, u := range nbrs {
			for _, w := range g.NeighborsOf(u) {
				if stamp[w] == v+1 {
					links++
				}
			}
		}
		// every neighbor-neighbor edge was seen from both ends
		tri[v] = links / 2
	}

	return tri, nil
}

// Local returns the local clustering coefficient of every node.
// Scores lie in [0, 1].
//
// Errors: ErrGraphNil, core.ErrEmptyGraph.
func Local(g *core.Graph) (core.ScoreMap, error) {
	tri, err := Triangles(g)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(tri))
	for v, t := range tri {
		d := g.DegreeOf(v)
		if d < 2 {
			continue
		}
		scores[v] = 2 * float64(t) / (float64(d) * float64(d-1))
	}

	return g.Vector(scores), nil
}

// Average returns the mean local coefficient over all nodes, degree < 2
// nodes counting as 0.
func Average(g *core.Graph) (float64, error) {
	s, err := Local(g)
	if err != nil {
		return 0, err
	}

	return s.Sum(g) / float64(g.NodeCount()), nil
}

// TotalTriangles returns the number of distinct triangles in g.
func TotalTriangles(g *core.Graph) (int, error) {
	tri, err := Triangles(g)
	if err != nil {
		return 0, err
	}
	var sum int
	for _, t := range tri {
		sum += t
	}

	return sum / 3, nil
}
