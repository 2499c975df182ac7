package centrality

import "github.com/katalvlaran/netrank/core"

// Degree returns C_D(v) = deg(v)/(n−1) for every node. A single-node
// graph scores 0.
//
// Complexity: O(n).
func Degree(g *core.Graph) (core.ScoreMap, error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	n := g.NodeCount()
	scores := make([]float64, n)
	if n > 1 {
		scale := 1 / float64(n-1)
		for i := range scores {
			scores[i] = float64(g.DegreeOf(i)) * scale
		}
	}

	return g.Vector(scores), nil
}
