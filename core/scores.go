package core

import (
	"math"
	"sort"
)

// ScoreMap maps every node label to its score for one metric.
type ScoreMap map[string]float64

// Ranked is one (node, score) entry of a ScoreMap ordering.
type Ranked struct {
	Node  string
	Score float64
}

// Ranked returns the entries of s ordered by descending score. Ties keep
// the node order of g, so the result is deterministic. Nodes of g missing
// from s are skipped.
func (s ScoreMap) Ranked(g *Graph) []Ranked {
	out := make([]Ranked, 0, len(s))
	for _, id := range g.labels {
		if v, ok := s[id]; ok {
			out = append(out, Ranked{Node: id, Score: v})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	return out
}

// Sum returns the sum of all scores, accumulated in the node order of g.
func (s ScoreMap) Sum(g *Graph) float64 {
	var total float64
	for _, id := range g.labels {
		total += s[id]
	}

	return total
}

// Bounds returns the minimum and maximum score; both are 0 for an empty map.
func (s ScoreMap) Bounds() (lo, hi float64) {
	if len(s) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range s {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}
