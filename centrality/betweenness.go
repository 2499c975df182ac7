// SPDX-License-Identifier: MIT

package centrality

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netrank/bfs"
	"github.com/katalvlaran/netrank/core"
)

// betweennessShards bounds how many source partitions Betweenness
// accumulates separately. The partitioning depends on n only, so the
// floating-point summation order, and hence the result, is the same for
// every Workers value.
const betweennessShards = 32

// Betweenness returns Brandes betweenness centrality.
//
// Implementation:
//   - Sources are split into contiguous shards; each shard runs one BFS per
//     source and accumulates dependencies into a private vector:
//     δ(v) = Σ_{w: v∈Pred(w)} σ(v)/σ(w) · (1 + δ(w)), visiting BFS order
//     in reverse.
//   - Shard vectors are summed in shard order.
//   - Each pair is counted from both endpoints, so raw scores are halved;
//     Normalized then divides by (n−1)(n−2)/2 when n > 2.
//
// Complexity: O(n·m) time, O(shards·n + Workers·(n+m)) space.
func Betweenness(g *core.Graph, opts BetweennessOptions) (core.ScoreMap, error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	if err := validateWorkers(opts.Workers); err != nil {
		return nil, err
	}

	n := g.NodeCount()
	shards := min(n, betweennessShards)
	partial := make([][]float64, shards)

	var eg errgroup.Group
	eg.SetLimit(resolveWorkers(opts.Workers))
	for s := 0; s < shards; s++ {
		s := s
		lo, hi := s*n/shards, (s+1)*n/shards
		eg.Go(func() error {
			w, err := bfs.NewWalker(g)
			if err != nil {
				return err
			}
			acc := make([]float64, n)
			delta := make([]float64, n)
			for src := lo; src < hi; src++ {
				rec, err := w.Run(src)
				if err != nil {
					return err
				}
				accumulate(rec, delta, acc)
			}
			partial[s] = acc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	scores := make([]float64, n)
	for _, acc := range partial {
		for v, x := range acc {
			scores[v] += x
		}
	}

	scale := 0.5
	if opts.Normalized && n > 2 {
		scale /= float64(n-1) * float64(n-2) / 2
	}
	for v := range scores {
		scores[v] *= scale
	}
	if err := checkFinite(MetricBetweenness, g, scores); err != nil {
		return nil, err
	}

	return g.Vector(scores), nil
}

// accumulate adds the single-source dependencies of rec into acc. delta is
// scratch space of length n.
func accumulate(rec *bfs.PathRecord, delta, acc []float64) {
	for _, v := range rec.Order {
		delta[v] = 0
	}
	// reverse BFS order visits every node after all of its successors
	for k := len(rec.Order) - 1; k >= 0; k-- {
		w := rec.Order[k]
		coeff := (1 + delta[w]) / rec.Sigma[w]
		for _, v := range rec.Pred[w] {
			delta[v] += rec.Sigma[v] * coeff
		}
		if w != rec.Source {
			acc[w] += delta[w]
		}
	}
}
