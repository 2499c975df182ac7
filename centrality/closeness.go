package centrality

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netrank/bfs"
	"github.com/katalvlaran/netrank/core"
)

// Closeness returns closeness centrality from one BFS per node.
//
// For node u with R the nodes reachable from u (excluding u) and S the
// sum of their distances:
//
//	C(u) = 0                              if S == 0 (isolated)
//	C(u) = (|R|/S) · (|R|/(n−1))          if WFImproved
//	C(u) = |R|/S                          otherwise
//
// Scores lie in [0, 1]; on a connected graph both forms reduce to
// (n−1)/Σ d(u,v).
//
// Complexity: O(n·(n+m)) time, O(Workers·(n+m)) extra space.
func Closeness(g *core.Graph, opts ClosenessOptions) (core.ScoreMap, error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	if err := validateWorkers(opts.Workers); err != nil {
		return nil, err
	}

	n := g.NodeCount()
	scores := make([]float64, n)
	workers := min(resolveWorkers(opts.Workers), n)
	chunk := (n + workers - 1) / workers

	var eg errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			w, err := bfs.NewWalker(g)
			if err != nil {
				return err
			}
			for u := lo; u < hi; u++ {
				rec, err := w.Run(u)
				if err != nil {
					return err
				}
				reached, total := rec.DistanceSum()
				scores[u] = closeness(reached, total, n, opts.WFImproved)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := checkFinite(MetricCloseness, g, scores); err != nil {
		return nil, err
	}

	return g.Vector(scores), nil
}

func closeness(reached, total, n int, wfImproved bool) float64 {
	if total == 0 {
		return 0
	}
	c := float64(reached) / float64(total)
	if wfImproved && n > 1 {
		c *= float64(reached) / float64(n-1)
	}

	return c
}
