package centrality

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minParallelNodes is the vector length below which per-iteration updates
// stay on the calling goroutine.
const minParallelNodes = 2048

// resolveWorkers maps the Workers option to a positive count.
func resolveWorkers(w int) int {
	if w == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return w
}

// parallelRange calls fn over contiguous sub-ranges of [0, n). Each index
// belongs to exactly one sub-range, so writes to per-index slots never
// race and results do not depend on the worker count.
func parallelRange(n, workers int, fn func(lo, hi int)) {
	if workers <= 1 || n < minParallelNodes {
		fn(0, n)
		return
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var eg errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = eg.Wait()
}

// l1 returns Σ|a[i]−b[i]| accumulated in index order.
func l1(a, b []float64) float64 {
	var d float64
	for i := range a {
		d += math.Abs(a[i] - b[i])
	}
	return d
}

// euclidean returns ‖x‖₂.
func euclidean(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}
	return math.Sqrt(s)
}
