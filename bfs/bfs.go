// Package bfs provides the single-source shortest-path engine over an
// unweighted core.Graph: distances, shortest-path counts and predecessor
// lists, as consumed by closeness and betweenness centrality.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/netrank/core"
)

// Walker owns reusable BFS buffers for one graph. Running it from many
// sources costs O(n+m) per source with no per-run allocation once the
// predecessor lists have grown. A Walker is not safe for concurrent use;
// give each goroutine its own.
type Walker struct {
	graph *core.Graph
	opts  Options
	queue []int
	rec   PathRecord
}

// NewWalker prepares a Walker for g.
// Returns ErrGraphNil for a nil graph or ErrOptionViolation for bad options.
func NewWalker(g *core.Graph, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	w := &Walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		rec: PathRecord{
			Source: -1,
			Order:  make([]int, 0, n),
			Dist:   make([]int, n),
			Sigma:  make([]float64, n),
			Pred:   make([][]int, n),
		},
	}
	for i := range w.rec.Dist {
		w.rec.Dist[i] = -1
	}

	return w, nil
}

// Run walks from node index src and returns the Walker-owned record.
// Returns ErrStartVertexNotFound for an out-of-range index, or the
// wrapped OnVisit error.
func (w *Walker) Run(src int) (*PathRecord, error) {
	if src < 0 || src >= w.graph.NodeCount() {
		return nil, fmt.Errorf("%w: index %d", ErrStartVertexNotFound, src)
	}
	w.reset()

	r := &w.rec
	r.Source = src
	r.Dist[src] = 0
	r.Sigma[src] = 1
	w.queue = append(w.queue[:0], src)
	r.Order = append(r.Order, src)

	for head := 0; head < len(w.queue); head++ {
		v := w.queue[head]
		dv := r.Dist[v]
		if err := w.opts.OnVisit(v, dv); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %q: %w", w.graph.Label(v), err)
		}
		if w.opts.MaxDepth > 0 && dv >= w.opts.MaxDepth {
			continue
		}
		for _, u := range w.graph.NeighborsOf(v) {
			// first time seen
			if r.Dist[u] < 0 {
				r.Dist[u] = dv + 1
				w.queue = append(w.queue, u)
				r.Order = append(r.Order, u)
			}
			// v lies on a shortest path to u
			if r.Dist[u] == dv+1 {
				r.Sigma[u] += r.Sigma[v]
				r.Pred[u] = append(r.Pred[u], v)
			}
		}
	}

	return r, nil
}

// reset clears only the entries touched by the previous run.
func (w *Walker) reset() {
	r := &w.rec
	for _, v := range r.Order {
		r.Dist[v] = -1
		r.Sigma[v] = 0
		r.Pred[v] = r.Pred[v][:0]
	}
	r.Order = r.Order[:0]
	r.Source = -1
}

// ShortestPaths runs one BFS from the node labelled source and returns a
// record owned by the caller.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or a
// wrapped OnVisit error.
//
// Complexity: O(n + m) time, O(n + m) space.
func ShortestPaths(g *core.Graph, source string, opts ...Option) (*PathRecord, error) {
	w, err := NewWalker(g, opts...)
	if err != nil {
		return nil, err
	}
	src, ok := g.Index(source)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, source)
	}

	return w.Run(src)
}
