// Package bfs provides tunable options, error definitions and the
// PathRecord result for single-source breadth-first search.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the source is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the walker is built.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// MaxDepth, if > 0, stops discovering nodes beyond this distance.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnVisit is called when a node is dequeued, with its index and
	// distance. Returning an error aborts the walk.
	OnVisit func(node, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		OnVisit:  func(int, int) error { return nil },
	}
}

// WithMaxDepth limits discovery to distance d.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run on every dequeued node.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// PathRecord is the outcome of one single-source walk over dense indices:
//   - Order: reached nodes in discovery order (non-decreasing Dist).
//   - Dist:  hop count from Source, −1 for unreached nodes.
//   - Sigma: number of distinct shortest Source→v paths (float64, so
//     exponential path counts degrade gracefully instead of overflowing).
//   - Pred:  predecessors of v on shortest paths, in discovery order.
//
// A record returned by Walker.Run is owned by the Walker and is only valid
// until its next Run.
type PathRecord struct {
	Source int
	Order  []int
	Dist   []int
	Sigma  []float64
	Pred   [][]int
}

// Reachable reports whether v was reached from Source.
func (r *PathRecord) Reachable(v int) bool {
	return r.Dist[v] >= 0
}

// DistanceSum returns the number of reached nodes other than Source and
// the sum of their distances.
func (r *PathRecord) DistanceSum() (reached, total int) {
	for _, v := range r.Order {
		if v == r.Source {
			continue
		}
		reached++
		total += r.Dist[v]
	}

	return reached, total
}

// PathTo reconstructs one shortest path Source → dest by following the
// first predecessor of every node. Returns nil if dest was not reached.
func (r *PathRecord) PathTo(dest int) []int {
	if dest < 0 || dest >= len(r.Dist) || r.Dist[dest] < 0 {
		return nil
	}
	path := make([]int, r.Dist[dest]+1)
	for cur, k := dest, len(path)-1; k >= 0; k-- {
		path[k] = cur
		if k > 0 {
			cur = r.Pred[cur][0]
		}
	}

	return path
}
