// Package dfs defines the options and result of depth-first traversal
// over a core.Graph, including cancellation, pre- and post-order hooks,
// depth limiting and forest traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start node does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered
	// (pre-order) with its index and depth. Depth 0 marks a tree root.
	// Returning an error aborts traversal.
	OnVisit func(node, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order). Returning an error aborts traversal.
	OnExit func(node int) error

	// MaxDepth, if non-negative, stops descent below the given depth.
	// A depth of 0 visits only the roots. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal runs DFS from every unvisited node in index order,
	// covering disconnected components (forest traversal).
	FullTraversal bool

	err error
}

// DefaultOptions returns DFSOptions with a background context, no hooks,
// no depth limit and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for traversal. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(node int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth. limit < -1 is rejected with
// ErrOptionViolation; -1 removes the limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= -1 (got %d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFullTraversal visits every component, ignoring the start node.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult holds the outcome of a traversal over dense node indices.
type DFSResult struct {
	// Order lists visited nodes in post-order.
	Order []int
	// Depth is the tree depth of each node, -1 when unvisited.
	Depth []int
	// Parent is the tree parent of each node, -1 for roots and unvisited.
	Parent []int
	// Roots lists the tree roots in the order they were started.
	Roots []int
}

// Visited reports whether node v was reached.
func (r *DFSResult) Visited(v int) bool {
	return r.Depth[v] >= 0
}
