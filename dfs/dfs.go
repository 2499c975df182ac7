// Package dfs implements iterative depth-first search (single-source and
// forest) on core.Graph.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/netrank/core"
)

// frame is one entry of the explicit DFS stack: a node and the position
// of the next neighbor to try.
type frame struct {
	node int
	next int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on g from the node labelled startID, or
// over every component when WithFullTraversal is given. Neighbors are
// tried in index order, so the result is deterministic.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, the
// context error if Ctx is cancelled, or a hook error.
//
// Complexity: O(n + m) time, O(n) extra memory; no recursion.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	n := g.NodeCount()
	res := &DFSResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if res.Depth[v] < 0 {
				if err := w.walk(v); err != nil {
					return nil, err
				}
			}
		}
		return res, nil
	}

	start, ok := g.Index(startID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}
	if err := w.walk(start); err != nil {
		return nil, err
	}

	return res, nil
}

// walk explores the tree rooted at root.
func (w *dfsWalker) walk(root int) error {
	w.res.Roots = append(w.res.Roots, root)
	if err := w.discover(root, 0); err != nil {
		return err
	}
	w.stack = append(w.stack[:0], frame{node: root})

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		nbrs := w.graph.NeighborsOf(top.node)
		depth := w.res.Depth[top.node]

		descended := false
		if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
			for top.next < len(nbrs) {
				u := nbrs[top.next]
				top.next++
				if w.res.Depth[u] >= 0 {
					continue
				}
				w.res.Parent[u] = top.node
				if err := w.discover(u, depth+1); err != nil {
					return err
				}
				// top is invalidated by the append
				w.stack = append(w.stack, frame{node: u})
				descended = true
				break
			}
		}
		if descended {
			continue
		}

		v := top.node
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(v); err != nil {
				return fmt.Errorf("dfs: OnExit error at %q: %w", w.graph.Label(v), err)
			}
		}
		w.res.Order = append(w.res.Order, v)
	}

	return nil
}

func (w *dfsWalker) discover(v, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.res.Depth[v] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %q: %w", w.graph.Label(v), err)
		}
	}
	return nil
}
