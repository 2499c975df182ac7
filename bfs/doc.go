// Package bfs provides a breadth-first shortest-path engine over a
// core.Graph, returning distances, shortest-path counts and predecessor
// lists for one source at a time.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a source.
//   - Returns a PathRecord containing:
//   - Order: discovery sequence (also the processing order of the queue)
//   - Dist:  hop count per node, −1 when unreached
//   - Sigma: number of distinct shortest paths per node
//   - Pred:  predecessors on shortest paths per node
//   - Supports an OnVisit hook (may abort with an error) and a MaxDepth
//     limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Closeness centrality aggregates Dist per source.
//   - Betweenness centrality (Brandes) needs Sigma and Pred, and processes
//     Order in reverse to accumulate dependencies without recursion.
//
// Determinism
//
//	core.Graph neighbor lists are sorted by index and the queue is FIFO,
//	so Order, Pred and Sigma are fully reproducible.
//
// Complexity (n = nodes, m = edges)
//
//   - Time:   O(n + m) per source
//   - Memory: O(n + m) (Pred lists hold at most 2m entries)
//
// Usage
//
//	rec, err := bfs.ShortestPaths(g, "A")
//
//	// all-sources callers reuse buffers:
//	w, _ := bfs.NewWalker(g)
//	for s := 0; s < g.NodeCount(); s++ {
//	    rec, _ := w.Run(s) // valid until the next Run
//	    ...
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the source does not exist.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
