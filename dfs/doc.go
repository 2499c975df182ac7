// Package dfs implements depth-first traversal and connected-component
// labelling on a core.Graph.
//
// What:
//
//   - DFS(g, startID, opts...) explores as far as possible along each
//     branch before backtracking, with an explicit stack (no recursion, so
//     long paths cannot overflow the goroutine stack). Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Forest traversal over every component
//   - ConnectedComponents(g) labels each node with its component, which
//     the CLI reports next to node and edge counts. Closeness and
//     eigenvector scores are only comparable inside a component.
//
// Determinism:
//
//	Roots are taken in index order and neighbors in sorted index order,
//	so Order, Parent and component ids never vary between runs.
//
// Complexity:
//
//   - DFS:                 Time O(n+m), Memory O(n)
//   - ConnectedComponents: Time O(n+m), Memory O(n)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start label not in graph
//   - ErrOptionViolation      MaxDepth below -1
//   - context.Canceled        traversal cancelled via context
//   - hook errors             wrapped from OnVisit or OnExit
package dfs
