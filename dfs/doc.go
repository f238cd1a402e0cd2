// Package dfs implements depth-first search on core.Graph together with
// topological ordering of directed graphs.
//
//   - DFS(g, startID, opts...) walks from a root, or every root with
//     WithFullTraversal, calling OnVisit in pre-order and OnExit in post-order.
//     Post-order hooks are where subtree aggregates (directory sizes) are folded.
//   - TopologicalSort(g) orders a directed graph so that every edge u→v has u
//     before v; a back-edge yields ErrCycleDetected naming the cycle.
//
// Complexity: O(V + E) time, O(V) memory for state and recursion.
//
// Errors:
//
//	ErrGraphNil, ErrStartVertexNotFound, ErrCycleDetected, ErrUndirectedGraph,
//	context errors, and any error returned by a hook.
package dfs
