// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in non-decreasing edge count from a start vertex.
// The result holds:
//
//   - Order:  visit sequence
//   - Depth:  vertex → distance (edges) from start
//   - Parent: vertex → predecessor in the BFS tree
//
// Options:
//
//   - WithContext(ctx)          cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d)           do not enqueue vertices deeper than d (0 = no limit).
//   - WithFilterNeighbor(fn)    skip the step curr→neighbor when fn returns false.
//   - WithOnVisit(fn)           hook on visit; a non-nil error aborts the search.
//
// Determinism: core.Graph.NeighborIDs lists neighbors in edge insertion
// order, so the visit sequence is reproducible for the same construction order.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors:
//
//	ErrGraphNil, ErrStartVertexNotFound, ErrWeightedGraph, ErrOptionViolation, ErrNeighbors.
package bfs
