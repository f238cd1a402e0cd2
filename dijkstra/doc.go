// Package dijkstra implements Dijkstra's single-source shortest paths on
// weighted core.Graph values with non-negative edge weights.
//
// Usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g,
//	    dijkstra.Source("20,0"),
//	    dijkstra.WithTarget("5,2"),
//	    dijkstra.WithReturnPath(),
//	)
//
// Unreachable vertices keep distance math.MaxInt64 (see Unreachable).
// The priority queue uses lazy decrease-key: stale heap entries are skipped.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
//
// Errors:
//
//	ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound,
//	ErrNegativeWeight, ErrBadMaxDistance.
package dijkstra
