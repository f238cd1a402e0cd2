// Package core provides the in-memory Graph shared by the search packages
// (bfs, dfs, dijkstra, gridgraph) and by the puzzles that model their input
// as a graph: directory trees, valve tunnels, hill maps, monkey expressions.
//
// A Graph G = (V,E) is configured once with GraphOptions:
//
//   - WithDirected(true)   edges are one-way; Neighbors(v) yields outgoing edges only.
//   - WithWeighted()       non-zero weights are accepted; otherwise AddEdge(w != 0) → ErrBadWeight.
//   - WithMultiEdges()     parallel edges between the same endpoints are accepted.
//   - WithLoops()          self-loops are accepted.
//
// Vertices are identified by non-empty strings. Edges get generated IDs
// ("e1", "e2", ...) in insertion order, and every listing method returns
// results in a deterministic order: Vertices() lexicographically, Edges() and
// Neighbors() by insertion sequence.
//
// Adjacency is a nested map adjacency[from][to][edgeID]. Undirected edges are
// mirrored under adjacency[to][from] so that neighbor lookups stay O(deg(v)).
//
// The Graph is guarded by a sync.RWMutex, so readers never observe a
// half-inserted edge.
//
// Errors:
//
//	ErrEmptyVertexID       vertex ID is the empty string.
//	ErrVertexNotFound      requested vertex does not exist.
//	ErrEdgeNotFound        requested edge does not exist.
//	ErrBadWeight           non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed      self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed parallel edge when multi-edges are disabled.
package core
