package dfs

import (
	"context"
	"errors"
)

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates a back-edge during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedGraph is returned by TopologicalSort on undirected graphs.
	ErrUndirectedGraph = errors.New("dfs: topological sort requires a directed graph")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	Ctx context.Context

	// OnVisit is invoked when a vertex is discovered (pre-order).
	OnVisit func(id string) error

	// OnExit is invoked after every descendant of a vertex is explored
	// (post-order), before it is appended to DFSResult.Order.
	OnExit func(id string) error

	// FullTraversal restarts DFS from every unvisited vertex.
	FullTraversal bool
}

// DefaultOptions returns DFSOptions with a background context and no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets the Context for DFS traversal. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithFullTraversal covers disconnected components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in post-order.
	Order []string

	// Depth maps each vertex to its tree depth from its root.
	Depth map[string]int

	// Parent maps each non-root vertex to the vertex it was discovered from.
	Parent map[string]string

	Visited map[string]bool
}
