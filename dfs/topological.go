package dfs

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2022/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. nil is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state map[string]int
	stack []string // current Gray path, for cycle reporting
	order []string
}

// TopologicalSort returns the vertices of the directed graph g so that for
// every edge u→v, u precedes v. Roots are tried in lexicographic order.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	t := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if t.state[v] != White {
			continue
		}
		if err := t.visit(v); err != nil {
			return nil, err
		}
	}
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

func (t *topoSorter) visit(id string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: %s", ErrCycleDetected, t.cycleFrom(id))
	case Black:
		return nil
	}
	t.state[id] = Gray
	t.stack = append(t.stack, id)

	nbs, err := t.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nid := range nbs {
		if err = t.visit(nid); err != nil {
			return err
		}
	}

	t.stack = t.stack[:len(t.stack)-1]
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}

// cycleFrom renders the Gray path from id back to id.
func (t *topoSorter) cycleFrom(id string) string {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i] == id {
			return strings.Join(append(append([]string{}, t.stack[i:]...), id), " → ")
		}
	}

	return id
}
