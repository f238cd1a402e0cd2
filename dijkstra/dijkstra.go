package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/aoc2022/core"
)

// Dijkstra computes shortest distances from the configured source to every
// vertex of g. dist holds Unreachable for vertices never reached; prev is nil
// unless WithReturnPath is given.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if cfg.MaxDistance < 0 {
		return nil, nil, ErrBadMaxDistance
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state of one Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

func newRunner(g *core.Graph, cfg Options) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = Unreachable
	}
	r.dist[cfg.Source] = 0
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})

	return r
}

func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if item.id == r.options.Target {
			return nil
		}
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	for _, e := range neighbors {
		v := e.Other(u)
		nd := r.dist[u] + e.Weight
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// PathTo walks prev back from dest to the source.
// It returns nil when dest was not reached.
func PathTo(prev map[string]string, source, dest string) []string {
	path := []string{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem keyed by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
