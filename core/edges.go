package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// AddEdge connects from and to with the given weight and returns the new
// edge ID. Missing endpoints are created.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextEdgeID++
	e := &Edge{
		ID:       fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
		seq:      g.nextEdgeID,
	}
	g.edges[e.ID] = e
	g.link(from, to, e.ID)
	if !e.Directed && from != to {
		g.link(to, from, e.ID)
	}

	return e.ID, nil
}

func (g *Graph) link(from, to, eid string) {
	inner, ok := g.adjacency[from][to]
	if !ok {
		inner = make(map[string]struct{})
		g.adjacency[from][to] = inner
	}
	inner[eid] = struct{}{}
}

// RemoveEdge deletes the edge with the given ID.
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.unlinkLocked(eid, e)

	return nil
}

func (g *Graph) unlinkLocked(eid string, e *Edge) {
	delete(g.edges, eid)
	for _, pair := range [][2]string{{e.From, e.To}, {e.To, e.From}} {
		inner := g.adjacency[pair[0]][pair[1]]
		delete(inner, eid)
		if len(inner) == 0 {
			delete(g.adjacency[pair[0]], pair[1])
		}
	}
}

// HasEdge reports whether at least one edge leads from 'from' to 'to'.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns the edges leaving id, in insertion order. For undirected
// edges the returned Edge may have id as its To endpoint; use Edge.Other to
// get the neighbor. Treat returned edges as read-only.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	var out []*Edge
	for _, set := range adj {
		for eid := range set {
			out = append(out, g.edges[eid])
		}
	}
	sortBySeq(out)

	return out, nil
}

// NeighborIDs returns the unique vertices reachable from id over one edge,
// in the order their first connecting edge was inserted.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		n := e.Other(id)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		ids = append(ids, n)
	}

	return ids, nil
}

func sortBySeq(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].seq < edges[j].seq })
}
