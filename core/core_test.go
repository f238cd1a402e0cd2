package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/core"
)

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())

	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	require.NoError(t, g.RemoveVertex("A"))
	assert.False(t, g.HasVertex("A"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveVertex("A"), core.ErrVertexNotFound)
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	cases := []struct {
		name     string
		opts     []core.GraphOption
		from, to string
		weight   int64
		err      error
	}{
		{"EmptyID", nil, "", "B", 0, core.ErrEmptyVertexID},
		{"WeightOnUnweighted", nil, "A", "B", 3, core.ErrBadWeight},
		{"LoopRejected", nil, "A", "A", 0, core.ErrLoopNotAllowed},
		{"LoopAccepted", []core.GraphOption{core.WithLoops()}, "A", "A", 0, nil},
		{"Weighted", []core.GraphOption{core.WithWeighted()}, "A", "B", 7, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			_, err := g.AddEdge(tc.from, tc.to, tc.weight)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestGraph_MultiEdges(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("B", "A", 0) // mirror of an undirected edge
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	m := core.NewGraph(core.WithMultiEdges())
	_, err = m.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = m.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, m.EdgeCount())
	ids, err := m.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ids)
}

func TestGraph_DirectedNeighbors(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("root", "b", 0)
	_, _ = g.AddEdge("root", "a", 0)
	_, _ = g.AddEdge("a", "root", 0)

	ids, err := g.NeighborIDs("root")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids, "insertion order")

	ids, err = g.NeighborIDs("b")
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.True(t, g.HasEdge("a", "root"))
	assert.False(t, g.HasEdge("b", "root"))

	in, out, err := g.Degree("root")
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 2, out)

	_, err = g.Neighbors("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_UndirectedOther(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("AA", "BB", 0)
	require.NoError(t, err)

	edges, err := g.Neighbors("BB")
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, eid, edges[0].ID)
	assert.Equal(t, "AA", edges[0].Other("BB"))
	assert.Equal(t, "BB", edges[0].Other("AA"))

	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge("BB", "AA"))
	assert.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)
}

func TestGraph_Metadata(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("/a"))
	require.NoError(t, g.SetMetadata("/a", "size", int64(42)))
	v, ok := g.Metadata("/a", "size")
	require.True(t, ok)
	assert.Equal(t, int64(42), v)

	_, ok = g.Metadata("/b", "size")
	assert.False(t, ok)
	assert.ErrorIs(t, g.SetMetadata("/b", "size", 1), core.ErrVertexNotFound)
}

func TestGraph_EdgesInInsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	for i, pair := range [][2]string{{"x", "y"}, {"a", "b"}, {"m", "n"}} {
		_, err := g.AddEdge(pair[0], pair[1], int64(i+1))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "x", edges[0].From)
	assert.Equal(t, "a", edges[1].From)
	assert.Equal(t, int64(3), edges[2].Weight)
}
