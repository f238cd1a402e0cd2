package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/core"
	"github.com/katalvlaran/aoc2022/dfs"
)

func tree() *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"/", "/a"}, {"/a", "/a/e"}, {"/", "/d"}} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	return g
}

func TestDFS_PostOrderAndDepth(t *testing.T) {
	res, err := dfs.DFS(tree(), "/")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/e", "/a", "/d", "/"}, res.Order)
	assert.Equal(t, 2, res.Depth["/a/e"])
	assert.Equal(t, "/a", res.Parent["/a/e"])
	_, hasParent := res.Parent["/"]
	assert.False(t, hasParent)
}

func TestDFS_HooksFoldSubtrees(t *testing.T) {
	g := tree()
	own := map[string]int{"/": 1, "/a": 10, "/a/e": 100, "/d": 1000}
	total := map[string]int{}
	var pre []string

	_, err := dfs.DFS(g, "/",
		dfs.WithOnVisit(func(id string) error {
			pre = append(pre, id)
			return nil
		}),
		dfs.WithOnExit(func(id string) error {
			total[id] = own[id]
			children, err := g.NeighborIDs(id)
			if err != nil {
				return err
			}
			for _, c := range children {
				total[id] += total[c]
			}
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/a", "/a/e", "/d"}, pre)
	assert.Equal(t, 110, total["/a"])
	assert.Equal(t, 1111, total["/"])
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "x")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(tree(), "missing")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	boom := errors.New("boom")
	_, err = dfs.DFS(tree(), "/", dfs.WithOnExit(func(id string) error {
		if id == "/d" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(tree(), "/", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := tree()
	require.NoError(t, g.AddVertex("lonely"))
	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)
	assert.True(t, res.Visited["lonely"])
}
