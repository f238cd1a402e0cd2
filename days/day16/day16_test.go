package day16_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/bfs"
	"github.com/katalvlaran/aoc2022/core"
	"github.com/katalvlaran/aoc2022/days/day16"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const sample = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

func TestSolve_Sample(t *testing.T) {
	ans, err := day16.Solve(context.Background(), strings.NewReader(sample), nil)
	require.NoError(t, err)
	assert.Equal(t, "1651", ans.Part1)
	assert.Equal(t, "1707", ans.Part2)
}

func TestNetwork_Distances(t *testing.T) {
	valves, err := day16.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, []string{"GG"}, valves[7].Tunnels)

	n, err := day16.NewNetwork(context.Background(), valves)
	require.NoError(t, err)
	assert.Equal(t, []string{"BB", "CC", "DD", "EE", "HH", "JJ"}, n.Names)

	start := len(n.Names)
	assert.Equal(t, 1, n.Dist[start][0]) // AA -> BB
	assert.Equal(t, 5, n.Dist[start][4]) // AA -> DD -> EE -> FF -> GG -> HH
	assert.Equal(t, 2, n.Dist[start][5]) // AA -> II -> JJ
	assert.Equal(t, 0, n.Dist[2][2])
}

func TestNetwork_DistancesMatchBFS(t *testing.T) {
	valves, err := day16.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	n, err := day16.NewNetwork(context.Background(), valves)
	require.NoError(t, err)

	g := core.NewGraph()
	for _, v := range valves {
		for _, to := range v.Tunnels {
			if !g.HasEdge(v.Name, to) {
				_, err = g.AddEdge(v.Name, to, 0)
				require.NoError(t, err)
			}
		}
	}
	keys := append(append([]string(nil), n.Names...), day16.Start)
	for i, from := range keys {
		res, err := bfs.BFS(g, from)
		require.NoError(t, err)
		for j, to := range keys {
			assert.Equal(t, res.Depth[to], n.Dist[i][j], "%s→%s", from, to)
		}
	}
}

func TestPart2_PairwiseMatchesSubsetDP(t *testing.T) {
	valves, err := day16.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	n, err := day16.NewNetwork(context.Background(), valves)
	require.NoError(t, err)

	// brute force over recorded sets
	best := n.BestPerSet(context.Background(), 26)
	want := 0
	for a, va := range best {
		for b, vb := range best {
			if a&b == 0 {
				want = max(want, va+vb)
			}
		}
	}
	assert.Equal(t, want, day16.Part2(context.Background(), n, 26))
}

func TestErrors(t *testing.T) {
	_, err := day16.Parse(strings.NewReader("Valve AA has flow rate=x; tunnels lead to valves BB\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	valves, err := day16.Parse(strings.NewReader("Valve BB has flow rate=1; tunnel leads to valve CC\nValve CC has flow rate=0; tunnel leads to valve BB\n"))
	require.NoError(t, err)
	_, err = day16.NewNetwork(context.Background(), valves)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	valves[0].Tunnels = []string{"ZZ"}
	_, err = day16.NewNetwork(context.Background(), valves)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
