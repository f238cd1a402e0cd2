package day14_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day14"
	"github.com/katalvlaran/aoc2022/gridgraph"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const sample = `498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9
`

func TestSolve_Sample(t *testing.T) {
	ans, err := day14.Solve(context.Background(), strings.NewReader(sample), nil)
	require.NoError(t, err)
	assert.Equal(t, "24", ans.Part1)
	assert.Equal(t, "93", ans.Part2)
}

func TestSolve_ShiftedSource(t *testing.T) {
	shifted := `0,4 -> 0,6 -> -2,6
5,4 -> 4,4 -> 4,9 -> -4,9
`
	ans, err := day14.Solve(context.Background(), strings.NewReader(shifted), puzzle.StaticParams{"source_x": 2})
	require.NoError(t, err)
	assert.Equal(t, "24", ans.Part1)
	assert.Equal(t, "93", ans.Part2)
}

func TestPour_Reproducible(t *testing.T) {
	paths, err := day14.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	a, err := day14.NewCave(paths, 500)
	require.NoError(t, err)
	b, err := day14.NewCave(paths, 500)
	require.NoError(t, err)
	na, err := a.Pour(false)
	require.NoError(t, err)
	nb, err := b.Pour(false)
	require.NoError(t, err)
	assert.Equal(t, 24, na)
	assert.Equal(t, na, nb)
	assert.Equal(t, a.Render(), b.Render())
	assert.Equal(t, 11, a.Floor)
	assert.Contains(t, a.Render(), "#########")
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"498,4 -> 497,5\n", "498;4\n", "1,-2\n", "a,4\n"} {
		_, err := day14.Parse(strings.NewReader(in))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}

func TestNewCave_RockAboveSource(t *testing.T) {
	_, err := day14.NewCave([]day14.Path{{{X: 500, Y: -1}, {X: 502, Y: -1}}}, 500)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}
