package day19_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day19"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const sample = `Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.
`

// As printed in the puzzle text, wrapped over several lines.
const wrapped = `Blueprint 1:
  Each ore robot costs 4 ore.
  Each clay robot costs 2 ore.
  Each obsidian robot costs 3 ore and 14 clay.
  Each geode robot costs 2 ore and 7 obsidian.

Blueprint 2:
  Each ore robot costs 2 ore.
  Each clay robot costs 3 ore.
  Each obsidian robot costs 3 ore and 8 clay.
  Each geode robot costs 3 ore and 12 obsidian.
`

func TestParse(t *testing.T) {
	a, err := day19.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	b, err := day19.Parse(strings.NewReader(wrapped))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	require.Len(t, a, 2)
	assert.Equal(t, [3]int{3, 8, 0}, a[1].Cost[day19.Obsidian])
}

func TestMaxGeodes(t *testing.T) {
	bps, err := day19.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 9, day19.MaxGeodes(bps[0], 24))
	assert.Equal(t, 12, day19.MaxGeodes(bps[1], 24))
}

func TestSolve_Sample(t *testing.T) {
	if testing.Short() {
		t.Skip("32-minute search is slow")
	}
	ans, err := day19.Solve(context.Background(), strings.NewReader(sample), nil)
	require.NoError(t, err)
	assert.Equal(t, "33", ans.Part1)
	assert.Equal(t, "3472", ans.Part2)
}

func TestParse_Malformed(t *testing.T) {
	_, err := day19.Parse(strings.NewReader("Blueprint 1: Each ore robot costs lots of ore and 7 obsidian.\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
