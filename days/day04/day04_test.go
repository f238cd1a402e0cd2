package day04_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day04"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const sample = `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
`

func TestSolve_Sample(t *testing.T) {
	ans, err := day04.Solve(context.Background(), strings.NewReader(sample), nil)
	require.NoError(t, err)
	assert.Equal(t, "2", ans.Part1)
	assert.Equal(t, "4", ans.Part2)
}

func TestOverlapsIsSymmetric(t *testing.T) {
	ranges := []day04.Range{{1, 1}, {1, 3}, {2, 5}, {4, 4}, {6, 9}, {3, 7}}
	for _, a := range ranges {
		for _, b := range ranges {
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "%v %v", a, b)
			if a.Contains(b) {
				assert.True(t, a.Overlaps(b))
			}
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"2-4\n", "2-4,6\n", "a-4,6-8\n", "5-4,6-8\n"} {
		_, err := day04.Parse(strings.NewReader(in))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
