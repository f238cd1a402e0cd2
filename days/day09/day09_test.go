package day09_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day09"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const sample = `R 4
U 4
L 3
D 1
R 4
D 1
L 5
R 2
`

const larger = `R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20
`

func TestSolve_Sample(t *testing.T) {
	ans, err := day09.Solve(context.Background(), strings.NewReader(sample), nil)
	require.NoError(t, err)
	assert.Equal(t, "13", ans.Part1)
	assert.Equal(t, "1", ans.Part2)
}

func TestPart2_LargerSample(t *testing.T) {
	moves, err := day09.Parse(strings.NewReader(larger))
	require.NoError(t, err)
	assert.Equal(t, 36, day09.Part2(moves))
}

func TestTailVisits_SingleKnot(t *testing.T) {
	moves, err := day09.Parse(strings.NewReader("R 3\nU 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, day09.TailVisits(moves, 1))
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"X 3\n", "R\n", "R x\n", "R -1\n"} {
		_, err := day09.Parse(strings.NewReader(in))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
