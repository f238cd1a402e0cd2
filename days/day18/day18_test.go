package day18_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day18"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const sample = `2,2,2
1,2,2
3,2,2
2,1,2
2,3,2
2,2,1
2,2,3
2,2,4
2,2,6
1,2,5
3,2,5
2,1,5
2,3,5
`

func TestSolve_Sample(t *testing.T) {
	ans, err := day18.Solve(context.Background(), strings.NewReader(sample), nil)
	require.NoError(t, err)
	assert.Equal(t, "64", ans.Part1)
	assert.Equal(t, "58", ans.Part2)
}

func TestTwoCubes(t *testing.T) {
	cubes, err := day18.Parse(strings.NewReader("1,1,1\n2,1,1\n2,1,1\n"))
	require.NoError(t, err)
	assert.Len(t, cubes, 2)
	assert.Equal(t, 10, day18.Part1(cubes))
	assert.Equal(t, 10, day18.Part2(context.Background(), cubes))
}

func TestEmpty(t *testing.T) {
	ans, err := day18.Solve(context.Background(), strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Equal(t, puzzle.NewAnswers(0, 0), ans)
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"1,2\n", "1,2,x\n"} {
		_, err := day18.Parse(strings.NewReader(in))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
