package day02_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day02"
	"github.com/katalvlaran/aoc2022/puzzle"
)

func TestSolve_Sample(t *testing.T) {
	ans, err := day02.Solve(context.Background(), strings.NewReader("A Y\nB X\nC Z\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "15", ans.Part1)
	assert.Equal(t, "12", ans.Part2)
}

func TestPlayAndChoose(t *testing.T) {
	shapes := []day02.Shape{day02.Rock, day02.Paper, day02.Scissors}
	for _, theirs := range shapes {
		for _, want := range []day02.Outcome{day02.Lose, day02.Draw, day02.Win} {
			assert.Equal(t, want, day02.Play(day02.Choose(theirs, want), theirs))
		}
	}
	assert.Equal(t, day02.Win, day02.Play(day02.Rock, day02.Scissors))
	assert.Equal(t, 7, day02.Score(day02.Rock, day02.Scissors))
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"D X\n", "A W\n", "AX\n", "A  X\n"} {
		_, err := day02.Parse(strings.NewReader(in))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
