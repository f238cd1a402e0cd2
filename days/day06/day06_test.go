package day06_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day06"
	"github.com/katalvlaran/aoc2022/puzzle"
)

func TestMarker(t *testing.T) {
	tests := []struct {
		in      string
		packet  int
		message int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			ans, err := day06.Solve(context.Background(), strings.NewReader(tc.in+"\n"), nil)
			require.NoError(t, err)
			assert.Equal(t, puzzle.NewAnswers(tc.packet, tc.message), ans)
		})
	}
}

func TestMarker_NotFound(t *testing.T) {
	assert.Equal(t, 0, day06.Marker("aaaa", 2))
	assert.Equal(t, 0, day06.Marker("abc", 4))
	assert.Equal(t, 2, day06.Marker("ab", 2))
}

func TestSolve_WindowParams(t *testing.T) {
	p := puzzle.StaticParams{"packet_window": 2, "message_window": 3}
	ans, err := day06.Solve(context.Background(), strings.NewReader("aabac\n"), p)
	require.NoError(t, err)
	assert.Equal(t, "3", ans.Part1)
	assert.Equal(t, "5", ans.Part2)
}

func TestParse_Malformed(t *testing.T) {
	_, err := day06.Parse(strings.NewReader("abC1\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
