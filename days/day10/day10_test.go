package day10_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day10"
	"github.com/katalvlaran/aoc2022/puzzle"
)

func TestTrace_SmallProgram(t *testing.T) {
	prog, err := day10.Parse(strings.NewReader("noop\naddx 3\naddx -5\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 4, 4}, day10.Trace(prog))
}

func TestSolve_Noops(t *testing.T) {
	in := strings.Repeat("noop\n", 240)
	ans, err := day10.Solve(context.Background(), strings.NewReader(in), nil)
	require.NoError(t, err)
	assert.Equal(t, "720", ans.Part1)

	row := "###" + strings.Repeat(".", 37)
	assert.Equal(t, strings.TrimSuffix(strings.Repeat(row+"\n", 6), "\n"), ans.Part2)
	assert.Contains(t, ans.String(), "Part 2:\n###")
}

func TestSolve_Width(t *testing.T) {
	// x stays at 1: columns 0..2 are lit in every row
	in := strings.Repeat("noop\n", 10)
	ans, err := day10.Solve(context.Background(), strings.NewReader(in), puzzle.StaticParams{"crt_width": 5})
	require.NoError(t, err)
	assert.Equal(t, "###..\n###..", ans.Part2)
	assert.Equal(t, "0", ans.Part1)
}

func TestSolve_SingleRowImage(t *testing.T) {
	in := strings.Repeat("noop\n", 5)
	ans, err := day10.Solve(context.Background(), strings.NewReader(in), puzzle.StaticParams{"crt_width": 5})
	require.NoError(t, err)
	assert.Equal(t, "###..", ans.Part2)
	assert.Equal(t, "Part 1: 0\nPart 2:\n###..\n", ans.String())
}

func TestPart1_SignalStrengths(t *testing.T) {
	// addx 2 every two cycles: X during cycle c is 1 + 2*((c-1)/2)
	prog := make([]day10.Instruction, 120)
	for i := range prog {
		prog[i] = day10.Instruction{Addx: true, V: 2}
	}
	trace := day10.Trace(prog)
	want := 0
	for _, c := range []int{20, 60, 100, 140, 180, 220} {
		want += c * (1 + 2*((c-1)/2))
	}
	assert.Equal(t, want, day10.Part1(trace, 40))
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"addx\n", "addx x\n", "jmp 2\n"} {
		_, err := day10.Parse(strings.NewReader(in))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
