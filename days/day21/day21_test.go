package day21_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day21"
	"github.com/katalvlaran/aoc2022/dfs"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const sample = `root: pppw + sjmn
dbpl: 5
cczh: sllz + lgvd
zczc: 2
ptdq: humn - dvpt
dvpt: 3
lfqf: 4
humn: 5
ljgn: 2
sjmn: drzm * dbpl
sllz: 4
pppw: cczh / lfqf
lgvd: ljgn * ptdq
drzm: hmdt - zczc
hmdt: 32
`

func TestSolve_Sample(t *testing.T) {
	ans, err := day21.Solve(context.Background(), strings.NewReader(sample), nil)
	require.NoError(t, err)
	assert.Equal(t, "152", ans.Part1)
	assert.Equal(t, "301", ans.Part2)
}

// Substituting the answer back must balance root.
func TestPart2_Balances(t *testing.T) {
	rd, err := day21.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	humn, err := day21.Part2(context.Background(), rd)
	require.NoError(t, err)

	patched := strings.Replace(sample, "humn: 5", fmt.Sprintf("humn: %d", humn), 1)
	rd, err = day21.Parse(strings.NewReader(patched))
	require.NoError(t, err)
	vals, err := rd.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, vals["pppw"], vals["sjmn"])
}

func TestInvertSubtractAndDivide(t *testing.T) {
	// root: (100 - humn) + 7 and then (100 / humn) + 4
	in := "root: a + b\na: x - humn\nx: 100\nb: 7\nhumn: 1\n"
	rd, err := day21.Parse(strings.NewReader(in))
	require.NoError(t, err)
	got, err := day21.Part2(context.Background(), rd)
	require.NoError(t, err)
	assert.Equal(t, int64(93), got)

	in = "root: a + b\na: x / humn\nx: 100\nb: 4\nhumn: 1\n"
	rd, err = day21.Parse(strings.NewReader(in))
	require.NoError(t, err)
	got, err = day21.Part2(context.Background(), rd)
	require.NoError(t, err)
	assert.Equal(t, int64(25), got)
}

func TestErrors(t *testing.T) {
	_, err := day21.Parse(strings.NewReader("root: a + b\na: 1\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = day21.Parse(strings.NewReader("root: a % b\na: 1\nb: 2\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	rd, err := day21.Parse(strings.NewReader("root: a + b\na: b * b\nb: a - a\n"))
	require.NoError(t, err)
	_, err = day21.Part1(context.Background(), rd)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	rd, err = day21.Parse(strings.NewReader("root: a / b\na: 1\nb: 0\n"))
	require.NoError(t, err)
	_, err = day21.Part1(context.Background(), rd)
	assert.ErrorIs(t, err, day21.ErrDivisionByZero)

	rd, err = day21.Parse(strings.NewReader("root: a + b\na: 1\nb: 2\nhumn: 3\n"))
	require.NoError(t, err)
	_, err = day21.Part2(context.Background(), rd)
	assert.ErrorIs(t, err, day21.ErrNoSolution)
}
