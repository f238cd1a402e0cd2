package day11_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day11"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const sample = `Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1
`

func TestSolve_Sample(t *testing.T) {
	ans, err := day11.Solve(context.Background(), strings.NewReader(sample), nil)
	require.NoError(t, err)
	assert.Equal(t, "10605", ans.Part1)
	assert.Equal(t, "2713310158", ans.Part2)
}

func TestSimulate_Counts(t *testing.T) {
	monkeys, err := day11.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	counts, err := day11.Simulate(context.Background(), monkeys, 20, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{101, 95, 7, 105}, counts)

	counts, err = day11.Simulate(context.Background(), monkeys, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 3, 6}, counts)

	// the parsed monkeys are not mutated by a run
	assert.Equal(t, []uint64{79, 98}, monkeys[0].Items)
}

func TestOperation(t *testing.T) {
	assert.Equal(t, uint64(10), day11.Operation{Kind: day11.OpDouble}.Apply(5))
	assert.Equal(t, uint64(25), day11.Operation{Kind: day11.OpSquare}.Apply(5))
	assert.Equal(t, uint64(8), day11.Operation{Kind: day11.OpAdd, N: 3}.Apply(5))
	assert.Equal(t, uint64(15), day11.Operation{Kind: day11.OpMul, N: 3}.Apply(5))
}

func TestParse_Errors(t *testing.T) {
	bad := strings.Replace(sample, "throw to monkey 3\n\nMonkey 1", "throw to monkey 9\n\nMonkey 1", 1)
	_, err := day11.Parse(strings.NewReader(bad))
	assert.ErrorIs(t, err, day11.ErrBadTarget)

	bad = strings.Replace(sample, "old * 19", "old - 19", 1)
	_, err = day11.Parse(strings.NewReader(bad))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	bad = strings.Replace(sample, "divisible by 23", "divisible by 0", 1)
	_, err = day11.Parse(strings.NewReader(bad))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
