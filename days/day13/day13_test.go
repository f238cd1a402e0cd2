package day13_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/days/day13"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const sample = `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]
`

func TestSolve_Sample(t *testing.T) {
	ans, err := day13.Solve(context.Background(), strings.NewReader(sample), nil)
	require.NoError(t, err)
	assert.Equal(t, "13", ans.Part1)
	assert.Equal(t, "140", ans.Part2)
}

func TestParsePacket_RoundTrip(t *testing.T) {
	for _, s := range []string{"[]", "[[[]]]", "[1,[2,[3,[4,[5,6,7]]]],8,9]", "[10,[]]"} {
		p, err := day13.ParsePacket(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, p.String())
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"[1,1,3,1,1]", "[1,1,5,1,1]", -1},
		{"[9]", "[[8,7,6]]", 1},
		{"[[1],4]", "[1,4]", 0},
		{"[]", "[[]]", -1},
		{"[10]", "[9]", 1},
	}
	for _, tc := range tests {
		a, err := day13.ParsePacket(tc.a)
		require.NoError(t, err)
		b, err := day13.ParsePacket(tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, day13.Compare(a, b), "%s vs %s", tc.a, tc.b)
		assert.Equal(t, -tc.want, day13.Compare(b, a), "%s vs %s", tc.b, tc.a)
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"[1,2]x\n[1]\n", "[1,\n[1]\n", "[1]\n", "[a]\n[1]\n", "[1]]\n[1]\n"} {
		_, err := day13.Parse(strings.NewReader(in))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
