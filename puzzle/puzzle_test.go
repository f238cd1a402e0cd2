package puzzle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/puzzle"
)

func TestAnswers_String(t *testing.T) {
	assert.Equal(t, "Part 1: 24000\nPart 2: 45000\n", puzzle.NewAnswers(24000, 45000).String())
	assert.Equal(t, "Part 1: CMZ\nPart 2:\n##..\n..##\n",
		puzzle.Answers{Part1: "CMZ", Part2: "##..\n..##"}.String())
	assert.Equal(t, "Part 1: 0\nPart 2:\n##.\n",
		puzzle.Answers{Part1: "0", Part2: "##.", Part2Image: true}.String())
}

func TestLinesAndBlocks(t *testing.T) {
	lines, err := puzzle.Lines(strings.NewReader("1000\r\n2000\n\n\n4000\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1000", "2000", "", "", "4000"}, lines)
	assert.Equal(t, []string{"1000", "2000", "4000"}, puzzle.NonEmpty(lines))

	blocks := puzzle.Blocks(lines)
	require.Len(t, blocks, 2)
	assert.Equal(t, 1, blocks[0].Start)
	assert.Equal(t, []string{"1000", "2000"}, blocks[0].Lines)
	assert.Equal(t, 5, blocks[1].Start)
}

func TestAtoiAndParams(t *testing.T) {
	v, err := puzzle.Atoi(3, "move 3 from 1 to 2", " 3")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = puzzle.Atoi(3, "move x from 1 to 2", "x")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	assert.Contains(t, err.Error(), "line 3")

	p := puzzle.StaticParams{"row": 10}
	assert.Equal(t, int64(10), puzzle.Int64Or(p, "row", 2000000))
	assert.Equal(t, 4000000, puzzle.IntOr(p, "bound", 4000000))
	assert.Equal(t, 7, puzzle.IntOr(nil, "anything", 7))
}
