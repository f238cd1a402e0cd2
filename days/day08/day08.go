// Package day08 scores a forest of tree heights.
package day08

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/aoc2022/gridgraph"
	"github.com/katalvlaran/aoc2022/puzzle"
)

var directions = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Parse reads a rectangular grid of digits.
func Parse(r io.Reader) (*gridgraph.GridGraph, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	lines = puzzle.NonEmpty(lines)
	digit := func(x, y int, b byte) (int, error) {
		if b < '0' || b > '9' {
			return 0, puzzle.Malformed(y+1, lines[y], fmt.Sprintf("non-digit at column %d", x+1))
		}
		return int(b - '0'), nil
	}
	g, err := gridgraph.FromLines(lines, digit, gridgraph.DefaultGridOptions())
	if err != nil && !errors.Is(err, puzzle.ErrMalformedInput) {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}

	return g, err
}

// Visible reports whether the tree at (x,y) can be seen from outside the
// grid along at least one row or column.
func Visible(g *gridgraph.GridGraph, x, y int) bool {
	h := g.At(x, y)
	for _, d := range directions {
		open := true
		g.Walk(x, y, d[0], d[1], func(c gridgraph.Cell) bool {
			if c.Value >= h {
				open = false
			}
			return open
		})
		if open {
			return true
		}
	}

	return false
}

// ScenicScore multiplies the viewing distances in the four directions.
// A view stops at the first tree at least as tall, which is counted.
func ScenicScore(g *gridgraph.GridGraph, x, y int) int {
	h := g.At(x, y)
	score := 1
	for _, d := range directions {
		n := 0
		g.Walk(x, y, d[0], d[1], func(c gridgraph.Cell) bool {
			n++
			return c.Value < h
		})
		score *= n
	}

	return score
}

// Part1 counts trees visible from outside the grid.
func Part1(g *gridgraph.GridGraph) int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if Visible(g, x, y) {
				n++
			}
		}
	}

	return n
}

// Part2 is the highest scenic score of any tree.
func Part2(g *gridgraph.GridGraph) int {
	best := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			best = max(best, ScenicScore(g, x, y))
		}
	}

	return best
}

// Solve parses the height map and answers both parts.
func Solve(_ context.Context, r io.Reader, _ puzzle.Params) (puzzle.Answers, error) {
	g, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(Part1(g), Part2(g)), nil
}
