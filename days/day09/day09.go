// Package day09 simulates a rope of knots following its head.
package day09

import (
	"context"
	"io"
	"strings"

	"github.com/katalvlaran/aoc2022/geom"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// Point is a grid position; Y grows upwards.
type Point = geom.Pt2[int]

// Move is one "<dir> <steps>" line.
type Move struct {
	Dir   Point
	Steps int
}

var dirs = map[string]Point{
	"U": {X: 0, Y: 1},
	"D": {X: 0, Y: -1},
	"L": {X: -1, Y: 0},
	"R": {X: 1, Y: 0},
}

// Parse reads the head's moves.
func Parse(r io.Reader) ([]Move, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var moves []Move
	for i, l := range lines {
		if l == "" {
			continue
		}
		d, n, ok := strings.Cut(l, " ")
		if !ok {
			return nil, puzzle.Malformed(i+1, l, `want "<U|D|L|R> <steps>"`)
		}
		dir, ok := dirs[d]
		if !ok {
			return nil, puzzle.Malformed(i+1, l, "unknown direction "+d)
		}
		steps, err := puzzle.Atoi(i+1, l, n)
		if err != nil {
			return nil, err
		}
		if steps < 0 {
			return nil, puzzle.Malformed(i+1, l, "negative step count")
		}
		moves = append(moves, Move{Dir: dir, Steps: steps})
	}

	return moves, nil
}

// TailVisits returns how many distinct positions the last of knots knots
// occupies while the first follows moves. knots must be at least 1.
func TailVisits(moves []Move, knots int) int {
	rope := make([]Point, max(knots, 1))
	seen := map[Point]struct{}{{}: {}}
	for _, m := range moves {
		for s := 0; s < m.Steps; s++ {
			rope[0] = rope[0].Add(m.Dir)
			for k := 1; k < len(rope); k++ {
				if rope[k].Touching(rope[k-1]) {
					break
				}
				rope[k] = rope[k].Toward(rope[k-1])
			}
			seen[rope[len(rope)-1]] = struct{}{}
		}
	}

	return len(seen)
}

// Part1 counts tail positions of a two-knot rope.
func Part1(moves []Move) int { return TailVisits(moves, 2) }

// Part2 counts tail positions of a ten-knot rope.
func Part2(moves []Move) int { return TailVisits(moves, 10) }

// Solve parses the head moves and simulates both ropes.
func Solve(_ context.Context, r io.Reader, _ puzzle.Params) (puzzle.Answers, error) {
	moves, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(Part1(moves), Part2(moves)), nil
}
