// Package day02 scores a rock-paper-scissors strategy guide.
//
// Each round is "A X": the opponent's shape (A/B/C) and a hint (X/Y/Z).
// Part 1 reads the hint as our shape, Part 2 as the desired outcome.
package day02

import (
	"context"
	"io"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Shape is Rock, Paper or Scissors; its value is the shape score minus one.
type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

// Outcome of a round from our point of view.
type Outcome int

const (
	Lose Outcome = iota
	Draw
	Win
)

// Round is one parsed line.
type Round struct {
	Opponent Shape
	Hint     int // 0, 1, 2 for X, Y, Z
}

// Parse reads "A X" lines.
func Parse(r io.Reader) ([]Round, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var rounds []Round
	for i, l := range lines {
		if l == "" {
			continue
		}
		if len(l) != 3 || l[1] != ' ' || l[0] < 'A' || l[0] > 'C' || l[2] < 'X' || l[2] > 'Z' {
			return nil, puzzle.Malformed(i+1, l, `want "A X" with A-C and X-Z`)
		}
		rounds = append(rounds, Round{Opponent: Shape(l[0] - 'A'), Hint: int(l[2] - 'X')})
	}

	return rounds, nil
}

// Play returns the outcome of ours against theirs.
func Play(ours, theirs Shape) Outcome {
	// (ours - theirs) mod 3: 0 draw, 1 win, 2 lose
	return Outcome((int(ours-theirs) + 4) % 3)
}

// Choose returns the shape that produces want against theirs.
func Choose(theirs Shape, want Outcome) Shape {
	return Shape((int(theirs) + int(want) + 2) % 3)
}

// Score is shape score (1-3) plus outcome score (0, 3, 6).
func Score(ours, theirs Shape) int {
	return int(ours) + 1 + 3*int(Play(ours, theirs))
}

// Part1 scores every round reading the second column as a shape.
func Part1(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		total += Score(Shape(r.Hint), r.Opponent)
	}

	return total
}

// Part2 scores every round reading the second column as the outcome.
func Part2(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		total += Score(Choose(r.Opponent, Outcome(r.Hint)), r.Opponent)
	}

	return total
}

// Solve parses the strategy guide and scores it both ways.
func Solve(_ context.Context, r io.Reader, _ puzzle.Params) (puzzle.Answers, error) {
	rounds, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(Part1(rounds), Part2(rounds)), nil
}
