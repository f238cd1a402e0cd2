// Package day04 compares the section ranges assigned to pairs of elves.
package day04

import (
	"context"
	"io"
	"strings"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Range is an inclusive section interval.
type Range struct {
	Lo, Hi int
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return r.Lo <= o.Lo && o.Hi <= r.Hi
}

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool {
	return r.Lo <= o.Hi && o.Lo <= r.Hi
}

// Pair is one "a-b,c-d" line.
type Pair [2]Range

// Parse reads the assignment pairs.
func Parse(r io.Reader) ([]Pair, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var pairs []Pair
	for i, l := range lines {
		if l == "" {
			continue
		}
		left, right, ok := strings.Cut(l, ",")
		if !ok {
			return nil, puzzle.Malformed(i+1, l, "missing ','")
		}
		var p Pair
		for j, part := range []string{left, right} {
			p[j], err = parseRange(i+1, l, part)
			if err != nil {
				return nil, err
			}
		}
		pairs = append(pairs, p)
	}

	return pairs, nil
}

func parseRange(n int, line, s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, puzzle.Malformed(n, line, "range without '-'")
	}
	a, err := puzzle.Atoi(n, line, lo)
	if err != nil {
		return Range{}, err
	}
	b, err := puzzle.Atoi(n, line, hi)
	if err != nil {
		return Range{}, err
	}
	if a > b {
		return Range{}, puzzle.Malformed(n, line, "range start after end")
	}

	return Range{a, b}, nil
}

func count(pairs []Pair, pred func(a, b Range) bool) int {
	n := 0
	for _, p := range pairs {
		if pred(p[0], p[1]) {
			n++
		}
	}

	return n
}

// Part1 counts pairs where one range contains the other.
func Part1(pairs []Pair) int {
	return count(pairs, func(a, b Range) bool { return a.Contains(b) || b.Contains(a) })
}

// Part2 counts pairs that overlap at all.
func Part2(pairs []Pair) int {
	return count(pairs, Range.Overlaps)
}

// Solve parses the assignment pairs and counts both relations.
func Solve(_ context.Context, r io.Reader, _ puzzle.Params) (puzzle.Answers, error) {
	pairs, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(Part1(pairs), Part2(pairs)), nil
}
