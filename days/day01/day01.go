// Package day01 totals the calories carried by each elf.
package day01

import (
	"context"
	"io"
	"sort"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Parse returns one total per blank-line separated group.
func Parse(r io.Reader) ([]int, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var totals []int
	for _, b := range puzzle.Blocks(lines) {
		sum := 0
		for i, l := range b.Lines {
			v, err := puzzle.Atoi(b.Start+i, l, l)
			if err != nil {
				return nil, err
			}
			sum += v
		}
		totals = append(totals, sum)
	}

	return totals, nil
}

// TopN sums the n largest totals; fewer than n totals are all summed.
func TopN(totals []int, n int) int {
	sorted := append([]int(nil), totals...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	if n > len(sorted) {
		n = len(sorted)
	}
	sum := 0
	for _, v := range sorted[:n] {
		sum += v
	}

	return sum
}

// Part1 is the largest single elf total.
func Part1(totals []int) int { return TopN(totals, 1) }

// Part2 is the sum of the three largest totals.
func Part2(totals []int) int { return TopN(totals, 3) }

// Solve parses the calorie groups and answers both parts.
func Solve(_ context.Context, r io.Reader, _ puzzle.Params) (puzzle.Answers, error) {
	totals, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(Part1(totals), Part2(totals)), nil
}
