// Package day20 decrypts grove coordinates by mixing a circular list.
package day20

import (
	"context"
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2022/internal/ctxlog"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const (
	defaultKey    = 811589153
	defaultRounds = 10
)

// ErrNoZero is returned when the list has no 0 to measure from.
var ErrNoZero = errors.New("day20: list contains no zero")

// Parse reads one integer per line.
func Parse(r io.Reader) ([]int64, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var out []int64
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		v, err := strconv.ParseInt(l, 10, 64)
		if err != nil {
			return nil, puzzle.Malformed(i+1, l, "not an integer")
		}
		out = append(out, v)
	}

	return out, nil
}

// Mix moves every number, in original order, by its own value around the
// circle, repeated rounds times. It returns the values in final order.
// Positions are tracked by original index so duplicates stay distinct.
func Mix(nums []int64, rounds int) []int64 {
	n := len(nums)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n > 1 {
		for r := 0; r < rounds; r++ {
			for orig, v := range nums {
				from := slices.Index(order, orig)
				// the moving element is out of the circle, leaving n-1 gaps
				to := int((int64(from) + v) % int64(n-1))
				if to < 0 {
					to += n - 1
				}
				order = slices.Delete(order, from, from+1)
				order = slices.Insert(order, to, orig)
			}
		}
	}
	out := make([]int64, n)
	for i, orig := range order {
		out[i] = nums[orig]
	}

	return out
}

// Coordinates sums the values 1000, 2000 and 3000 places after the 0.
func Coordinates(mixed []int64) (int64, error) {
	zero := slices.Index(mixed, 0)
	if zero < 0 {
		return 0, ErrNoZero
	}
	var sum int64
	for _, k := range []int{1000, 2000, 3000} {
		sum += mixed[(zero+k)%len(mixed)]
	}

	return sum, nil
}

// Part1 mixes once and sums the grove coordinates.
func Part1(ctx context.Context, nums []int64) (int64, error) {
	defer ctxlog.Timed(ctx, "day20.part1")()
	return Coordinates(Mix(nums, 1))
}

// Part2 applies the decryption key and mixes rounds times.
func Part2(ctx context.Context, nums []int64, key int64, rounds int) (int64, error) {
	defer ctxlog.Timed(ctx, "day20.part2")()

	keyed := make([]int64, len(nums))
	for i, v := range nums {
		keyed[i] = v * key
	}

	return Coordinates(Mix(keyed, rounds))
}

// Solve parses the file and decrypts it both ways.
func Solve(ctx context.Context, r io.Reader, p puzzle.Params) (puzzle.Answers, error) {
	nums, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p1, err := Part1(ctx, nums)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p2, err := Part2(ctx, nums,
		puzzle.Int64Or(p, "decryption_key", defaultKey),
		puzzle.IntOr(p, "rounds", defaultRounds))
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(p1, p2), nil
}
