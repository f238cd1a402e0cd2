// Package day03 finds misplaced rucksack items and group badges.
package day03

import (
	"context"
	"fmt"
	"io"
	"math/bits"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// itemSet is a bitset over priorities 1..52.
type itemSet uint64

// Priority maps a-z to 1-26 and A-Z to 27-52; anything else is 0.
func Priority(b byte) int {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 1
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 27
	}

	return 0
}

func setOf(s string) itemSet {
	var set itemSet
	for i := 0; i < len(s); i++ {
		set |= 1 << Priority(s[i])
	}

	return set
}

// single returns the priority of the only item in set.
func (s itemSet) single() (int, bool) {
	if bits.OnesCount64(uint64(s)) != 1 {
		return 0, false
	}

	return bits.TrailingZeros64(uint64(s)), true
}

// Parse validates the rucksack lines: even length, letters only.
func Parse(r io.Reader) ([]string, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var sacks []string
	for i, l := range lines {
		if l == "" {
			continue
		}
		if len(l)%2 != 0 {
			return nil, puzzle.Malformed(i+1, l, "odd number of items")
		}
		for j := 0; j < len(l); j++ {
			if Priority(l[j]) == 0 {
				return nil, puzzle.Malformed(i+1, l, fmt.Sprintf("item %q is not a letter", l[j]))
			}
		}
		sacks = append(sacks, l)
	}

	return sacks, nil
}

// Part1 sums the priority of the item found in both compartments.
func Part1(sacks []string) (int, error) {
	sum := 0
	for _, s := range sacks {
		half := len(s) / 2
		p, ok := (setOf(s[:half]) & setOf(s[half:])).single()
		if !ok {
			return 0, fmt.Errorf("%w: rucksack %q has no single shared item", puzzle.ErrMalformedInput, s)
		}
		sum += p
	}

	return sum, nil
}

// Part2 sums the badge priority of each group of three rucksacks.
func Part2(sacks []string) (int, error) {
	if len(sacks)%3 != 0 {
		return 0, fmt.Errorf("%w: %d rucksacks do not form groups of three", puzzle.ErrMalformedInput, len(sacks))
	}
	sum := 0
	for i := 0; i < len(sacks); i += 3 {
		p, ok := (setOf(sacks[i]) & setOf(sacks[i+1]) & setOf(sacks[i+2])).single()
		if !ok {
			return 0, fmt.Errorf("%w: group starting at rucksack %d has no single badge", puzzle.ErrMalformedInput, i+1)
		}
		sum += p
	}

	return sum, nil
}

// Solve parses the rucksacks and sums both kinds of priority.
func Solve(_ context.Context, r io.Reader, _ puzzle.Params) (puzzle.Answers, error) {
	sacks, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p1, err := Part1(sacks)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p2, err := Part2(sacks)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(p1, p2), nil
}
