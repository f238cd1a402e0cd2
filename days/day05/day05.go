// Package day05 rearranges crate stacks with two models of crane.
package day05

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// ErrBadMove is returned when a move references a missing stack or more
// crates than the source stack holds.
var ErrBadMove = errors.New("day05: impossible move")

// Move is "move N from A to B" with 0-based stack indices.
type Move struct {
	N, From, To int
}

// Stacks hold crates bottom to top.
type Stacks [][]byte

// Clone returns an independent copy.
func (s Stacks) Clone() Stacks {
	out := make(Stacks, len(s))
	for i, st := range s {
		out[i] = append([]byte(nil), st...)
	}

	return out
}

// Tops returns the top crate of every stack; empty stacks give a space.
func (s Stacks) Tops() string {
	var sb strings.Builder
	for _, st := range s {
		if len(st) == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteByte(st[len(st)-1])
	}

	return sb.String()
}

// Apply performs m. With keepOrder the moved crates keep their order
// (CrateMover 9001); otherwise they are moved one at a time.
func (s Stacks) Apply(m Move, keepOrder bool) error {
	if m.From < 0 || m.From >= len(s) || m.To < 0 || m.To >= len(s) {
		return fmt.Errorf("%w: stack %d or %d does not exist", ErrBadMove, m.From+1, m.To+1)
	}
	src := s[m.From]
	if m.N > len(src) {
		return fmt.Errorf("%w: %d crates requested from stack %d holding %d", ErrBadMove, m.N, m.From+1, len(src))
	}
	lifted := append([]byte(nil), src[len(src)-m.N:]...)
	s[m.From] = src[:len(src)-m.N]
	if !keepOrder {
		for i, j := 0, len(lifted)-1; i < j; i, j = i+1, j-1 {
			lifted[i], lifted[j] = lifted[j], lifted[i]
		}
	}
	s[m.To] = append(s[m.To], lifted...)

	return nil
}

// Parse reads the drawing, a blank line, then the moves.
func Parse(r io.Reader) (Stacks, []Move, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, nil, err
	}
	split := -1
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			split = i
			break
		}
	}
	if split < 1 {
		return nil, nil, fmt.Errorf("%w: missing crate drawing or blank separator line", puzzle.ErrMalformedInput)
	}

	stacks, err := parseDrawing(lines[:split])
	if err != nil {
		return nil, nil, err
	}
	var moves []Move
	for i := split + 1; i < len(lines); i++ {
		l := lines[i]
		if l == "" {
			continue
		}
		var m Move
		if n, err := fmt.Sscanf(l, "move %d from %d to %d", &m.N, &m.From, &m.To); err != nil || n != 3 {
			return nil, nil, puzzle.Malformed(i+1, l, `want "move N from A to B"`)
		}
		m.From--
		m.To--
		moves = append(moves, m)
	}

	return stacks, moves, nil
}

func parseDrawing(drawing []string) (Stacks, error) {
	labels := strings.Fields(drawing[len(drawing)-1])
	if len(labels) == 0 {
		return nil, puzzle.Malformed(len(drawing), drawing[len(drawing)-1], "missing stack numbers")
	}
	stacks := make(Stacks, len(labels))
	for row := len(drawing) - 2; row >= 0; row-- {
		l := drawing[row]
		for i := range stacks {
			pos := 1 + 4*i
			if pos >= len(l) || l[pos] == ' ' {
				continue
			}
			c := l[pos]
			if c < 'A' || c > 'Z' || l[pos-1] != '[' {
				return nil, puzzle.Malformed(row+1, l, fmt.Sprintf("bad crate at column %d", pos+1))
			}
			stacks[i] = append(stacks[i], c)
		}
	}

	return stacks, nil
}

func run(stacks Stacks, moves []Move, keepOrder bool) (string, error) {
	s := stacks.Clone()
	for _, m := range moves {
		if err := s.Apply(m, keepOrder); err != nil {
			return "", err
		}
	}

	return s.Tops(), nil
}

// Part1 moves crates one at a time.
func Part1(stacks Stacks, moves []Move) (string, error) { return run(stacks, moves, false) }

// Part2 moves crates as a block.
func Part2(stacks Stacks, moves []Move) (string, error) { return run(stacks, moves, true) }

// Solve parses the drawing and moves and reports the top crates for
// both cranes.
func Solve(_ context.Context, r io.Reader, _ puzzle.Params) (puzzle.Answers, error) {
	stacks, moves, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p1, err := Part1(stacks, moves)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p2, err := Part2(stacks, moves)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Answers{Part1: p1, Part2: p2}, nil
}
