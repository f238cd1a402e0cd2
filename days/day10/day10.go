// Package day10 runs the handheld's two-instruction CPU and draws its CRT.
package day10

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/aoc2022/gridgraph"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const (
	defaultWidth = 40
	firstSample  = 20
	samples      = 6

	dark = 0
	lit  = 1
)

// Instruction is noop (Addx == false) or "addx V".
type Instruction struct {
	Addx bool
	V    int
}

// Parse reads the program.
func Parse(r io.Reader) ([]Instruction, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var prog []Instruction
	for i, l := range lines {
		fields := strings.Fields(l)
		switch {
		case len(fields) == 0:
			continue
		case len(fields) == 1 && fields[0] == "noop":
			prog = append(prog, Instruction{})
		case len(fields) == 2 && fields[0] == "addx":
			v, err := puzzle.Atoi(i+1, l, fields[1])
			if err != nil {
				return nil, err
			}
			prog = append(prog, Instruction{Addx: true, V: v})
		default:
			return nil, puzzle.Malformed(i+1, l, `want "noop" or "addx V"`)
		}
	}

	return prog, nil
}

// Trace returns the X register during each cycle; Trace[i] is cycle i+1.
func Trace(prog []Instruction) []int {
	x := 1
	out := make([]int, 0, 2*len(prog))
	for _, in := range prog {
		if !in.Addx {
			out = append(out, x)
			continue
		}
		out = append(out, x, x)
		x += in.V
	}

	return out
}

// Part1 sums cycle*X at cycles 20, 20+width, ... at six sampled cycles.
func Part1(trace []int, width int) int {
	sum := 0
	for k := 0; k < samples; k++ {
		c := firstSample + k*width
		if c > len(trace) {
			break
		}
		sum += c * trace[c-1]
	}

	return sum
}

// Part2 draws one pixel per cycle, lit when the three-wide sprite centered
// on X covers the beam column.
func Part2(trace []int, width int) (string, error) {
	if len(trace) == 0 {
		return "", nil
	}
	rows := (len(trace) + width - 1) / width
	crt, err := gridgraph.Filled(width, rows, dark, gridgraph.DefaultGridOptions())
	if err != nil {
		return "", err
	}
	for i, x := range trace {
		col := i % width
		if col >= x-1 && col <= x+1 {
			if err = crt.Set(col, i/width, lit); err != nil {
				return "", err
			}
		}
	}

	return crt.Render(func(v int) rune {
		if v == lit {
			return '#'
		}
		return '.'
	}), nil
}

// Solve runs the program once and derives the signal sum and the CRT
// image from the same trace.
func Solve(_ context.Context, r io.Reader, p puzzle.Params) (puzzle.Answers, error) {
	prog, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}
	width := puzzle.IntOr(p, "crt_width", defaultWidth)
	if width <= 0 {
		return puzzle.Answers{}, fmt.Errorf("day10: crt_width must be positive, got %d", width)
	}
	trace := Trace(prog)
	img, err := Part2(trace, width)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Answers{Part1: fmt.Sprint(Part1(trace, width)), Part2: img, Part2Image: true}, nil
}
