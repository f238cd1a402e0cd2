// Package puzzle defines the contract every day's solver implements: it
// reads puzzle text, takes tuning parameters, and returns two answers.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedInput marks input that does not follow the puzzle's format.
var ErrMalformedInput = errors.New("malformed input")

// Answers holds both parts' results, already rendered as text.
type Answers struct {
	Part1 string
	Part2 string

	// Part2Image prints Part2 below its label even when it is a single row.
	Part2Image bool
}

// NewAnswers renders two values with fmt's default formatting.
func NewAnswers(p1, p2 any) Answers {
	return Answers{Part1: fmt.Sprint(p1), Part2: fmt.Sprint(p2)}
}

// String renders the stdout block. A multi-line answer starts on its own line.
func (a Answers) String() string {
	var sb strings.Builder
	writePart(&sb, 1, a.Part1, false)
	writePart(&sb, 2, a.Part2, a.Part2Image)

	return sb.String()
}

func writePart(sb *strings.Builder, n int, v string, image bool) {
	if image || strings.Contains(v, "\n") {
		fmt.Fprintf(sb, "Part %d:\n%s\n", n, v)
		return
	}
	fmt.Fprintf(sb, "Part %d: %s\n", n, v)
}

// SolveFunc parses r and computes both answers.
type SolveFunc func(ctx context.Context, r io.Reader, p Params) (Answers, error)

// Day describes one registered puzzle.
type Day struct {
	Number int
	Title  string
	Solve  SolveFunc
}

// Malformed wraps ErrMalformedInput with the 1-based line number and text.
func Malformed(line int, text string, reason string) error {
	return fmt.Errorf("%w: line %d %q: %s", ErrMalformedInput, line, text, reason)
}
