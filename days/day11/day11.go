// Package day11 simulates monkeys throwing items by worry level.
package day11

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2022/internal/ctxlog"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const (
	defaultRoundsRelieved = 20
	defaultRoundsAnxious  = 10000
	defaultRelief         = 3
)

// ErrBadTarget is returned when a monkey throws to itself or to a monkey
// that does not exist.
var ErrBadTarget = errors.New("day11: invalid throw target")

// OpKind selects the arithmetic of an Operation.
type OpKind int

const (
	OpAdd    OpKind = iota // old + N
	OpMul                  // old * N
	OpSquare               // old * old
	OpDouble               // old + old
)

// Operation computes a new worry level from the old one.
type Operation struct {
	Kind OpKind
	N    uint64
}

// Apply returns the new worry level.
func (o Operation) Apply(old uint64) uint64 {
	switch o.Kind {
	case OpAdd:
		return old + o.N
	case OpMul:
		return old * o.N
	case OpSquare:
		return old * old
	default:
		return old + old
	}
}

// Monkey is one parsed block.
type Monkey struct {
	Items   []uint64
	Op      Operation
	Divisor uint64
	IfTrue  int
	IfFalse int
}

// Parse reads monkey blocks separated by blank lines.
func Parse(r io.Reader) ([]Monkey, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var monkeys []Monkey
	for _, b := range puzzle.Blocks(lines) {
		m, err := parseMonkey(b)
		if err != nil {
			return nil, err
		}
		monkeys = append(monkeys, m)
	}
	for i, m := range monkeys {
		for _, t := range []int{m.IfTrue, m.IfFalse} {
			if t < 0 || t >= len(monkeys) || t == i {
				return nil, fmt.Errorf("%w: monkey %d throws to %d", ErrBadTarget, i, t)
			}
		}
	}

	return monkeys, nil
}

func parseMonkey(b puzzle.Block) (Monkey, error) {
	var m Monkey
	if len(b.Lines) != 6 {
		return m, puzzle.Malformed(b.Start, b.Lines[0], fmt.Sprintf("monkey block has %d lines, want 6", len(b.Lines)))
	}
	field := func(k int, prefix string) (string, error) {
		l := b.Lines[k]
		rest, ok := strings.CutPrefix(strings.TrimSpace(l), prefix)
		if !ok {
			return "", puzzle.Malformed(b.Start+k, l, fmt.Sprintf("want %q", prefix))
		}
		return strings.TrimSpace(rest), nil
	}
	lastInt := func(k int, prefix string) (int, error) {
		rest, err := field(k, prefix)
		if err != nil {
			return 0, err
		}
		return puzzle.Atoi(b.Start+k, b.Lines[k], rest)
	}

	if _, err := field(0, "Monkey "); err != nil {
		return m, err
	}
	items, err := field(1, "Starting items:")
	if err != nil {
		return m, err
	}
	if items != "" {
		for _, s := range strings.Split(items, ",") {
			v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return m, puzzle.Malformed(b.Start+1, b.Lines[1], fmt.Sprintf("bad item %q", s))
			}
			m.Items = append(m.Items, v)
		}
	}
	expr, err := field(2, "Operation: new = old ")
	if err != nil {
		return m, err
	}
	if m.Op, err = parseOp(expr); err != nil {
		return m, puzzle.Malformed(b.Start+2, b.Lines[2], err.Error())
	}
	div, err := lastInt(3, "Test: divisible by ")
	if err != nil {
		return m, err
	}
	if div <= 0 {
		return m, puzzle.Malformed(b.Start+3, b.Lines[3], "divisor must be positive")
	}
	m.Divisor = uint64(div)
	if m.IfTrue, err = lastInt(4, "If true: throw to monkey "); err != nil {
		return m, err
	}
	if m.IfFalse, err = lastInt(5, "If false: throw to monkey "); err != nil {
		return m, err
	}

	return m, nil
}

func parseOp(expr string) (Operation, error) {
	op, arg, ok := strings.Cut(expr, " ")
	if !ok {
		return Operation{}, errors.New("want \"<+|*> <n|old>\"")
	}
	if arg == "old" {
		switch op {
		case "+":
			return Operation{Kind: OpDouble}, nil
		case "*":
			return Operation{Kind: OpSquare}, nil
		}
		return Operation{}, fmt.Errorf("unknown operator %q", op)
	}
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return Operation{}, fmt.Errorf("bad operand %q", arg)
	}
	switch op {
	case "+":
		return Operation{Kind: OpAdd, N: n}, nil
	case "*":
		return Operation{Kind: OpMul, N: n}, nil
	}

	return Operation{}, fmt.Errorf("unknown operator %q", op)
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Simulate plays rounds and returns each monkey's inspection count. With
// relief > 1 worry is divided after every inspection; otherwise it is
// reduced modulo the lcm of all divisors, which keeps every test intact.
func Simulate(ctx context.Context, monkeys []Monkey, rounds int, relief uint64) ([]int, error) {
	defer ctxlog.Timed(ctx, "day11.simulate")()

	held := make([][]uint64, len(monkeys))
	mod := uint64(1)
	for i, m := range monkeys {
		held[i] = append([]uint64(nil), m.Items...)
		mod = mod / gcd(mod, m.Divisor) * m.Divisor
	}
	counts := make([]int, len(monkeys))
	for r := 0; r < rounds; r++ {
		if r%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		for i, m := range monkeys {
			counts[i] += len(held[i])
			for _, w := range held[i] {
				w = m.Op.Apply(w)
				if relief > 1 {
					w /= relief
				} else {
					w %= mod
				}
				to := m.IfFalse
				if w%m.Divisor == 0 {
					to = m.IfTrue
				}
				held[to] = append(held[to], w)
			}
			held[i] = held[i][:0]
		}
	}

	return counts, nil
}

// Business multiplies the two largest counts.
func Business(counts []int) int {
	var a, b int
	for _, c := range counts {
		switch {
		case c > a:
			a, b = c, a
		case c > b:
			b = c
		}
	}
	if len(counts) < 2 {
		return a
	}

	return a * b
}

// Part1 is the monkey business when worry is divided by relief each
// inspection.
func Part1(ctx context.Context, monkeys []Monkey, rounds int, relief uint64) (int, error) {
	counts, err := Simulate(ctx, monkeys, rounds, relief)
	if err != nil {
		return 0, err
	}
	return Business(counts), nil
}

// Part2 is the monkey business without relief.
func Part2(ctx context.Context, monkeys []Monkey, rounds int) (int, error) {
	counts, err := Simulate(ctx, monkeys, rounds, 1)
	if err != nil {
		return 0, err
	}
	return Business(counts), nil
}

// Solve parses the monkeys and simulates both regimes.
func Solve(ctx context.Context, r io.Reader, p puzzle.Params) (puzzle.Answers, error) {
	monkeys, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}
	relief := uint64(puzzle.Int64Or(p, "relief", defaultRelief))
	p1, err := Part1(ctx, monkeys, puzzle.IntOr(p, "rounds_relieved", defaultRoundsRelieved), relief)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p2, err := Part2(ctx, monkeys, puzzle.IntOr(p, "rounds_anxious", defaultRoundsAnxious))
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(p1, p2), nil
}
