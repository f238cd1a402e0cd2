// Package day21 evaluates the monkeys' arithmetic riddle.
//
// Each monkey is a vertex of a directed core.Graph with an edge from every
// operand to the monkey that consumes it, so a topological order is an
// evaluation order and the monkeys reachable from humn are exactly those
// whose value depends on it.
package day21

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2022/bfs"
	"github.com/katalvlaran/aoc2022/core"
	"github.com/katalvlaran/aoc2022/dfs"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const (
	Root  = "root"
	Human = "humn"
)

var (
	// ErrDivisionByZero is returned when a monkey divides by zero.
	ErrDivisionByZero = errors.New("day21: division by zero")

	// ErrNoSolution is returned when no integer shout balances root.
	ErrNoSolution = errors.New("day21: no integer solution")
)

// Job is either a literal number (Op == 0) or "Left Op Right".
type Job struct {
	Value       int64
	Op          byte
	Left, Right string
}

// Riddle is the parsed input with its dependency graph.
type Riddle struct {
	Jobs  map[string]Job
	graph *core.Graph
}

// Parse reads "name: 5" and "name: aaaa + bbbb" lines.
func Parse(r io.Reader) (*Riddle, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	rd := &Riddle{Jobs: map[string]Job{}, graph: core.NewGraph(core.WithDirected(true))}
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		name, expr, ok := strings.Cut(l, ":")
		if !ok || name == "" {
			return nil, puzzle.Malformed(i+1, l, `want "name: job"`)
		}
		if _, dup := rd.Jobs[name]; dup {
			return nil, puzzle.Malformed(i+1, l, "monkey defined twice")
		}
		fields := strings.Fields(expr)
		var job Job
		switch len(fields) {
		case 1:
			if job.Value, err = strconv.ParseInt(fields[0], 10, 64); err != nil {
				return nil, puzzle.Malformed(i+1, l, "bad number")
			}
		case 3:
			if len(fields[1]) != 1 || !strings.Contains("+-*/", fields[1]) {
				return nil, puzzle.Malformed(i+1, l, "unknown operator "+fields[1])
			}
			job = Job{Op: fields[1][0], Left: fields[0], Right: fields[2]}
		default:
			return nil, puzzle.Malformed(i+1, l, `want a number or "a op b"`)
		}
		rd.Jobs[name] = job
		if err = rd.graph.AddVertex(name); err != nil {
			return nil, err
		}
	}
	for name, job := range rd.Jobs {
		if job.Op == 0 {
			continue
		}
		for _, operand := range []string{job.Left, job.Right} {
			if _, ok := rd.Jobs[operand]; !ok {
				return nil, fmt.Errorf("%w: %s waits for unknown monkey %s", puzzle.ErrMalformedInput, name, operand)
			}
			if rd.graph.HasEdge(operand, name) {
				continue
			}
			if _, err = rd.graph.AddEdge(operand, name, 0); err != nil {
				return nil, err
			}
		}
	}
	if _, ok := rd.Jobs[Root]; !ok {
		return nil, fmt.Errorf("%w: no %s monkey", puzzle.ErrMalformedInput, Root)
	}

	return rd, nil
}

func apply(op byte, a, b int64) (int64, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	}
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	return a / b, nil
}

// Evaluate computes every monkey's number in dependency order.
func (rd *Riddle) Evaluate(ctx context.Context) (map[string]int64, error) {
	order, err := dfs.TopologicalSort(rd.graph, dfs.WithCancelContext(ctx))
	if err != nil {
		return nil, err
	}
	vals := make(map[string]int64, len(order))
	for _, name := range order {
		job := rd.Jobs[name]
		if job.Op == 0 {
			vals[name] = job.Value
			continue
		}
		v, err := apply(job.Op, vals[job.Left], vals[job.Right])
		if err != nil {
			return nil, fmt.Errorf("%w at %s", err, name)
		}
		vals[name] = v
	}

	return vals, nil
}

// Part1 is the number root yells.
func Part1(ctx context.Context, rd *Riddle) (int64, error) {
	vals, err := rd.Evaluate(ctx)
	if err != nil {
		return 0, err
	}

	return vals[Root], nil
}

// Part2 returns the number humn must shout for root's two operands to be
// equal. The humn-dependent chain is inverted one operation at a time from
// root downwards.
func Part2(ctx context.Context, rd *Riddle) (int64, error) {
	if _, ok := rd.Jobs[Human]; !ok {
		return 0, fmt.Errorf("%w: no %s monkey", puzzle.ErrMalformedInput, Human)
	}
	if rd.Jobs[Root].Op == 0 {
		return 0, fmt.Errorf("%w: %s has no operands", puzzle.ErrMalformedInput, Root)
	}
	vals, err := rd.Evaluate(ctx)
	if err != nil {
		return 0, err
	}
	tainted, err := bfs.BFS(rd.graph, Human, bfs.WithContext(ctx))
	if err != nil {
		return 0, err
	}

	cur := Root
	var want int64
	for cur != Human {
		job := rd.Jobs[cur]
		l, r := tainted.Reached(job.Left), tainted.Reached(job.Right)
		if l && r {
			return 0, fmt.Errorf("%w: both operands of %s depend on %s", ErrNoSolution, cur, Human)
		}
		if !l && !r {
			return 0, fmt.Errorf("%w: %s does not depend on %s", ErrNoSolution, cur, Human)
		}
		unknown, known := job.Left, vals[job.Right]
		if r {
			unknown, known = job.Right, vals[job.Left]
		}
		if cur == Root {
			want = known
		} else if want, err = invert(job.Op, want, known, l); err != nil {
			return 0, fmt.Errorf("%w at %s", err, cur)
		}
		cur = unknown
	}

	return want, nil
}

// invert solves "x op k = want" (unknownLeft) or "k op x = want" for x.
func invert(op byte, want, k int64, unknownLeft bool) (int64, error) {
	switch op {
	case '+':
		return want - k, nil
	case '*':
		if k == 0 || want%k != 0 {
			return 0, ErrNoSolution
		}
		return want / k, nil
	case '-':
		if unknownLeft {
			return want + k, nil
		}
		return k - want, nil
	}
	if unknownLeft {
		// integer division: the smallest x with x / k == want
		return want * k, nil
	}
	if want == 0 || k%want != 0 {
		return 0, ErrNoSolution
	}

	return k / want, nil
}

// Solve parses the monkey jobs and answers both parts.
func Solve(ctx context.Context, r io.Reader, _ puzzle.Params) (puzzle.Answers, error) {
	rd, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p1, err := Part1(ctx, rd)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p2, err := Part2(ctx, rd)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(p1, p2), nil
}
