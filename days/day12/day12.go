// Package day12 finds the shortest climb across a heightmap.
//
// The map is lifted into a core.Graph through gridgraph. Part 1 runs
// dijkstra over unit-weight climbing edges; Part 2 reverses the climbing
// rule and runs a single bfs from the summit.
package day12

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/aoc2022/bfs"
	"github.com/katalvlaran/aoc2022/dijkstra"
	"github.com/katalvlaran/aoc2022/gridgraph"
	"github.com/katalvlaran/aoc2022/internal/ctxlog"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// ErrUnreachable is returned when no route reaches the summit.
var ErrUnreachable = errors.New("day12: summit unreachable")

// Hill is the parsed heightmap; heights run 0 ('a') to 25 ('z').
type Hill struct {
	Grid       *gridgraph.GridGraph
	Start, End gridgraph.Cell
}

// Parse reads the letter grid with exactly one S and one E.
func Parse(r io.Reader) (*Hill, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	lines = puzzle.NonEmpty(lines)
	var starts, ends []gridgraph.Cell
	decode := func(x, y int, b byte) (int, error) {
		switch {
		case b == 'S':
			starts = append(starts, gridgraph.Cell{X: x, Y: y})
			return 0, nil
		case b == 'E':
			ends = append(ends, gridgraph.Cell{X: x, Y: y, Value: 25})
			return 25, nil
		case b >= 'a' && b <= 'z':
			return int(b - 'a'), nil
		}
		return 0, puzzle.Malformed(y+1, lines[y], fmt.Sprintf("bad height %q at column %d", b, x+1))
	}
	g, err := gridgraph.FromLines(lines, decode, gridgraph.DefaultGridOptions())
	if err != nil {
		if errors.Is(err, puzzle.ErrMalformedInput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	if len(starts) != 1 || len(ends) != 1 {
		return nil, fmt.Errorf("%w: want one S and one E, got %d and %d", puzzle.ErrMalformedInput, len(starts), len(ends))
	}

	return &Hill{Grid: g, Start: starts[0], End: ends[0]}, nil
}

// climbable reports whether a step from→to rises at most one level.
func climbable(from, to gridgraph.Cell) bool { return to.Value <= from.Value+1 }

// descendable is climbable seen from the destination.
func descendable(from, to gridgraph.Cell) bool { return climbable(to, from) }

// Part1 returns the fewest steps from S to E.
func Part1(ctx context.Context, h *Hill) (int, error) {
	defer ctxlog.Timed(ctx, "day12.part1")()

	g, err := h.Grid.ToCoreGraph(
		gridgraph.WithDirectedEdges(),
		gridgraph.WithUnitWeights(),
		gridgraph.WithEdgeFilter(climbable),
	)
	if err != nil {
		return 0, err
	}
	end := gridgraph.VertexID(h.End.X, h.End.Y)
	dist, _, err := dijkstra.Dijkstra(g,
		dijkstra.Source(gridgraph.VertexID(h.Start.X, h.Start.Y)),
		dijkstra.WithTarget(end),
	)
	if err != nil {
		return 0, err
	}
	if dist[end] == dijkstra.Unreachable {
		return 0, fmt.Errorf("%w from S", ErrUnreachable)
	}

	return int(dist[end]), nil
}

// Part2 returns the fewest steps to E from any cell of height 'a'.
func Part2(ctx context.Context, h *Hill) (int, error) {
	defer ctxlog.Timed(ctx, "day12.part2")()

	g, err := h.Grid.ToCoreGraph(
		gridgraph.WithDirectedEdges(),
		gridgraph.WithEdgeFilter(descendable),
	)
	if err != nil {
		return 0, err
	}
	res, err := bfs.BFS(g, gridgraph.VertexID(h.End.X, h.End.Y), bfs.WithContext(ctx))
	if err != nil {
		return 0, err
	}
	best := -1
	for _, c := range h.Grid.Find(0) {
		d, ok := res.Depth[gridgraph.VertexID(c.X, c.Y)]
		if ok && (best < 0 || d < best) {
			best = d
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("%w from any lowest cell", ErrUnreachable)
	}

	return best, nil
}

// Solve parses the heightmap and finds both shortest climbs.
func Solve(ctx context.Context, r io.Reader, _ puzzle.Params) (puzzle.Answers, error) {
	h, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p1, err := Part1(ctx, h)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p2, err := Part2(ctx, h)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(p1, p2), nil
}
