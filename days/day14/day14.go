// Package day14 pours sand into a cave of rock paths.
package day14

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/aoc2022/geom"
	"github.com/katalvlaran/aoc2022/gridgraph"
	"github.com/katalvlaran/aoc2022/internal/ctxlog"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const defaultSourceX = 500

// Cell contents.
const (
	Air = iota
	Rock
	Sand
)

// Point is a cave position; Y grows downwards.
type Point = geom.Pt2[int]

// Path is one rock line: consecutive points are joined by straight walls.
type Path []Point

// Parse reads "x,y -> x,y -> ..." lines.
func Parse(r io.Reader) ([]Path, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var paths []Path
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		var p Path
		for _, pt := range strings.Split(l, "->") {
			xs, ys, ok := strings.Cut(strings.TrimSpace(pt), ",")
			if !ok {
				return nil, puzzle.Malformed(i+1, l, fmt.Sprintf("point %q lacks ','", pt))
			}
			x, err := puzzle.Atoi(i+1, l, xs)
			if err != nil {
				return nil, err
			}
			y, err := puzzle.Atoi(i+1, l, ys)
			if err != nil {
				return nil, err
			}
			if y < 0 {
				return nil, puzzle.Malformed(i+1, l, "negative depth")
			}
			q := Point{X: x, Y: y}
			if n := len(p); n > 0 && p[n-1].X != q.X && p[n-1].Y != q.Y {
				return nil, puzzle.Malformed(i+1, l, "diagonal wall")
			}
			p = append(p, q)
		}
		paths = append(paths, p)
	}

	return paths, nil
}

// Cave is a rock map wide enough for any sand pile that can form under
// the source before the floor at depth Floor.
type Cave struct {
	grid    *gridgraph.GridGraph
	offsetX int
	Source  Point
	MaxY    int
	Floor   int
}

// NewCave rasterizes paths around a source at (sourceX, 0).
func NewCave(paths []Path, sourceX int) (*Cave, error) {
	maxY := 0
	minX, maxX := sourceX, sourceX
	for _, p := range paths {
		for _, q := range p {
			maxY = max(maxY, q.Y)
			minX, maxX = min(minX, q.X), max(maxX, q.X)
		}
	}
	floor := maxY + 2
	// sand spreads at most one column per row below the source
	minX = min(minX, sourceX-floor) - 1
	maxX = max(maxX, sourceX+floor) + 1
	grid, err := gridgraph.Filled(maxX-minX+1, floor+1, Air, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	c := &Cave{grid: grid, offsetX: minX, Source: Point{X: sourceX}, MaxY: maxY, Floor: floor}
	for _, p := range paths {
		for k := 1; k < len(p); k++ {
			for q := p[k-1]; ; q = q.Toward(p[k]) {
				if err = c.set(q, Rock); err != nil {
					return nil, err
				}
				if q == p[k] {
					break
				}
			}
		}
		if len(p) == 1 {
			if err = c.set(p[0], Rock); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

func (c *Cave) at(p Point) int { return c.grid.At(p.X-c.offsetX, p.Y) }

func (c *Cave) set(p Point, v int) error { return c.grid.Set(p.X-c.offsetX, p.Y, v) }

var fall = [3]Point{{X: 0, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: 1}}

// drop lets one grain fall from the source and returns where it rests.
// ok is false when the grain passes below MaxY with no floor.
func (c *Cave) drop(withFloor bool) (Point, bool) {
	p := c.Source
	for {
		if !withFloor && p.Y > c.MaxY {
			return p, false
		}
		moved := false
		for _, d := range fall {
			q := p.Add(d)
			if q.Y < c.Floor && c.at(q) == Air {
				p, moved = q, true
				break
			}
		}
		if !moved {
			return p, true
		}
	}
}

// Pour drops grains until one falls into the abyss (withFloor false) or
// the source is covered (withFloor true) and returns how many came to rest.
func (c *Cave) Pour(withFloor bool) (int, error) {
	n := 0
	for c.at(c.Source) == Air {
		p, ok := c.drop(withFloor)
		if !ok {
			break
		}
		if err := c.set(p, Sand); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}

// Render draws rock as '#', sand as 'o' and air as '.'.
func (c *Cave) Render() string {
	return c.grid.Render(func(v int) rune {
		switch v {
		case Rock:
			return '#'
		case Sand:
			return 'o'
		}
		return '.'
	})
}

func solvePart(ctx context.Context, paths []Path, sourceX int, withFloor bool) (int, error) {
	defer ctxlog.Timed(ctx, fmt.Sprintf("day14.pour floor=%t", withFloor))()

	c, err := NewCave(paths, sourceX)
	if err != nil {
		return 0, err
	}

	return c.Pour(withFloor)
}

// Part1 counts grains at rest before sand falls into the abyss.
func Part1(ctx context.Context, paths []Path, sourceX int) (int, error) {
	return solvePart(ctx, paths, sourceX, false)
}

// Part2 counts grains at rest once the floor lets the pile block the source.
func Part2(ctx context.Context, paths []Path, sourceX int) (int, error) {
	return solvePart(ctx, paths, sourceX, true)
}

// Solve parses the rock paths and pours sand for both parts.
func Solve(ctx context.Context, r io.Reader, p puzzle.Params) (puzzle.Answers, error) {
	paths, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}
	sourceX := puzzle.IntOr(p, "source_x", defaultSourceX)
	p1, err := Part1(ctx, paths, sourceX)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p2, err := Part2(ctx, paths, sourceX)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(p1, p2), nil
}
