// Package day18 measures the surface of a droplet made of unit cubes.
package day18

import (
	"context"
	"io"
	"strings"

	"github.com/katalvlaran/aoc2022/geom"
	"github.com/katalvlaran/aoc2022/internal/ctxlog"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// Cube is the position of one unit cube.
type Cube = geom.Pt3[int]

// Parse reads "x,y,z" lines. Duplicate cubes are kept once.
func Parse(r io.Reader) (map[Cube]struct{}, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	cubes := make(map[Cube]struct{})
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		parts := strings.Split(l, ",")
		if len(parts) != 3 {
			return nil, puzzle.Malformed(i+1, l, `want "x,y,z"`)
		}
		var v [3]int
		for k, p := range parts {
			if v[k], err = puzzle.Atoi(i+1, l, p); err != nil {
				return nil, err
			}
		}
		cubes[Cube{X: v[0], Y: v[1], Z: v[2]}] = struct{}{}
	}

	return cubes, nil
}

// Part1 counts cube faces not touching another cube.
func Part1(cubes map[Cube]struct{}) int {
	n := 0
	for c := range cubes {
		for _, nb := range c.Neighbors6() {
			if _, ok := cubes[nb]; !ok {
				n++
			}
		}
	}

	return n
}

// Part2 counts faces reachable from outside: steam floods the bounding
// box grown by one in every direction and every cube face it meets counts.
func Part2(ctx context.Context, cubes map[Cube]struct{}) int {
	if len(cubes) == 0 {
		return 0
	}
	defer ctxlog.Timed(ctx, "day18.flood")()

	var lo, hi Cube
	first := true
	for c := range cubes {
		if first {
			lo, hi, first = c, c, false
			continue
		}
		lo = Cube{X: min(lo.X, c.X), Y: min(lo.Y, c.Y), Z: min(lo.Z, c.Z)}
		hi = Cube{X: max(hi.X, c.X), Y: max(hi.Y, c.Y), Z: max(hi.Z, c.Z)}
	}
	lo = lo.Add(Cube{X: -1, Y: -1, Z: -1})
	hi = hi.Add(Cube{X: 1, Y: 1, Z: 1})

	seen := map[Cube]struct{}{lo: {}}
	queue := []Cube{lo}
	faces := 0
	for head := 0; head < len(queue); head++ {
		for _, nb := range queue[head].Neighbors6() {
			if !nb.Within(lo, hi) {
				continue
			}
			if _, solid := cubes[nb]; solid {
				faces++
				continue
			}
			if _, ok := seen[nb]; ok {
				continue
			}
			seen[nb] = struct{}{}
			queue = append(queue, nb)
		}
	}

	return faces
}

// Solve parses the cubes and measures both surfaces.
func Solve(ctx context.Context, r io.Reader, _ puzzle.Params) (puzzle.Answers, error) {
	cubes, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(Part1(cubes), Part2(ctx, cubes)), nil
}
