// Package day15 reasons about sensor coverage in the manhattan metric.
package day15

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/aoc2022/geom"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const (
	defaultRow   = 2000000
	defaultBound = 4000000

	tuningFactor = 4000000
)

// ErrNoGap is returned when every position within the bound is covered.
var ErrNoGap = errors.New("day15: no uncovered position in range")

// Point is a position on the tunnel plane.
type Point = geom.Pt2[int64]

// Sensor knows its nearest beacon and hence its coverage radius.
type Sensor struct {
	Pos, Beacon Point
	Radius      int64
}

// Covers reports whether p lies within the sensor's radius.
func (s Sensor) Covers(p Point) bool { return s.Pos.MDist(p) <= s.Radius }

// Parse reads "Sensor at x=.., y=..: closest beacon is at x=.., y=.." lines.
func Parse(r io.Reader) ([]Sensor, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var out []Sensor
	for i, l := range lines {
		if l == "" {
			continue
		}
		var s Sensor
		n, err := fmt.Sscanf(l, "Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d",
			&s.Pos.X, &s.Pos.Y, &s.Beacon.X, &s.Beacon.Y)
		if err != nil || n != 4 {
			return nil, puzzle.Malformed(i+1, l, "want sensor and beacon coordinates")
		}
		s.Radius = s.Pos.MDist(s.Beacon)
		out = append(out, s)
	}

	return out, nil
}

// Interval is an inclusive range of columns.
type Interval struct{ Lo, Hi int64 }

// RowCoverage returns the merged, sorted intervals covered on row y.
func RowCoverage(sensors []Sensor, y int64) []Interval {
	var ivs []Interval
	for _, s := range sensors {
		w := s.Radius - geom.Abs(s.Pos.Y-y)
		if w < 0 {
			continue
		}
		ivs = append(ivs, Interval{s.Pos.X - w, s.Pos.X + w})
	}
	slices.SortFunc(ivs, func(a, b Interval) int {
		switch {
		case a.Lo < b.Lo:
			return -1
		case a.Lo > b.Lo:
			return 1
		}
		return 0
	})
	var merged []Interval
	for _, iv := range ivs {
		if n := len(merged); n > 0 && iv.Lo <= merged[n-1].Hi+1 {
			merged[n-1].Hi = max(merged[n-1].Hi, iv.Hi)
			continue
		}
		merged = append(merged, iv)
	}

	return merged
}

// Part1 counts positions on row y where no beacon can be.
func Part1(sensors []Sensor, y int64) int64 {
	merged := RowCoverage(sensors, y)
	var n int64
	for _, iv := range merged {
		n += iv.Hi - iv.Lo + 1
	}
	beacons := map[Point]struct{}{}
	for _, s := range sensors {
		if s.Beacon.Y != y {
			continue
		}
		if _, dup := beacons[s.Beacon]; dup {
			continue
		}
		beacons[s.Beacon] = struct{}{}
		for _, iv := range merged {
			if s.Beacon.X >= iv.Lo && s.Beacon.X <= iv.Hi {
				n--
				break
			}
		}
	}

	return n
}

// Part2 finds the single uncovered position in [0,bound]² by walking the
// ring just outside every sensor's radius, and returns x*4000000+y.
func Part2(ctx context.Context, sensors []Sensor, bound int64) (int64, error) {
	covered := func(p Point) bool {
		for _, s := range sensors {
			if s.Covers(p) {
				return true
			}
		}
		return false
	}
	for _, s := range sensors {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		d := s.Radius + 1
		for dx := -d; dx <= d; dx++ {
			dy := d - geom.Abs(dx)
			for _, p := range [2]Point{{X: s.Pos.X + dx, Y: s.Pos.Y + dy}, {X: s.Pos.X + dx, Y: s.Pos.Y - dy}} {
				if p.X < 0 || p.Y < 0 || p.X > bound || p.Y > bound {
					continue
				}
				if !covered(p) {
					return p.X*tuningFactor + p.Y, nil
				}
			}
		}
	}

	return 0, ErrNoGap
}

// Solve parses the sensors, then scans the configured row and search box.
func Solve(ctx context.Context, r io.Reader, p puzzle.Params) (puzzle.Answers, error) {
	sensors, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p2, err := Part2(ctx, sensors, puzzle.Int64Or(p, "bound", defaultBound))
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(Part1(sensors, puzzle.Int64Or(p, "row", defaultRow)), p2), nil
}
