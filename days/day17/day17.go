// Package day17 stacks falling rocks in a seven-wide chamber pushed by jets.
package day17

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/aoc2022/internal/ctxlog"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const (
	width    = 7
	fullRow  = 1<<width - 1
	spawnX   = 2
	spawnGap = 3

	defaultRocksShort = 2022
	defaultRocksLong  = 1000000000000
)

// shapes are listed bottom row first; bit i is column i from the left edge
// of the rock.
var shapes = [5][]uint8{
	{0b1111},
	{0b010, 0b111, 0b010},
	{0b111, 0b100, 0b100},
	{0b1, 0b1, 0b1, 0b1},
	{0b11, 0b11},
}

// Parse reads the jet pattern as -1 (push left) and +1 (push right).
func Parse(r io.Reader) ([]int, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	lines = puzzle.NonEmpty(lines)
	if len(lines) != 1 {
		return nil, fmt.Errorf("%w: want one line of jets, got %d", puzzle.ErrMalformedInput, len(lines))
	}
	l := strings.TrimSpace(lines[0])
	jets := make([]int, len(l))
	for i := 0; i < len(l); i++ {
		switch l[i] {
		case '<':
			jets[i] = -1
		case '>':
			jets[i] = 1
		default:
			return nil, puzzle.Malformed(1, l, fmt.Sprintf("bad jet %q at column %d", l[i], i+1))
		}
	}

	return jets, nil
}

// Chamber holds settled rock, one bitmask per row from the floor up.
type Chamber struct {
	rows []uint8
	jets []int
	jet  int
	rock int
}

// NewChamber returns an empty chamber driven by jets.
func NewChamber(jets []int) *Chamber { return &Chamber{jets: jets} }

// Height is the tower height in rows.
func (c *Chamber) Height() int { return len(c.rows) }

func (c *Chamber) collides(shape []uint8, x, y int) bool {
	if x < 0 || y < 0 {
		return true
	}
	for i, row := range shape {
		s := int(row) << x
		if s > fullRow {
			return true
		}
		if y+i < len(c.rows) && int(c.rows[y+i])&s != 0 {
			return true
		}
	}

	return false
}

// Drop lets the next rock fall until it settles.
func (c *Chamber) Drop() {
	shape := shapes[c.rock%len(shapes)]
	c.rock++
	x, y := spawnX, len(c.rows)+spawnGap
	for {
		dx := c.jets[c.jet]
		c.jet = (c.jet + 1) % len(c.jets)
		if !c.collides(shape, x+dx, y) {
			x += dx
		}
		if c.collides(shape, x, y-1) {
			break
		}
		y--
	}
	for i, row := range shape {
		for y+i >= len(c.rows) {
			c.rows = append(c.rows, 0)
		}
		c.rows[y+i] |= row << x
	}
}

// stateKey identifies a repeatable situation: which rock and jet come next
// and the exact open surface a falling rock can still reach.
type stateKey struct {
	rock, jet int
	surface   string
}

// surface returns, top row first, the masks of empty cells reachable from
// above by moving left, right or down. Rock below that region can never be
// touched again, so equal surfaces behave identically from here on.
func (c *Chamber) surface() string {
	top := len(c.rows)
	reach := map[int]uint8{top: fullRow}
	queue := make([][2]int, 0, width)
	for col := 0; col < width; col++ {
		queue = append(queue, [2]int{top, col})
	}
	lowest := top
	for len(queue) > 0 {
		y, col := queue[0][0], queue[0][1]
		queue = queue[1:]
		for _, step := range [3][2]int{{0, -1}, {0, 1}, {-1, 0}} {
			ny, nc := y+step[0], col+step[1]
			if ny < 0 || nc < 0 || nc >= width {
				continue
			}
			bit := uint8(1) << nc
			if ny < top && c.rows[ny]&bit != 0 || reach[ny]&bit != 0 {
				continue
			}
			reach[ny] |= bit
			lowest = min(lowest, ny)
			queue = append(queue, [2]int{ny, nc})
		}
	}
	buf := make([]byte, 0, top-lowest)
	for y := top - 1; y >= lowest; y-- {
		buf = append(buf, reach[y])
	}

	return string(buf)
}

func (c *Chamber) key() stateKey {
	return stateKey{rock: c.rock % len(shapes), jet: c.jet, surface: c.surface()}
}

// Render draws the chamber top row first.
func (c *Chamber) Render() string {
	var sb strings.Builder
	for y := len(c.rows) - 1; y >= 0; y-- {
		sb.WriteByte('|')
		for col := 0; col < width; col++ {
			if c.rows[y]&(1<<col) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+-------+")

	return sb.String()
}

// TowerHeight returns the height after rocks rocks have settled. A cycle is
// accepted once a state recurs twice with the same rock gap and height gain;
// whole cycles are then skipped arithmetically.
func TowerHeight(ctx context.Context, jets []int, rocks int64) (int64, error) {
	if len(jets) == 0 {
		return 0, fmt.Errorf("%w: empty jet pattern", puzzle.ErrMalformedInput)
	}
	log := ctxlog.FromContext(ctx)
	type mark struct{ rocks, height, period, growth int64 }

	c := NewChamber(jets)
	seen := map[stateKey]mark{}
	var skipped int64
	jumped := false
	for n := int64(0); n < rocks; {
		c.Drop()
		n++
		if n%100000 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if jumped {
			continue
		}
		k := c.key()
		h := int64(c.Height())
		cur := mark{rocks: n, height: h}
		prev, ok := seen[k]
		if ok {
			cur.period, cur.growth = n-prev.rocks, h-prev.height
		}
		seen[k] = cur
		if !ok || prev.period != cur.period || prev.growth != cur.growth {
			continue
		}
		cycles := (rocks - n) / cur.period
		skipped = cycles * cur.growth
		n += cycles * cur.period
		jumped = true
		log.WithFields(logrus.Fields{
			"at_rock": prev.rocks,
			"period":  cur.period,
			"growth":  cur.growth,
			"cycles":  cycles,
		}).Debug("day17: cycle detected")
	}

	return int64(c.Height()) + skipped, nil
}

// Part1 is the tower height after the short run.
func Part1(ctx context.Context, jets []int, rocks int64) (int64, error) {
	return TowerHeight(ctx, jets, rocks)
}

// Part2 is the tower height after the long run.
func Part2(ctx context.Context, jets []int, rocks int64) (int64, error) {
	return TowerHeight(ctx, jets, rocks)
}

// Solve parses the jet pattern and simulates both runs.
func Solve(ctx context.Context, r io.Reader, p puzzle.Params) (puzzle.Answers, error) {
	jets, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p1, err := Part1(ctx, jets, puzzle.Int64Or(p, "rocks_short", defaultRocksShort))
	if err != nil {
		return puzzle.Answers{}, err
	}
	p2, err := Part2(ctx, jets, puzzle.Int64Or(p, "rocks_long", defaultRocksLong))
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(p1, p2), nil
}
