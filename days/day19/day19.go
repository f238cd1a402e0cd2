// Package day19 picks robot build orders that crack the most geodes.
package day19

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
	defaultMinutesShort   = 24
	defaultMinutesLong    = 32
	defaultLongBlueprints = 3
)

// Resource indices.
const (
	Ore = iota
	Clay
	Obsidian
	Geode
)

// Blueprint lists what each robot costs, indexed by robot then resource.
type Blueprint struct {
	ID   int
	Cost [4][3]int
}

const blueprintFormat = "Blueprint %d: Each ore robot costs %d ore. Each clay robot costs %d ore. " +
	"Each obsidian robot costs %d ore and %d clay. Each geode robot costs %d ore and %d obsidian."

// Parse reads blueprints. A blueprint may be wrapped over several lines.
func Parse(r io.Reader) ([]Blueprint, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	text := strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
	var out []Blueprint
	for _, chunk := range strings.SplitAfter(text, "obsidian.") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		var b Blueprint
		n, err := fmt.Sscanf(chunk, blueprintFormat, &b.ID,
			&b.Cost[Ore][Ore], &b.Cost[Clay][Ore],
			&b.Cost[Obsidian][Ore], &b.Cost[Obsidian][Clay],
			&b.Cost[Geode][Ore], &b.Cost[Geode][Obsidian])
		if err != nil || n != 7 {
			return nil, puzzle.Malformed(len(out)+1, chunk, "unrecognised blueprint")
		}
		out = append(out, b)
	}

	return out, nil
}

type search struct {
	bp      Blueprint
	maxNeed [3]int
	best    int
}

// MaxGeodes returns the most geodes one blueprint can open in minutes.
func MaxGeodes(bp Blueprint, minutes int) int {
	s := &search{bp: bp}
	for _, cost := range bp.Cost {
		for res, c := range cost {
			s.maxNeed[res] = max(s.maxNeed[res], c)
		}
	}
	s.next(minutes, [3]int{Ore: 1}, [3]int{}, 0)

	return s.best
}

// next chooses the robot to build next and jumps straight to the minute
// it is finished. Geode robots are credited with everything they will
// ever crack at build time.
func (s *search) next(left int, robots, stock [3]int, geodes int) {
	s.best = max(s.best, geodes)
	// a new geode robot every remaining minute is the most we can hope for
	if geodes+left*(left-1)/2 <= s.best {
		return
	}
	for robot := Geode; robot >= Ore; robot-- {
		if robot != Geode && robots[robot] >= s.maxNeed[robot] {
			continue
		}
		wait, ok := s.waitFor(robot, robots, stock)
		if !ok {
			continue
		}
		t := left - wait - 1
		if t <= 0 {
			continue
		}
		nextStock := stock
		for res := range nextStock {
			nextStock[res] += robots[res]*(wait+1) - s.bp.Cost[robot][res]
		}
		if robot == Geode {
			s.next(t, robots, nextStock, geodes+t)
			continue
		}
		nextRobots := robots
		nextRobots[robot]++
		s.next(t, nextRobots, nextStock, geodes)
	}
}

// waitFor returns the minutes of collecting needed before robot is
// affordable, or false if the required robots do not exist yet.
func (s *search) waitFor(robot int, robots, stock [3]int) (int, bool) {
	wait := 0
	for res, c := range s.bp.Cost[robot] {
		missing := c - stock[res]
		if missing <= 0 {
			continue
		}
		if robots[res] == 0 {
			return 0, false
		}
		wait = max(wait, (missing+robots[res]-1)/robots[res])
	}

	return wait, true
}

// Part1 sums id * geodes over all blueprints.
func Part1(ctx context.Context, bps []Blueprint, minutes int) int {
	log := ctxlog.FromContext(ctx)
	sum := 0
	for _, bp := range bps {
		g := MaxGeodes(bp, minutes)
		log.WithFields(logrus.Fields{"blueprint": bp.ID, "geodes": g}).Debug("day19: blueprint evaluated")
		sum += bp.ID * g
	}

	return sum
}

// Part2 multiplies the geodes of the first count blueprints.
func Part2(ctx context.Context, bps []Blueprint, minutes, count int) int {
	defer ctxlog.Timed(ctx, "day19.part2")()

	product := 1
	for i := 0; i < count && i < len(bps); i++ {
		product *= MaxGeodes(bps[i], minutes)
	}

	return product
}

// Solve parses the blueprints and evaluates both horizons.
func Solve(ctx context.Context, r io.Reader, p puzzle.Params) (puzzle.Answers, error) {
	bps, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p1 := Part1(ctx, bps, puzzle.IntOr(p, "minutes_short", defaultMinutesShort))
	p2 := Part2(ctx, bps,
		puzzle.IntOr(p, "minutes_long", defaultMinutesLong),
		puzzle.IntOr(p, "long_blueprints", defaultLongBlueprints))

	return puzzle.NewAnswers(p1, p2), nil
}
