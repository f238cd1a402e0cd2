// Package day16 plans which valves to open to release the most pressure.
//
// Tunnels form an undirected core.Graph. Walking distances between the
// start and every valve with a positive rate come from the graph's
// all-pairs distance matrix; the search then only moves between those
// valves.
package day16

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/aoc2022/core"
	"github.com/katalvlaran/aoc2022/internal/ctxlog"
	"github.com/katalvlaran/aoc2022/matrix"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const (
	// Start is the valve everyone begins at.
	Start = "AA"

	defaultMinutes           = 30
	defaultMinutesWithHelper = 26

	// subsetDPLimit bounds the number of useful valves for which Part2
	// folds results over all 2^n subsets.
	subsetDPLimit = 20
	maxUseful     = 62
)

// ErrTooManyValves is returned when the opened-set bitmask cannot hold
// every useful valve.
var ErrTooManyValves = errors.New("day16: too many valves with positive flow")

// Valve is one scan line.
type Valve struct {
	Name    string
	Rate    int
	Tunnels []string
}

// Parse reads "Valve XX has flow rate=N; tunnels lead to valves A, B" lines.
func Parse(r io.Reader) ([]Valve, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var out []Valve
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		head, tail, ok := strings.Cut(l, ";")
		if !ok {
			return nil, puzzle.Malformed(i+1, l, "missing ';'")
		}
		var v Valve
		if n, err := fmt.Sscanf(head, "Valve %s has flow rate=%d", &v.Name, &v.Rate); err != nil || n != 2 {
			return nil, puzzle.Malformed(i+1, l, `want "Valve XX has flow rate=N"`)
		}
		if v.Rate < 0 {
			return nil, puzzle.Malformed(i+1, l, "negative flow rate")
		}
		_, list, ok := strings.Cut(tail, "valve")
		if !ok {
			return nil, puzzle.Malformed(i+1, l, "missing tunnel list")
		}
		list = strings.TrimPrefix(list, "s")
		for _, t := range strings.Split(list, ",") {
			if t = strings.TrimSpace(t); t != "" {
				v.Tunnels = append(v.Tunnels, t)
			}
		}
		out = append(out, v)
	}

	return out, nil
}

// Network is the reduced problem: useful valves, their rates and the
// pairwise walking distances. Index len(Rates) is the start valve.
type Network struct {
	Names []string
	Rates []int
	Dist  [][]int
}

// NewNetwork builds the tunnel graph and the distance table.
func NewNetwork(ctx context.Context, valves []Valve) (*Network, error) {
	g := core.NewGraph()
	for _, v := range valves {
		if err := g.AddVertex(v.Name); err != nil {
			return nil, err
		}
	}
	for _, v := range valves {
		for _, t := range v.Tunnels {
			if !g.HasVertex(t) {
				return nil, fmt.Errorf("%w: valve %s leads to unknown valve %s", puzzle.ErrMalformedInput, v.Name, t)
			}
			if v.Name == t || g.HasEdge(v.Name, t) {
				continue
			}
			if _, err := g.AddEdge(v.Name, t, 0); err != nil {
				return nil, err
			}
		}
	}
	if !g.HasVertex(Start) {
		return nil, fmt.Errorf("%w: no valve %s", puzzle.ErrMalformedInput, Start)
	}

	n := &Network{}
	for _, v := range valves {
		if v.Rate > 0 {
			n.Names = append(n.Names, v.Name)
			n.Rates = append(n.Rates, v.Rate)
		}
	}
	if len(n.Rates) > maxUseful {
		return nil, fmt.Errorf("%w: %d", ErrTooManyValves, len(n.Rates))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dm, idx, err := matrix.Distances(g)
	if err != nil {
		return nil, err
	}
	keys := append(append([]string(nil), n.Names...), Start)
	n.Dist = make([][]int, len(keys))
	for i, from := range keys {
		n.Dist[i] = make([]int, len(keys))
		for j, to := range keys {
			d, err := idx.Between(dm, from, to)
			if err != nil {
				return nil, err
			}
			if math.IsInf(d, 1) {
				n.Dist[i][j] = -1
				continue
			}
			n.Dist[i][j] = int(d)
		}
	}

	return n, nil
}

// BestPerSet returns, for every set of valves that can be opened within
// minutes, the most pressure that set releases. Bit i stands for Names[i].
func (n *Network) BestPerSet(ctx context.Context, minutes int) map[uint64]int {
	defer ctxlog.Timed(ctx, fmt.Sprintf("day16.best_per_set minutes=%d", minutes))()

	best := map[uint64]int{}
	var walk func(pos, left int, opened uint64, released int)
	walk = func(pos, left int, opened uint64, released int) {
		if v, ok := best[opened]; !ok || released > v {
			best[opened] = released
		}
		for j, rate := range n.Rates {
			bit := uint64(1) << j
			d := n.Dist[pos][j]
			if opened&bit != 0 || d < 0 {
				continue
			}
			t := left - d - 1
			if t <= 0 {
				continue
			}
			walk(j, t, opened|bit, released+rate*t)
		}
	}
	walk(len(n.Rates), minutes, 0, 0)

	return best
}

// Part1 returns the most pressure released alone.
func Part1(ctx context.Context, n *Network, minutes int) int {
	best := 0
	for _, v := range n.BestPerSet(ctx, minutes) {
		best = max(best, v)
	}

	return best
}

// Part2 returns the most pressure released with a helper, each opening a
// disjoint set of valves.
func Part2(ctx context.Context, n *Network, minutes int) int {
	best := n.BestPerSet(ctx, minutes)
	if len(n.Rates) <= subsetDPLimit {
		return combineSubsets(best, len(n.Rates))
	}

	masks := make([]uint64, 0, len(best))
	for m := range best {
		masks = append(masks, m)
	}
	out := 0
	for i, a := range masks {
		for _, b := range masks[i:] {
			if a&b == 0 {
				out = max(out, best[a]+best[b])
			}
		}
	}

	return out
}

// combineSubsets lifts best to "best over any subset" and pairs each set
// with its complement.
func combineSubsets(best map[uint64]int, valves int) int {
	full := uint64(1)<<valves - 1
	sub := make([]int, full+1)
	for m, v := range best {
		sub[m] = v
	}
	for bit := 0; bit < valves; bit++ {
		for m := uint64(0); m <= full; m++ {
			if m&(1<<bit) != 0 {
				sub[m] = max(sub[m], sub[m&^(1<<bit)])
			}
		}
	}
	out := 0
	for m := uint64(0); m <= full; m++ {
		out = max(out, sub[m]+sub[full&^m])
	}

	return out
}

// Solve parses the scan and plans valve openings alone and with a helper.
func Solve(ctx context.Context, r io.Reader, p puzzle.Params) (puzzle.Answers, error) {
	valves, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}
	n, err := NewNetwork(ctx, valves)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p1 := Part1(ctx, n, puzzle.IntOr(p, "minutes", defaultMinutes))
	p2 := Part2(ctx, n, puzzle.IntOr(p, "minutes_with_helper", defaultMinutesWithHelper))

	return puzzle.NewAnswers(p1, p2), nil
}
