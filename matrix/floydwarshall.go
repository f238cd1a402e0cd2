package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aoc2022/core"
)

// FloydWarshall closes the distance matrix d in place: afterwards d[i][j]
// is the length of the shortest path from i to j, or +Inf.
//
// d must be square with a zero diagonal and +Inf for missing edges.
// Complexity: O(n³) time, O(1) extra space.
func FloydWarshall(d *Dense) error {
	if d.r != d.c {
		return fmt.Errorf("FloydWarshall: %dx%d: %w", d.r, d.c, ErrNonSquare)
	}
	n, data := d.r, d.data
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// DistanceIndex maps vertex IDs to rows of a distance matrix.
type DistanceIndex map[string]int

// Distances builds the all-pairs distance matrix of g. Rows follow
// g.Vertices() order. Unweighted edges count 1; weighted edges count their
// weight, and parallel edges keep the lightest.
func Distances(g *core.Graph) (*Dense, DistanceIndex, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	ids := g.Vertices()
	if len(ids) == 0 {
		return nil, nil, fmt.Errorf("Distances: empty graph: %w", ErrBadShape)
	}
	idx := make(DistanceIndex, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	d, err := NewDense(len(ids), len(ids))
	if err != nil {
		return nil, nil, err
	}
	for i := range d.data {
		if i%(d.c+1) != 0 {
			d.data[i] = math.Inf(1)
		}
	}
	for _, e := range g.Edges() {
		w := float64(e.Weight)
		if !g.Weighted() {
			w = 1
		}
		from, to := idx[e.From], idx[e.To]
		if from == to {
			continue
		}
		relaxEdge(d, from, to, w)
		if !e.Directed {
			relaxEdge(d, to, from, w)
		}
	}
	if err = FloydWarshall(d); err != nil {
		return nil, nil, err
	}

	return d, idx, nil
}

func relaxEdge(d *Dense, from, to int, w float64) {
	if i := from*d.c + to; w < d.data[i] {
		d.data[i] = w
	}
}

// Between returns the distance between two vertex IDs.
func (idx DistanceIndex) Between(d *Dense, from, to string) (float64, error) {
	i, ok := idx[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, from)
	}
	j, ok := idx[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, to)
	}

	return d.At(i, j)
}
