// Package geom holds small generic integer point types for grid and voxel puzzles.
package geom

import "golang.org/x/exp/constraints"

// Pt2 is a point on the integer plane.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Pt3 is a point in integer space.
type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Add returns p+q.
func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

// MDist returns the manhattan distance between p and q.
func (p Pt2[T]) MDist(q Pt2[T]) T {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Touching reports whether p and q are the same or adjacent cells,
// diagonals included.
func (p Pt2[T]) Touching(q Pt2[T]) bool {
	return Abs(p.X-q.X) <= 1 && Abs(p.Y-q.Y) <= 1
}

// Toward returns a point moving from p to q in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + Sign(q.X-p.X), p.Y + Sign(q.Y-p.Y)}
}

// Add returns p+q.
func (p Pt3[T]) Add(q Pt3[T]) Pt3[T] {
	return Pt3[T]{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Neighbors6 returns the six face-adjacent points of p.
func (p Pt3[T]) Neighbors6() [6]Pt3[T] {
	return [6]Pt3[T]{
		{p.X - 1, p.Y, p.Z}, {p.X + 1, p.Y, p.Z},
		{p.X, p.Y - 1, p.Z}, {p.X, p.Y + 1, p.Z},
		{p.X, p.Y, p.Z - 1}, {p.X, p.Y, p.Z + 1},
	}
}

// Within reports whether lo <= p <= hi on every axis.
func (p Pt3[T]) Within(lo, hi Pt3[T]) bool {
	return p.X >= lo.X && p.X <= hi.X &&
		p.Y >= lo.Y && p.Y <= hi.Y &&
		p.Z >= lo.Z && p.Z <= hi.Z
}
