package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/aoc2022/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// The input is deep-copied.
// Complexity: O(W×H).
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells[y] = append([]int(nil), row...)
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// Filled returns a width×height grid with every cell set to value.
func Filled(width, height, value int, opts GridOptions) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	rows := make([][]int, height)
	for y := range rows {
		rows[y] = make([]int, width)
		for x := range rows[y] {
			rows[y][x] = value
		}
	}

	return NewGridGraph(rows, opts)
}

// FromLines builds a grid from text rows, mapping each byte through decode.
// decode receives the cell coordinates so callers can remember markers.
func FromLines(lines []string, decode func(x, y int, b byte) (int, error), opts GridOptions) (*GridGraph, error) {
	rows := make([][]int, len(lines))
	for y, line := range lines {
		rows[y] = make([]int, len(line))
		for x := 0; x < len(line); x++ {
			v, err := decode(x, y, line[x])
			if err != nil {
				return nil, err
			}
			rows[y][x] = v
		}
	}

	return NewGridGraph(rows, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// At returns the value at (x,y). The caller must check InBounds.
func (gg *GridGraph) At(x, y int) int {
	return gg.CellValues[y][x]
}

// Set stores v at (x,y).
func (gg *GridGraph) Set(x, y, v int) error {
	if !gg.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	gg.CellValues[y][x] = v

	return nil
}

// Cell returns the Cell at (x,y).
func (gg *GridGraph) Cell(x, y int) Cell {
	return Cell{X: x, Y: y, Value: gg.CellValues[y][x]}
}

// NeighborOffsets returns the precomputed neighbor offsets.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors returns the in-bounds neighbors of (x,y).
func (gg *GridGraph) Neighbors(x, y int) []Cell {
	out := make([]Cell, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) {
			out = append(out, gg.Cell(nx, ny))
		}
	}

	return out
}

// Walk visits the cells from (x,y) exclusive in direction (dx,dy) until
// the edge of the grid or until fn returns false.
func (gg *GridGraph) Walk(x, y, dx, dy int, fn func(c Cell) bool) {
	for x, y = x+dx, y+dy; gg.InBounds(x, y); x, y = x+dx, y+dy {
		if !fn(gg.Cell(x, y)) {
			return
		}
	}
}

// Find returns every cell holding value, in row-major order.
func (gg *GridGraph) Find(value int) []Cell {
	var out []Cell
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.CellValues[y][x] == value {
				out = append(out, gg.Cell(x, y))
			}
		}
	}

	return out
}

// VertexID formats the vertex identifier used by ToCoreGraph for (x,y).
func VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToCoreGraph converts the grid into a *core.Graph. Each cell becomes a
// vertex "x,y" with metadata {x, y, value}; each allowed step between
// neighbors becomes an edge.
// Complexity: O(W×H×d).
func (gg *GridGraph) ToCoreGraph(opts ...ConvertOption) (*core.Graph, error) {
	var o convertOptions
	for _, opt := range opts {
		opt(&o)
	}
	var weight int64
	gopts := []core.GraphOption{core.WithDirected(o.directed)}
	if o.weighted {
		gopts = append(gopts, core.WithWeighted())
		weight = 1
	}
	g := core.NewGraph(gopts...)

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			id := VertexID(x, y)
			if err := g.AddVertex(id); err != nil {
				return nil, err
			}
			_ = g.SetMetadata(id, "x", x)
			_ = g.SetMetadata(id, "y", y)
			_ = g.SetMetadata(id, "value", gg.CellValues[y][x])
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			from := gg.Cell(x, y)
			for _, to := range gg.Neighbors(x, y) {
				if o.filter != nil && !o.filter(from, to) {
					continue
				}
				// undirected edges are added once, from the lower index
				if !o.directed && gg.Index(to.X, to.Y) < gg.Index(x, y) {
					continue
				}
				if _, err := g.AddEdge(VertexID(x, y), VertexID(to.X, to.Y), weight); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Render renders the grid using glyph to map values to runes.
func (gg *GridGraph) Render(glyph func(v int) rune) string {
	buf := make([]rune, 0, (gg.Width+1)*gg.Height)
	for y := 0; y < gg.Height; y++ {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := 0; x < gg.Width; x++ {
			buf = append(buf, glyph(gg.CellValues[y][x]))
		}
	}

	return string(buf)
}
