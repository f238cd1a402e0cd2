package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell represents a single grid cell with its coordinates and stored value.
type Cell struct {
	X, Y  int
	Value int
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph treats a 2D integer grid as a graph.
// CellValues[y][x] holds the value of cell (x,y); y grows downwards.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	neighborOffsets [][2]int
}

// ConvertOption tunes ToCoreGraph.
type ConvertOption func(*convertOptions)

type convertOptions struct {
	directed bool
	weighted bool
	filter   func(from, to Cell) bool
}

// WithDirectedEdges emits one directed edge per allowed step instead of
// undirected edges.
func WithDirectedEdges() ConvertOption {
	return func(o *convertOptions) { o.directed = true }
}

// WithUnitWeights builds a weighted graph where every step costs 1.
func WithUnitWeights() ConvertOption {
	return func(o *convertOptions) { o.weighted = true }
}

// WithEdgeFilter keeps only steps from→to for which fn returns true.
func WithEdgeFilter(fn func(from, to Cell) bool) ConvertOption {
	return func(o *convertOptions) { o.filter = fn }
}
