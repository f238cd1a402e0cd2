// Package gridgraph treats a rectangular grid of integer cells as a graph.
//
// What:
//
//   - GridGraph wraps a [][]int grid (heights, tree sizes, terrain codes).
//   - Bounds checks, 4- or 8-neighborhoods, straight-line walks and value lookup.
//   - FromLines decodes text puzzles byte by byte into cell values.
//   - ToCoreGraph converts the grid into a *core.Graph with vertex IDs "x,y",
//     optionally directed, unit-weighted and filtered by a movement rule, so
//     bfs and dijkstra can run on it.
//
// Undirected conversions add each edge once; the filter sees the step from the
// lower row-major index to the higher one.
//
// Complexity:
//
//   - NewGridGraph, Find: O(W×H).
//   - ToCoreGraph:        O(W×H×d) with d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds:    Set outside the grid.
package gridgraph
