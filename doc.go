// Package aoc2022 solves the Advent of Code 2022 puzzles (days 1–21) on top
// of a small in-memory graph toolkit.
//
// Layout:
//
//	core/       - Graph, Vertex, Edge types with thread-safe primitives
//	bfs/, dfs/  - traversals; dfs also provides topological sort
//	dijkstra/   - single-source shortest paths with early exit on target
//	matrix/     - dense matrices and all-pairs distances (Floyd–Warshall)
//	gridgraph/  - 2D character grids and their conversion to core.Graph
//	geom/       - generic 2D/3D integer points
//	puzzle/     - answers, parameters and input-parsing helpers
//	days/dayNN/ - one solver per puzzle day
//	internal/   - CLI, configuration, error categories, context logging
//
// The aoc2022 command (cmd/aoc2022) reads a puzzle input from a file or
// stdin and prints both answers.
package aoc2022
