// Package days registers every puzzle solver by day number.
package days

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2022/days/day01"
	"github.com/katalvlaran/aoc2022/days/day02"
	"github.com/katalvlaran/aoc2022/days/day03"
	"github.com/katalvlaran/aoc2022/days/day04"
	"github.com/katalvlaran/aoc2022/days/day05"
	"github.com/katalvlaran/aoc2022/days/day06"
	"github.com/katalvlaran/aoc2022/days/day07"
	"github.com/katalvlaran/aoc2022/days/day08"
	"github.com/katalvlaran/aoc2022/days/day09"
	"github.com/katalvlaran/aoc2022/days/day10"
	"github.com/katalvlaran/aoc2022/days/day11"
	"github.com/katalvlaran/aoc2022/days/day12"
	"github.com/katalvlaran/aoc2022/days/day13"
	"github.com/katalvlaran/aoc2022/days/day14"
	"github.com/katalvlaran/aoc2022/days/day15"
	"github.com/katalvlaran/aoc2022/days/day16"
	"github.com/katalvlaran/aoc2022/days/day17"
	"github.com/katalvlaran/aoc2022/days/day18"
	"github.com/katalvlaran/aoc2022/days/day19"
	"github.com/katalvlaran/aoc2022/days/day20"
	"github.com/katalvlaran/aoc2022/days/day21"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// ErrUnknownDay is returned by Get for a day without a solver.
var ErrUnknownDay = errors.New("days: no solver for day")

var registry = []puzzle.Day{
	{Number: 1, Title: "Calorie Counting", Solve: day01.Solve},
	{Number: 2, Title: "Rock Paper Scissors", Solve: day02.Solve},
	{Number: 3, Title: "Rucksack Reorganization", Solve: day03.Solve},
	{Number: 4, Title: "Camp Cleanup", Solve: day04.Solve},
	{Number: 5, Title: "Supply Stacks", Solve: day05.Solve},
	{Number: 6, Title: "Tuning Trouble", Solve: day06.Solve},
	{Number: 7, Title: "No Space Left On Device", Solve: day07.Solve},
	{Number: 8, Title: "Treetop Tree House", Solve: day08.Solve},
	{Number: 9, Title: "Rope Bridge", Solve: day09.Solve},
	{Number: 10, Title: "Cathode-Ray Tube", Solve: day10.Solve},
	{Number: 11, Title: "Monkey in the Middle", Solve: day11.Solve},
	{Number: 12, Title: "Hill Climbing Algorithm", Solve: day12.Solve},
	{Number: 13, Title: "Distress Signal", Solve: day13.Solve},
	{Number: 14, Title: "Regolith Reservoir", Solve: day14.Solve},
	{Number: 15, Title: "Beacon Exclusion Zone", Solve: day15.Solve},
	{Number: 16, Title: "Proboscidea Volcanium", Solve: day16.Solve},
	{Number: 17, Title: "Pyroclastic Flow", Solve: day17.Solve},
	{Number: 18, Title: "Boiling Boulders", Solve: day18.Solve},
	{Number: 19, Title: "Not Enough Minerals", Solve: day19.Solve},
	{Number: 20, Title: "Grove Positioning System", Solve: day20.Solve},
	{Number: 21, Title: "Monkey Math", Solve: day21.Solve},
}

// All returns the registered days in order.
func All() []puzzle.Day {
	return append([]puzzle.Day(nil), registry...)
}

// Get returns the solver for day n.
func Get(n int) (puzzle.Day, error) {
	if n < 1 || n > len(registry) {
		return puzzle.Day{}, fmt.Errorf("%w %d (have 1..%d)", ErrUnknownDay, n, len(registry))
	}

	return registry[n-1], nil
}
