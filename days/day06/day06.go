// Package day06 finds start-of-packet and start-of-message markers in a
// datastream.
package day06

import (
	"context"
	"io"
	"strings"

	"github.com/katalvlaran/aoc2022/puzzle"
)

const (
	defaultPacketWindow  = 4
	defaultMessageWindow = 14
)

// Parse returns the datastream, the first non-blank line.
func Parse(r io.Reader) (string, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return "", err
	}
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		for _, c := range l {
			if c < 'a' || c > 'z' {
				return "", puzzle.Malformed(i+1, l, "datastream must be lowercase letters")
			}
		}

		return l, nil
	}

	return "", nil
}

// Marker returns the number of characters processed when the last window
// of size n holds distinct letters, or 0 when there is no such window.
func Marker(s string, n int) int {
	if n <= 0 || n > len(s) {
		return 0
	}
	var counts [26]int
	dup := 0
	for i := 0; i < len(s); i++ {
		c := s[i] - 'a'
		counts[c]++
		if counts[c] == 2 {
			dup++
		}
		if i >= n {
			o := s[i-n] - 'a'
			if counts[o] == 2 {
				dup--
			}
			counts[o]--
		}
		if i >= n-1 && dup == 0 {
			return i + 1
		}
	}

	return 0
}

// Part1 finds the start-of-packet marker.
func Part1(s string, window int) int { return Marker(s, window) }

// Part2 finds the start-of-message marker.
func Part2(s string, window int) int { return Marker(s, window) }

// Solve reads the datastream and locates both markers.
func Solve(_ context.Context, r io.Reader, p puzzle.Params) (puzzle.Answers, error) {
	s, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}
	packet := puzzle.IntOr(p, "packet_window", defaultPacketWindow)
	message := puzzle.IntOr(p, "message_window", defaultMessageWindow)

	return puzzle.NewAnswers(Part1(s, packet), Part2(s, message)), nil
}
