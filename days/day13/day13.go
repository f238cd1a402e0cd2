// Package day13 orders distress-signal packets.
package day13

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Packet is either an integer or a list of packets.
type Packet struct {
	IsList bool
	Value  int
	List   []Packet
}

// Int returns an integer packet.
func Int(v int) Packet { return Packet{Value: v} }

// List returns a list packet.
func List(items ...Packet) Packet { return Packet{IsList: true, List: items} }

// String renders p in the input notation.
func (p Packet) String() string {
	if !p.IsList {
		return fmt.Sprint(p.Value)
	}
	parts := make([]string, len(p.List))
	for i, q := range p.List {
		parts[i] = q.String()
	}

	return "[" + strings.Join(parts, ",") + "]"
}

// Compare returns -1 when a sorts before b, 1 when after, 0 when equal.
// An integer compared with a list is promoted to a one-element list.
func Compare(a, b Packet) int {
	switch {
	case !a.IsList && !b.IsList:
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		}
		return 0
	case !a.IsList:
		return Compare(List(a), b)
	case !b.IsList:
		return Compare(a, List(b))
	}
	for i := 0; i < len(a.List) && i < len(b.List); i++ {
		if c := Compare(a.List[i], b.List[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a.List) < len(b.List):
		return -1
	case len(a.List) > len(b.List):
		return 1
	}

	return 0
}

type parser struct {
	s   string
	pos int
}

func (p *parser) packet() (Packet, error) {
	if p.pos >= len(p.s) {
		return Packet{}, fmt.Errorf("unexpected end at offset %d", p.pos)
	}
	if p.s[p.pos] != '[' {
		return p.integer()
	}
	p.pos++
	out := List()
	if p.pos < len(p.s) && p.s[p.pos] == ']' {
		p.pos++
		return out, nil
	}
	for {
		item, err := p.packet()
		if err != nil {
			return Packet{}, err
		}
		out.List = append(out.List, item)
		if p.pos >= len(p.s) {
			return Packet{}, fmt.Errorf("unterminated list")
		}
		switch p.s[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return out, nil
		default:
			return Packet{}, fmt.Errorf("unexpected %q at offset %d", p.s[p.pos], p.pos)
		}
	}
}

func (p *parser) integer() (Packet, error) {
	start := p.pos
	v := 0
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		v = v*10 + int(p.s[p.pos]-'0')
		p.pos++
	}
	if p.pos == start {
		return Packet{}, fmt.Errorf("unexpected %q at offset %d", p.s[p.pos], p.pos)
	}

	return Int(v), nil
}

// ParsePacket parses one packet; trailing text is an error.
func ParsePacket(s string) (Packet, error) {
	p := &parser{s: s}
	pk, err := p.packet()
	if err != nil {
		return Packet{}, err
	}
	if p.pos != len(s) {
		return Packet{}, fmt.Errorf("trailing text at offset %d", p.pos)
	}

	return pk, nil
}

// Parse reads packet pairs separated by blank lines.
func Parse(r io.Reader) ([][2]Packet, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var pairs [][2]Packet
	for _, b := range puzzle.Blocks(lines) {
		if len(b.Lines) != 2 {
			return nil, puzzle.Malformed(b.Start, b.Lines[0], fmt.Sprintf("pair has %d packets", len(b.Lines)))
		}
		var pair [2]Packet
		for k, l := range b.Lines {
			if pair[k], err = ParsePacket(strings.TrimSpace(l)); err != nil {
				return nil, puzzle.Malformed(b.Start+k, l, err.Error())
			}
		}
		pairs = append(pairs, pair)
	}

	return pairs, nil
}

// Part1 sums the 1-based indices of pairs already in order.
func Part1(pairs [][2]Packet) int {
	sum := 0
	for i, p := range pairs {
		if Compare(p[0], p[1]) < 0 {
			sum += i + 1
		}
	}

	return sum
}

// Part2 sorts every packet with the dividers [[2]] and [[6]] and
// multiplies the dividers' 1-based positions.
func Part2(pairs [][2]Packet) int {
	dividers := []Packet{List(List(Int(2))), List(List(Int(6)))}
	all := slices.Clone(dividers)
	for _, p := range pairs {
		all = append(all, p[0], p[1])
	}
	slices.SortStableFunc(all, Compare)

	key := 1
	for _, d := range dividers {
		key *= slices.IndexFunc(all, func(p Packet) bool { return Compare(p, d) == 0 }) + 1
	}

	return key
}

// Solve parses the packet pairs and answers both parts.
func Solve(_ context.Context, r io.Reader, _ puzzle.Params) (puzzle.Answers, error) {
	pairs, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(Part1(pairs), Part2(pairs)), nil
}
