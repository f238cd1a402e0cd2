package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLine bounds a single input line; day 17's jet pattern is ~10k bytes.
const maxLine = 1 << 20

// Lines reads r fully and returns its lines without trailing '\r' or '\n'.
// A final empty line produced by a trailing newline is not included.
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	var out []string
	for sc.Scan() {
		out = append(out, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return out, nil
}

// NonEmpty drops blank lines.
func NonEmpty(lines []string) []string {
	out := lines[:0:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}

	return out
}

// Block is a group of consecutive non-blank lines with the line number of
// its first line (1-based).
type Block struct {
	Start int
	Lines []string
}

// Blocks splits lines into groups separated by blank lines.
func Blocks(lines []string) []Block {
	var out []Block
	var cur *Block
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			cur = nil
			continue
		}
		if cur == nil {
			out = append(out, Block{Start: i + 1})
			cur = &out[len(out)-1]
		}
		cur.Lines = append(cur.Lines, l)
	}

	return out
}

// Atoi parses a (trimmed) decimal integer, reporting failures against line n.
func Atoi(n int, line, field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, Malformed(n, line, fmt.Sprintf("%q is not an integer", field))
	}

	return v, nil
}
