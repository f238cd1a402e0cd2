// Package day07 reconstructs a directory tree from a terminal session and
// totals directory sizes.
//
// Directories are vertices of a directed core.Graph keyed by absolute
// path, with an edge from each directory to each child. Recursive totals
// are folded in DFS post-order.
package day07

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2022/core"
	"github.com/katalvlaran/aoc2022/dfs"
	"github.com/katalvlaran/aoc2022/internal/ctxlog"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const (
	// Root is the vertex ID of the filesystem root.
	Root = "/"

	defaultSmallLimit   = 100000
	defaultDiskSize     = 70000000
	defaultRequiredFree = 30000000
)

var (
	// ErrNoRoot is returned when the session never visits "/".
	ErrNoRoot = errors.New("day07: root directory never listed")

	// ErrEnoughSpace is returned when nothing needs deleting.
	ErrEnoughSpace = errors.New("day07: already enough free space")

	// ErrNoCandidate is returned when no single directory frees enough space.
	ErrNoCandidate = errors.New("day07: no directory large enough")
)

// FS is the reconstructed directory tree.
type FS struct {
	tree  *core.Graph
	files map[string]map[string]int64 // dir -> file name -> size
}

func newFS() *FS {
	return &FS{
		tree:  core.NewGraph(core.WithDirected(true)),
		files: make(map[string]map[string]int64),
	}
}

func (fs *FS) mkdir(parent, name string) (string, error) {
	child := path.Join(parent, name)
	if fs.tree.HasEdge(parent, child) {
		return child, nil
	}
	if _, err := fs.tree.AddEdge(parent, child, 0); err != nil {
		return "", err
	}

	return child, nil
}

// Dirs returns every known directory path, sorted.
func (fs *FS) Dirs() []string { return fs.tree.Vertices() }

// Parse replays the session log.
func Parse(r io.Reader) (*FS, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	fs := newFS()
	cwd := ""
	for i, l := range lines {
		if l == "" {
			continue
		}
		fields := strings.Fields(l)
		switch {
		case l == "$ ls":
			if cwd == "" {
				return nil, puzzle.Malformed(i+1, l, "ls before cd /")
			}
		case len(fields) == 3 && fields[0] == "$" && fields[1] == "cd":
			switch arg := fields[2]; arg {
			case Root:
				cwd = Root
				if err = fs.tree.AddVertex(Root); err != nil {
					return nil, err
				}
			case "..":
				if cwd == "" || cwd == Root {
					return nil, puzzle.Malformed(i+1, l, "cd .. above root")
				}
				cwd = path.Dir(cwd)
			default:
				if cwd == "" {
					return nil, puzzle.Malformed(i+1, l, "cd before cd /")
				}
				if cwd, err = fs.mkdir(cwd, arg); err != nil {
					return nil, err
				}
			}
		case cwd == "":
			return nil, puzzle.Malformed(i+1, l, "listing before cd /")
		case len(fields) == 2 && fields[0] == "dir":
			if _, err = fs.mkdir(cwd, fields[1]); err != nil {
				return nil, err
			}
		case len(fields) == 2:
			size, perr := strconv.ParseInt(fields[0], 10, 64)
			if perr != nil || size < 0 {
				return nil, puzzle.Malformed(i+1, l, "want \"<size> <name>\"")
			}
			if fs.files[cwd] == nil {
				fs.files[cwd] = make(map[string]int64)
			}
			// a repeated ls of the same directory must not double count
			fs.files[cwd][fields[1]] = size
		default:
			return nil, puzzle.Malformed(i+1, l, "unrecognised line")
		}
	}
	if !fs.tree.HasVertex(Root) {
		return nil, ErrNoRoot
	}

	return fs, nil
}

// Sizes returns the recursive size of every directory.
func (fs *FS) Sizes(ctx context.Context) (map[string]int64, error) {
	defer ctxlog.Timed(ctx, "day07.sizes")()

	sizes := make(map[string]int64, fs.tree.VertexCount())
	fold := func(dir string) error {
		var total int64
		for _, size := range fs.files[dir] {
			total += size
		}
		children, err := fs.tree.NeighborIDs(dir)
		if err != nil {
			return err
		}
		for _, c := range children {
			total += sizes[c]
		}
		sizes[dir] = total

		return nil
	}
	if _, err := dfs.DFS(fs.tree, Root, dfs.WithContext(ctx), dfs.WithOnExit(fold)); err != nil {
		return nil, err
	}

	return sizes, nil
}

// Part1 sums every directory whose total is at most limit.
func Part1(sizes map[string]int64, limit int64) int64 {
	var sum int64
	for _, s := range sizes {
		if s <= limit {
			sum += s
		}
	}

	return sum
}

// Part2 returns the size of the smallest directory whose removal leaves
// at least required bytes free on a disk of diskSize bytes.
func Part2(sizes map[string]int64, diskSize, required int64) (int64, error) {
	used := sizes[Root]
	need := used - (diskSize - required)
	if need <= 0 {
		return 0, fmt.Errorf("%w: %d used of %d", ErrEnoughSpace, used, diskSize)
	}
	best := int64(-1)
	for _, s := range sizes {
		if s >= need && (best < 0 || s < best) {
			best = s
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("%w: need %d", ErrNoCandidate, need)
	}

	return best, nil
}

// Solve replays the terminal log and sizes its directories.
func Solve(ctx context.Context, r io.Reader, p puzzle.Params) (puzzle.Answers, error) {
	fs, err := Parse(r)
	if err != nil {
		return puzzle.Answers{}, err
	}
	sizes, err := fs.Sizes(ctx)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p2, err := Part2(sizes,
		puzzle.Int64Or(p, "disk_size", defaultDiskSize),
		puzzle.Int64Or(p, "required_free", defaultRequiredFree))
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.NewAnswers(Part1(sizes, puzzle.Int64Or(p, "small_limit", defaultSmallLimit)), p2), nil
}
