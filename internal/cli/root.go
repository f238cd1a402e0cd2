// Package cli implements the aoc2022 command line.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	clierrors "github.com/katalvlaran/aoc2022/internal/errors"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
	environ    []string // nil means the process environment
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aoc2022",
		Short: "Solve Advent of Code 2022 puzzles",
		Long: `aoc2022 reads a day's puzzle input and prints both answers.

Puzzle parameters (row numbers, round counts, time limits) come from
built-in defaults, then an optional YAML file, then AOC_ environment
variables such as AOC_DAY15__ROW=10.

Exit Codes:
  0 - Success
  1 - Solver failed
  2 - Malformed puzzle input
  3 - Invalid arguments
  4 - Invalid configuration`,
		Example: `  # Solve day 12 from a file
  aoc2022 solve 12 --input input/day12.txt

  # Read from stdin with debug logging
  aoc2022 solve day12 -v < input/day12.txt

  # List available days
  aoc2022 list`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML file with puzzle parameters (default ./aoc2022.yml if present)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log solver steps to stderr")

	cmd.AddCommand(newSolveCmd(opts), newListCmd(), newVersionCmd())

	return cmd
}

// Execute runs the CLI with the process arguments and returns the exit code.
func Execute(ctx context.Context) int {
	return run(ctx, nil, nil, nil, nil, &rootOptions{})
}

// run executes the command tree. nil args/streams fall back to the process
// defaults.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, opts *rootOptions) int {
	cmd := newRootCmd(opts)
	if args != nil {
		cmd.SetArgs(args)
	}
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	if stdout != nil {
		cmd.SetOut(stdout)
	}
	if stderr != nil {
		cmd.SetErr(stderr)
	}

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}
	cliErr := clierrors.AsCLIError(err)
	if cliErr == nil {
		// cobra's own argument and flag errors
		cliErr = clierrors.Wrap(err, clierrors.Argument, "Run 'aoc2022 --help' for usage")
	}
	clierrors.FprintError(cmd.ErrOrStderr(), cliErr)

	return exitCodeFor(cliErr.Category)
}
