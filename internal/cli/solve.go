package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2022/days"
	"github.com/katalvlaran/aoc2022/internal/config"
	"github.com/katalvlaran/aoc2022/internal/ctxlog"
	clierrors "github.com/katalvlaran/aoc2022/internal/errors"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const solveUsage = "aoc2022 solve <day> [--input FILE]"

func newSolveCmd(root *rootOptions) *cobra.Command {
	var inputPath string
	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Solve one day's puzzle",
		Long: `Solve one day's puzzle and print "Part 1: ..." and "Part 2: ..." to stdout.

The day may be written as 12, day12 or "day 12". Input is read from
--input, or from stdin when the flag is omitted or set to "-".`,
		Example: `  aoc2022 solve 1 --input input/day01.txt
  aoc2022 solve day 15 < input/day15.txt
  AOC_DAY15__ROW=10 aoc2022 solve 15 -i sample.txt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseDay(args)
			if err != nil {
				return err
			}
			return runSolve(cmd, root, n, inputPath)
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", `Puzzle input file ("-" for stdin)`)

	return cmd
}

// parseDay accepts "12", "day12" and "day 12" (one or two arguments).
func parseDay(args []string) (int, error) {
	raw := strings.ToLower(strings.Join(args, ""))
	raw = strings.TrimPrefix(strings.ReplaceAll(raw, " ", ""), "day")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, clierrors.NewArgumentError(
			fmt.Sprintf("invalid day %q", strings.Join(args, " ")),
			solveUsage,
			"Pass the day as a number, e.g. 'aoc2022 solve 12'",
			"Run 'aoc2022 list' to see available days",
		)
	}

	return n, nil
}

func runSolve(cmd *cobra.Command, root *rootOptions, n int, inputPath string) error {
	day, err := days.Get(n)
	if err != nil {
		return clierrors.NewArgumentError(err.Error(), solveUsage, "Run 'aoc2022 list' to see available days")
	}

	cfg, err := config.Load(config.LoadOptions{ConfigPath: root.configPath, Environ: root.environ})
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Configuration, "loading configuration",
			"Check the YAML syntax of the config file",
			"Every parameter must be a positive integer",
		)
	}

	in, closeInput, err := openInput(cmd, inputPath)
	if err != nil {
		return err
	}
	defer closeInput()

	logger := ctxlog.New(cmd.ErrOrStderr(), root.verbose)
	entry := logger.WithFields(logrus.Fields{"day": day.Number, "title": day.Title})
	ctx := ctxlog.WithLogger(cmd.Context(), entry)
	entry.Debug("solving")

	done := ctxlog.Timed(ctx, "solve")
	ans, err := day.Solve(ctx, in, cfg.Day(day.Number))
	done()
	if err != nil {
		return classifySolveError(day, err)
	}

	_, err = io.WriteString(cmd.OutOrStdout(), ans.String())

	return err
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, clierrors.NewArgumentError(
			fmt.Sprintf("cannot open input: %v", err),
			solveUsage,
			"Check the --input path",
		)
	}

	return f, func() { _ = f.Close() }, nil
}

func classifySolveError(day puzzle.Day, err error) error {
	if errors.Is(err, puzzle.ErrMalformedInput) {
		return clierrors.WrapWithMessage(err, clierrors.Input, fmt.Sprintf("day %d", day.Number),
			fmt.Sprintf("Check that the input is the puzzle input for day %d (%s)", day.Number, day.Title),
		)
	}

	return clierrors.WrapWithMessage(err, clierrors.Runtime, fmt.Sprintf("day %d", day.Number),
		"Re-run with --verbose to see solver steps",
	)
}
