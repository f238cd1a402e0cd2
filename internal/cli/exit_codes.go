package cli

import clierrors "github.com/katalvlaran/aoc2022/internal/errors"

// Exit codes for the aoc2022 CLI.
const (
	// ExitSuccess indicates both answers were printed.
	ExitSuccess = 0

	// ExitRuntime indicates the solver failed on well-formed input.
	ExitRuntime = 1

	// ExitMalformedInput indicates the puzzle input could not be parsed.
	ExitMalformedInput = 2

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 3

	// ExitConfig indicates an invalid configuration file or environment.
	ExitConfig = 4
)

// exitCodeFor maps an error category to the process exit code.
func exitCodeFor(c clierrors.ErrorCategory) int {
	switch c {
	case clierrors.Input:
		return ExitMalformedInput
	case clierrors.Argument:
		return ExitInvalidArguments
	case clierrors.Configuration:
		return ExitConfig
	default:
		return ExitRuntime
	}
}
