package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version information, set via ldflags during build.
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "aoc2022 %s\n", Version)
			fmt.Fprintf(out, "commit: %s\n", Commit)
			fmt.Fprintf(out, "built: %s\n", BuildDate)
			fmt.Fprintf(out, "go: %s\n", runtime.Version())
		},
	}
}
