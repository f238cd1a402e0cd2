package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2022/days"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the available days",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			num := color.New(color.FgCyan).SprintFunc()
			for _, d := range days.All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", num(fmt.Sprintf("%2d", d.Number)), d.Title); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
