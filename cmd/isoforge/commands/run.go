package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [targets...]",
		Short: "Bring the named targets up to date",
		Long: `Run satisfies each named target after its prerequisites, executing the
action of every target whose artifact is missing or out of date. With no
arguments the recipe's default target runs; the reserved name "all" expands
to every target except the clean target.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), args)
		},
	}
}
