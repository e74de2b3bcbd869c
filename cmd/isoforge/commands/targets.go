package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the recipe's targets in execution order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recipe, err := c.app.Recipe()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for target := range recipe.Graph.Walk() {
				name := target.Name.String()
				var marks []string
				if target.Name == recipe.Default {
					marks = append(marks, "default")
				}
				if target.Name == recipe.Clean {
					marks = append(marks, "clean")
				}
				if target.Tolerant {
					marks = append(marks, "tolerant")
				}
				if target.Always {
					marks = append(marks, "always")
				}

				if len(marks) > 0 {
					_, _ = fmt.Fprintf(out, "%s (%s)\n", name, strings.Join(marks, ", "))
				} else {
					_, _ = fmt.Fprintln(out, name)
				}
			}
			return nil
		},
	}
}
