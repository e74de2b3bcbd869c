package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newStageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Render the recipe's custom-file templates without building",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sets, err := cmd.Flags().GetStringArray("set")
			if err != nil {
				return err
			}

			overrides := make(map[string]string, len(sets))
			for _, s := range sets {
				k, v, ok := strings.Cut(s, "=")
				if !ok {
					return zerr.With(zerr.New("invalid --set value, want key=value"), "value", s)
				}
				overrides[k] = v
			}

			return c.app.Stage(cmd.Context(), overrides)
		},
	}

	cmd.Flags().StringArray("set", nil, "Override a recipe variable (key=value, repeatable)")
	return cmd
}
