package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/nest/internal/adapters/config"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the project and all its subprojects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides, err := config.ParseOverrides(c.sets)
			if err != nil {
				return err
			}
			return c.app.Build(cmd.Context(), c.dir, overrides, c.parallelism)
		},
	}
}
