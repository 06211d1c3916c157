package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/nest/internal/adapters/config"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [step]",
		Short: "Run a single step of the project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			overrides, err := config.ParseOverrides(c.sets)
			if err != nil {
				return err
			}
			return c.app.BuildStep(cmd.Context(), c.dir, args[0], overrides)
		},
	}
}
