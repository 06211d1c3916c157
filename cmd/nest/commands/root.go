// Package commands implements the CLI commands for the nest build tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/nest/internal/app"
)

// CLI represents the command line interface for nest.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command

	dir         string
	sets        []string
	parallelism int
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nest",
		Short:         "A build tool for trees of nested projects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.dir, "dir", "C", ".", "Directory containing the top-level manifest")
	rootCmd.PersistentFlags().StringArrayVar(&c.sets, "set", nil, "Override a config value (KEY=VALUE, repeatable)")
	rootCmd.PersistentFlags().IntVarP(&c.parallelism, "jobs", "j", 0, "Maximum steps to run in parallel (0 = default)")

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
