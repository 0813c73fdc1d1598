package commands

import (
	"github.com/masonbuild/mason/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [targets...]",
		Short: "Build the specified targets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			force, _ := cmd.Flags().GetBool("force")
			if len(args) == 0 && !all {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Run(cmd.Context(), args, app.RunOptions{
				All:   all,
				Force: force,
			})
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Build every registered target in registration order")
	cmd.Flags().BoolP("force", "f", false, "Rebuild targets regardless of timestamps")
	return cmd
}
