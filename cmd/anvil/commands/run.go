package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/anvil/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the pipeline and produce the final jar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")
			progress, _ := cmd.Flags().GetBool("progress")
			return c.app.Run(cmd.Context(), configPath, app.RunOptions{
				Force:    force,
				Progress: progress,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Invalidate every cache tier before running")
	cmd.Flags().BoolP("progress", "P", false, "Render a live stage view while running")
	return cmd
}
