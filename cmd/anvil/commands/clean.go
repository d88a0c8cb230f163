package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cached pipeline artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			projectOnly, _ := cmd.Flags().GetBool("project")
			return c.app.Clean(configPath, projectOnly)
		},
	}
	cmd.Flags().BoolP("project", "p", false, "Only remove the project cache tier, keep shared artifacts")
	return cmd
}
