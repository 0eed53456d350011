package commands

import "github.com/spf13/cobra"

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Transliterate lines from stdin, reloading settings when they change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printInputHint(cmd)
			return c.app.Watch(cmd.Context(), c.options(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
