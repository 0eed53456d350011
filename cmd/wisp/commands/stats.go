package commands

import "github.com/spf13/cobra"

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Search names from stdin and print cache metrics",
		Long: "Reads one name per line from stdin, searches every name against all others, " +
			"sweeps the cache and prints its metrics in Prometheus text format.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printInputHint(cmd)
			return c.app.Stats(cmd.Context(), c.options(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
