package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/wisp/internal/app"
)

func (c *CLI) newTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Print the pinyin form of each argument",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			noCache, _ := cmd.Flags().GetBool("no-cache")

			results, err := c.app.Translate(cmd.Context(), c.options(), args, app.TranslateOptions{NoCache: noCache})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				if _, err := fmt.Fprintln(out, r); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Convert every argument without consulting the cache")
	return cmd
}
