package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/wisp/internal/app"
	"go.trai.ch/wisp/internal/ui/output"
	"go.trai.ch/wisp/internal/ui/style"
)

func (c *CLI) newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change user settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print every setting with its description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			views, err := c.app.Settings(cmd.Context(), c.options())
			if err != nil {
				return err
			}
			return printSettings(cmd.OutOrStdout(), views)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set key value",
		Short: "Change a single setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.SetSetting(cmd.Context(), c.options(), args[0], args[1])
		},
	})

	return cmd
}

func printSettings(w io.Writer, views []app.SettingView) error {
	r := output.Renderer(w)
	key := r.NewStyle().Foreground(style.Accent).Width(14)
	muted := r.NewStyle().Foreground(style.Muted)

	for _, v := range views {
		line := key.Render(string(v.Key)) + v.Value
		if v.Detail != "" {
			line += " " + muted.Render("("+v.Detail+")")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, muted.Render("  "+v.Description)); err != nil {
			return err
		}
	}
	return nil
}
