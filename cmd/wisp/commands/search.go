package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/wisp/internal/ui/output"
	"go.trai.ch/wisp/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search query [candidate...]",
		Short: "Rank candidates against a query by name and pinyin",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			from, _ := cmd.Flags().GetString("from")

			candidates := args[1:]
			if from != "" {
				read, err := readCandidates(cmd.InOrStdin(), from)
				if err != nil {
					return err
				}
				candidates = append(candidates, read...)
			}

			results, err := c.app.Search(cmd.Context(), c.options(), args[0], candidates)
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringP("from", "f", "", "Read candidates from a file, one per line (- for stdin)")
	return cmd
}

func readCandidates(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path) //nolint:gosec // path is provided by user
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCandidatesReadFailed.Error()), "path", path)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var candidates []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			candidates = append(candidates, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCandidatesReadFailed.Error()), "path", path)
	}
	return candidates, nil
}

func printResults(w io.Writer, results []domain.SearchResult) error {
	r := output.Renderer(w)
	muted := r.NewStyle().Foreground(style.Muted)
	name := r.NewStyle().Foreground(style.Accent)

	if len(results) == 0 {
		_, err := fmt.Fprintln(w, muted.Render("no matches"))
		return err
	}

	for _, res := range results {
		line := name.Render(res.Name)
		if res.MatchedOn != res.Name {
			line += " " + muted.Render(style.Arrow+" "+res.MatchedOn)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
