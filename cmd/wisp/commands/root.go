// Package commands implements the CLI commands for wisp.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/wisp/internal/app"
	"go.trai.ch/wisp/internal/build"
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/wisp/internal/ui/output"
	"go.trai.ch/wisp/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// EnvPrefix prefixes the environment variables that set global flags, e.g. WISP_DATA_ROOT.
const EnvPrefix = "WISP"

// CLI represents the command line interface for wisp.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	config  *viper.Viper
}

// Application represents the application logic interface.
type Application interface {
	Translate(ctx context.Context, opts app.Options, texts []string, topts app.TranslateOptions) ([]string, error)
	Search(ctx context.Context, opts app.Options, query string, candidates []string) ([]domain.SearchResult, error)
	Settings(ctx context.Context, opts app.Options) ([]app.SettingView, error)
	SetSetting(ctx context.Context, opts app.Options, key, value string) error
	Watch(ctx context.Context, opts app.Options, in io.Reader, out io.Writer) error
	Stats(ctx context.Context, opts app.Options, in io.Reader, out io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "wisp",
		Short:         "Launcher search core with pinyin matching",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to wisp.yaml (default: <data root>/wisp.yaml)")
	flags.String("data-root", "", "Directory holding settings and config")
	flags.Bool("portable", false, "Keep data next to the executable")
	flags.Bool("json", false, "Write logs as JSON")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("env-file", "", "Load environment variables from this file first")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		config:  v,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return c.loadEnvFile(cmd)
	}

	rootCmd.AddCommand(c.newTranslateCmd())
	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newSettingsCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newStatsCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// loadEnvFile loads --env-file before any flag is read through viper.
// Variables already set in the environment take precedence.
func (c *CLI) loadEnvFile(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("env-file")
	if path == "" {
		path = c.config.GetString("env-file")
	}
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to load env file"), "path", path)
	}
	return nil
}

// options resolves the global flags, their WISP_* environment variables and defaults.
func (c *CLI) options() app.Options {
	return app.Options{
		ConfigPath: c.config.GetString("config"),
		DataRoot:   c.config.GetString("data-root"),
		Portable:   c.config.GetBool("portable"),
		JSON:       c.config.GetBool("json"),
		LogLevel:   c.config.GetString("log-level"),
	}
}

// printInputHint tells interactive users how to end stdin input.
func printInputHint(cmd *cobra.Command) {
	if !isTerminal(cmd.InOrStdin()) {
		return
	}
	errOut := cmd.ErrOrStderr()
	hint := output.Renderer(errOut).NewStyle().Foreground(style.Muted)
	_, _ = fmt.Fprintln(errOut, hint.Render("type one name per line, Ctrl-D to finish"))
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
