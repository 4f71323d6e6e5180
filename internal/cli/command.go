package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/dircount/internal/dircount"
	"github.com/idelchi/dircount/internal/integration"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
	stdout  io.Writer
	stderr  io.Writer
}

// New creates a new CLI instance with the given version, writing to the
// process's standard streams.
func New(version string) CLI {
	return CLI{version: version, stdout: os.Stdout, stderr: os.Stderr}
}

// options holds the parsed command line.
type options struct {
	// Path is the directory to walk.
	Path string
	// NoProgress disables the progress display.
	NoProgress bool
	// ProgressInterval controls the progress redraw cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Version indicates whether to show version and exit.
	Version bool
	// Shell selects a completion script to output.
	Shell string
}

func help(cmd *cobra.Command) {
	fmt.Fprint(cmd.OutOrStdout(), heredoc.Doc(`
		dircount walks a directory tree and reports its total size,
		file count, directory count and the time the walk took.

		Usage:

			dircount [flags] <directory>

		Positional Arguments:
		  directory              Directory to walk. Required.

		A spinner with running totals is shown on stderr while walking,
		unless stderr is not a terminal, --no-progress or --debug is set.

		Flags:
	`))
	fmt.Fprint(cmd.OutOrStdout(), cmd.Flags().FlagUsages())
}

// registerFlags binds the command-line flags to opts.
func registerFlags(flags *pflag.FlagSet, opts *options) {
	flags.SortFlags = false
	flags.BoolVar(&opts.NoProgress, "no-progress", false, "Disable the progress display")
	flags.DurationVar(&opts.ProgressInterval, "progress-interval", DefaultProgressInterval, "Progress redraw interval")
	flags.BoolVar(&opts.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&opts.Version, "version", "v", false, "Show version and exit")
	flags.StringVar(&opts.Shell, "init", "", "Output completion script for a shell (bash, zsh, fish, powershell)")
}

// usage reports a usage error on stderr.
func (c CLI) usage(name string) {
	printError(c.stderr, fmt.Sprintf("Usage: %s <directory>", name), isTerminal(c.stderr))
}

// Execute runs the CLI with the provided arguments (without the program name).
func (c CLI) Execute(args []string) error {
	var opts options

	cmd := &cobra.Command{
		Use:           "dircount [flags] <directory>",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Version {
				fmt.Fprintln(c.stdout, c.version)

				return nil
			}

			if opts.Shell != "" {
				if err := integration.Render(cmd.Root(), opts.Shell, c.stdout); err != nil {
					return fmt.Errorf("rendering completion script: %w", err)
				}

				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("%w: expected exactly one directory, got %d arguments", dircount.ErrUsage, len(args))
			}

			opts.Path = args[0]

			return c.logic(cmd.Context(), opts)
		},
	}

	registerFlags(cmd.Flags(), &opts)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", dircount.ErrUsage, err)
	})
	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) { help(cmd) })
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)
	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)

	err := cmd.ExecuteContext(context.Background())
	if errors.Is(err, dircount.ErrUsage) {
		c.usage(cmd.Name())

		return nil
	}

	return err
}
