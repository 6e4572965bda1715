// Package commands implements the CLI commands for sdkbuild.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/sdkbuild/internal/app"
	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/ui/style"
	"go.trai.ch/zerr"
)

// DefaultConfigPath is the settings file read when --config is not given.
const DefaultConfigPath = "sdkbuild.yaml"

// CLI represents the command line interface for sdkbuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (*app.Report, error)
	Targets() []string
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	var opts app.RunOptions
	rootCmd := &cobra.Command{
		Use:           "sdkbuild",
		Short:         "Build the native SDK for every supported platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return zerr.With(
					zerr.Wrap(domain.ErrInvalidArguments, "unexpected positional arguments"),
					"args", strings.Join(args, " "),
				)
			}
			_, err := c.app.Run(cmd.Context(), opts)
			return err
		},
	}

	flags := rootCmd.Flags()
	flags.StringArrayVarP(&opts.Targets, "target", "t", nil, "Target to build (repeatable). Defaults to every target valid on this host")
	flags.BoolVarP(&opts.Silent, "silent", "s", false, "Discard build tool output")
	flags.StringVarP(&opts.Toolset, "vs", "v", "", "MSBuild tools version override, e.g. 15.0")
	flags.BoolVarP(&opts.SkipTizen, "notizen", "n", false, "Skip tizen targets")
	flags.BoolVar(&opts.SkipDependencies, "skip-dependencies", false, "Skip the dependency preflight check")
	flags.StringVarP(&opts.ConfigPath, "config", "c", DefaultConfigPath, "Path to the settings file")

	rootCmd.InitDefaultHelpFlag()
	flags.Lookup("help").Usage = "Show help for command"

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return zerr.Wrap(domain.ErrInvalidArguments, err.Error())
	})

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		defaultHelp(cmd, args)
		if cmd != rootCmd {
			return
		}
		c.printTargets(cmd.OutOrStdout())
	})

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) printTargets(w io.Writer) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, style.Heading.Render("Valid targets on this host:"))
	for _, name := range c.app.Targets() {
		_, _ = fmt.Fprintln(w, style.Item.Render(name))
	}
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
