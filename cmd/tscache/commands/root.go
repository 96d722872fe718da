// Package commands implements the CLI commands for tscache.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tscache/internal/app"
	"go.trai.ch/tscache/internal/build"
	"go.trai.ch/tscache/internal/core/domain"
)

// CLI represents the command line interface for tscache.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.GlobalOptions)
	Close(ctx context.Context) error
	Compile(ctx context.Context, files []string, opts app.CompileOptions) error
	Clean(ctx context.Context, opts app.CacheOptions) error
	Stats(ctx context.Context, opts app.CacheOptions) (domain.CacheStats, error)
	Root(ctx context.Context) (app.RootInfo, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "tscache",
		Short:         "Compile TypeScript to JavaScript through a content-addressed cache",
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

	rootCmd.PersistentFlags().Bool("verbose", false, "Log every compile with its duration and cache status")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolP("global-cache", "g", false, "Use the per-user cache folder instead of the project's")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		c.app.Configure(app.GlobalOptions{
			Verbose:  verbose,
			JSONLogs: jsonLogs,
		})
	}

	rootCmd.AddCommand(c.newCompileCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newStatsCmd())
	rootCmd.AddCommand(c.newProjectRootCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if closeErr := c.app.Close(ctx); err == nil {
		err = closeErr
	}
	return err
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

// SetInput sets the stream read by compile --stdin. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

func cacheOptions(cmd *cobra.Command) app.CacheOptions {
	global, _ := cmd.Flags().GetBool("global-cache")
	return app.CacheOptions{GlobalCache: global}
}
