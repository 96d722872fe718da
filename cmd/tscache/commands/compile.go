package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tscache/internal/app"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [files...]",
		Short: "Compile TypeScript files, reusing cached output",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir, _ := cmd.Flags().GetString("out-dir")
			stdinPath, _ := cmd.Flags().GetString("stdin")

			if len(args) == 0 && stdinPath == "" {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			return c.app.Compile(cmd.Context(), args, app.CompileOptions{
				CacheOptions: cacheOptions(cmd),
				OutDir:       outDir,
				StdinPath:    stdinPath,
				Stdin:        cmd.InOrStdin(),
				Stdout:       cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringP("out-dir", "o", "", "Write .js files below this directory instead of printing them")
	cmd.Flags().String("stdin", "", "Compile standard input as the file at this path")
	return cmd
}
