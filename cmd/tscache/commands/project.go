package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/tscache/internal/ui/style"
)

func (c *CLI) newProjectRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Print the project root and package name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := c.app.Root(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fields := style.NewFields(style.Renderer(w)).Add("root", info.Dir)
			if info.Name != "" {
				fields.Add("name", info.Name)
			}
			_, err = fmt.Fprint(w, fields.String())
			return err
		},
	}
}
