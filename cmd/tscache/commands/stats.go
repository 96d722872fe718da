package commands

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.trai.ch/tscache/internal/ui/style"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the number and size of cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.app.Stats(cmd.Context(), cacheOptions(cmd))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fields := style.NewFields(style.Renderer(w)).
				Add("cache", stats.Dir).
				Add("entries", strconv.Itoa(stats.Entries)).
				Add("size", humanize.Bytes(uint64(max(stats.Bytes, 0))))
			_, err = fmt.Fprint(w, fields.String())
			return err
		},
	}
}
