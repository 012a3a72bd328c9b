package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/codescout/internal/app"
)

func newCacheCommand(container *app.Container) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the result cache",
	}

	cacheCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List live cache entries",
			RunE: func(cmd *cobra.Command, args []string) error {
				return listCacheEntries(cmd.OutOrStdout(), container)
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show hit/miss/set counters",
			RunE: func(cmd *cobra.Command, args []string) error {
				stats := container.Cache.Stats()
				fmt.Fprintf(cmd.OutOrStdout(), "hits: %d\nmisses: %d\nsets: %d\nentries: %d\n",
					stats.Hits, stats.Misses, stats.Sets, stats.Entries)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Flush the cache and reset counters",
			RunE: func(cmd *cobra.Command, args []string) error {
				container.Cache.ClearAll()
				fmt.Fprintln(cmd.OutOrStdout(), "cache cleared")
				return nil
			},
		},
	)

	return cacheCmd
}

func listCacheEntries(w io.Writer, container *app.Container) error {
	entries := container.Cache.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(w, "No cached results.")
		return nil
	}
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\tttl %s\n", entry.Key, humanize.Time(entry.InsertedAt), entry.TTL)
	}
	return nil
}
