package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/codescout/internal/app"
)

func newAuditCommand(container *app.Container) *cobra.Command {
	auditCmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the tool-invocation log",
	}

	var limit int
	var search string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent invocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Audit == nil {
				return errors.New("audit store disabled in config")
			}
			records, err := container.Audit.Records(limit, search)
			if err != nil {
				return err
			}
			for _, rec := range records {
				status := "ok"
				if rec.IsError {
					status = string(rec.Classification)
				}
				hit := "miss"
				if rec.CacheHit {
					hit = "hit"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%dms\n",
					rec.Timestamp.Format("2006-01-02 15:04:05"), rec.Tool, hit, status, rec.DurationMS)
			}
			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 50, "maximum records to list")
	listCmd.Flags().StringVar(&search, "search", "", "filter by tool or category substring")

	exportCmd := &cobra.Command{
		Use:   "export DEST",
		Short: "Export the log as JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Audit == nil {
				return errors.New("audit store disabled in config")
			}
			return container.Audit.ExportJSON(args[0])
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all invocation records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Audit == nil {
				return errors.New("audit store disabled in config")
			}
			return container.Audit.Clear()
		},
	}

	auditCmd.AddCommand(listCmd, exportCmd, clearCmd)
	return auditCmd
}
