package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/codescout/internal/infrastructure/mcpserver"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the codescout version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), mcpserver.Version)
			return nil
		},
	}
}
