// Package cli wires the cobra command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/codescout/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "codescout",
		Short: "Code and package discovery tools for LLM agents",
		Long:  "codescout serves MCP tools that search code, browse repositories, and query the package registry by wrapping the gh and npm CLIs.",
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return container.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand(container))
	root.AddCommand(newToolsCommand())
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newCacheCommand(container))
	root.AddCommand(newAuditCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
