package cli

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/doeshing/codescout/internal/app"
	"github.com/doeshing/codescout/internal/infrastructure/mcpserver"
)

func newServeCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdio",
		Long: `Serve MCP over stdio.

Expected to be executed by an AI agent, not by a human.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ts := mcpserver.New(container.DiscoveryService)
			server := mcpserver.NewServer()
			if err := ts.RegisterServer(server); err != nil {
				return err
			}
			transport := &mcp.StdioTransport{}
			return server.Run(cmd.Context(), transport)
		},
	}
}
