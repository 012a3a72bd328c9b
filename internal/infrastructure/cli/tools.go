package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/doeshing/codescout/internal/application/discovery"
	"github.com/doeshing/codescout/internal/infrastructure/mcpserver"
)

func newToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List registered MCP tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tools, err := inspectTools(cmd.Context())
			if err != nil {
				return err
			}
			j, err := json.MarshalIndent(tools, "", "    ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(j))
			return err
		},
	}
}

// inspectTools connects an in-memory client to a throwaway server so the
// listing reflects exactly what agents will see over stdio.
func inspectTools(ctx context.Context) ([]*mcp.Tool, error) {
	ts := mcpserver.New(&discovery.Service{})
	server := mcpserver.NewServer()
	if err := ts.RegisterServer(server); err != nil {
		return nil, err
	}
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		return nil, err
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "client"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		return nil, err
	}
	toolsResult, err := clientSession.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, err
	}
	if err := clientSession.Close(); err != nil {
		return nil, err
	}
	if err := serverSession.Wait(); err != nil {
		return nil, err
	}
	return toolsResult.Tools, nil
}
