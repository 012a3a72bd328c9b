package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/doeshing/codescout/internal/application/discovery"
	"github.com/doeshing/codescout/internal/domain"
)

// Version is stamped by the build; kept here so the MCP handshake and the
// CLI report the same string.
var Version = "dev"

// ToolSet adapts the discovery service to MCP tool handlers.
type ToolSet struct {
	service *discovery.Service
}

// New builds a ToolSet over the discovery service.
func New(service *discovery.Service) *ToolSet {
	return &ToolSet{service: service}
}

// NewServer constructs the MCP server with its instructions.
func NewServer() *mcp.Server {
	impl := &mcp.Implementation{
		Name:    "codescout",
		Title:   "Code and package discovery over hosted repositories and the package registry",
		Version: Version,
	}
	opts := &mcp.ServerOptions{
		Instructions: `This server provides code- and package-discovery tools backed by the
gh and npm CLIs.

Strategy hints:
- Use search_repositories to find a repository, view_repo_structure to
  discover paths, then fetch_file_content for specific files.
- Use search_code for cross-repository identifier lookups.
- Use search_packages / view_package for registry metadata.
- Results are cached server-side; repeated identical calls are cheap.
- Branch lookups fall back across main/master/develop/trunk; a notice in
  the response reports which branch was used.
`,
	}
	return mcp.NewServer(impl, opts)
}

// RegisterServer attaches all tools to the server.
func (ts *ToolSet) RegisterServer(server *mcp.Server) error {
	mcp.AddTool(server, SearchCode, ts.SearchCode)
	mcp.AddTool(server, SearchRepositories, ts.SearchRepositories)
	mcp.AddTool(server, FetchFileContent, ts.FetchFileContent)
	mcp.AddTool(server, ViewRepoStructure, ts.ViewRepoStructure)
	mcp.AddTool(server, SearchPackages, ts.SearchPackages)
	mcp.AddTool(server, ViewPackage, ts.ViewPackage)
	return nil
}

func (ts *ToolSet) SearchCode(ctx context.Context,
	_ *mcp.CallToolRequest, args SearchCodeParams,
) (*mcp.CallToolResult, any, error) {
	result, err := ts.service.SearchCode(ctx, domain.CodeSearchRequest{
		Query:     args.Query,
		Language:  args.Language,
		Owner:     args.Owner,
		Repo:      args.Repo,
		Extension: args.Extension,
		Filename:  args.Filename,
		Limit:     args.Limit,
	})
	return callToolResult(result), nil, err
}

func (ts *ToolSet) SearchRepositories(ctx context.Context,
	_ *mcp.CallToolRequest, args SearchRepositoriesParams,
) (*mcp.CallToolResult, any, error) {
	result, err := ts.service.SearchRepositories(ctx, domain.RepoSearchRequest{
		Query:    args.Query,
		Owner:    args.Owner,
		Language: args.Language,
		Topic:    args.Topic,
		Stars:    args.Stars,
		Sort:     args.Sort,
		Limit:    args.Limit,
	})
	return callToolResult(result), nil, err
}

func (ts *ToolSet) FetchFileContent(ctx context.Context,
	_ *mcp.CallToolRequest, args FetchFileContentParams,
) (*mcp.CallToolResult, any, error) {
	result, err := ts.service.FetchFileContent(ctx, domain.FileContentRequest{
		Owner:  args.Owner,
		Repo:   args.Repo,
		Path:   args.Path,
		Branch: args.Branch,
	})
	return callToolResult(result), nil, err
}

func (ts *ToolSet) ViewRepoStructure(ctx context.Context,
	_ *mcp.CallToolRequest, args ViewRepoStructureParams,
) (*mcp.CallToolResult, any, error) {
	result, err := ts.service.ViewRepoStructure(ctx, domain.RepoStructureRequest{
		Owner:     args.Owner,
		Repo:      args.Repo,
		Branch:    args.Branch,
		Recursive: args.Recursive,
	})
	return callToolResult(result), nil, err
}

func (ts *ToolSet) SearchPackages(ctx context.Context,
	_ *mcp.CallToolRequest, args SearchPackagesParams,
) (*mcp.CallToolResult, any, error) {
	result, err := ts.service.SearchPackages(ctx, domain.PackageSearchRequest{
		Query: args.Query,
		Limit: args.Limit,
	})
	return callToolResult(result), nil, err
}

func (ts *ToolSet) ViewPackage(ctx context.Context,
	_ *mcp.CallToolRequest, args ViewPackageParams,
) (*mcp.CallToolResult, any, error) {
	result, err := ts.service.ViewPackage(ctx, domain.PackageViewRequest{
		Name:    args.Name,
		Version: args.Version,
		Fields:  args.Fields,
	})
	return callToolResult(result), nil, err
}

// callToolResult converts the domain Result envelope into the MCP shape.
func callToolResult(result domain.Result) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(result.Content))
	for _, block := range result.Content {
		content = append(content, &mcp.TextContent{Text: block.Text})
	}
	return &mcp.CallToolResult{
		Content: content,
		IsError: result.IsError,
	}
}
