// Package mcpserver exposes the discovery operations as MCP tools.
//
// Tool definitions live here as package vars with jsonschema-tagged
// parameter structs; handlers live on the ToolSet.
package mcpserver

import "github.com/modelcontextprotocol/go-sdk/mcp"

var SearchCode = &mcp.Tool{
	Name: "search_code",
	Description: `Search code across hosted repositories.

Start broad, then narrow with language/owner/repo filters. Prefer exact
identifiers (function or type names) over natural-language phrases.
Results are cached; repeating a query is cheap.`,
}

// SearchCodeParams mirrors the hosting CLI's code-search flags 1:1.
type SearchCodeParams struct {
	Query     string `json:"query" jsonschema:"The search query. Exact identifiers work best."`
	Language  string `json:"language,omitempty" jsonschema:"Filter by language, e.g. go, typescript."`
	Owner     string `json:"owner,omitempty" jsonschema:"Filter by repository owner."`
	Repo      string `json:"repo,omitempty" jsonschema:"Filter by owner/name repository."`
	Extension string `json:"extension,omitempty" jsonschema:"Filter by file extension, without the dot."`
	Filename  string `json:"filename,omitempty" jsonschema:"Filter by file name."`
	Limit     int    `json:"limit,omitempty" jsonschema:"Maximum results to return. Defaults to 30."`
}

var SearchRepositories = &mcp.Tool{
	Name: "search_repositories",
	Description: `Search hosted repositories by topic, language, or free text.

Use this to locate a repository before browsing its structure or fetching
files from it.`,
}

type SearchRepositoriesParams struct {
	Query    string `json:"query" jsonschema:"The search query."`
	Owner    string `json:"owner,omitempty" jsonschema:"Filter by repository owner."`
	Language string `json:"language,omitempty" jsonschema:"Filter by primary language."`
	Topic    string `json:"topic,omitempty" jsonschema:"Filter by repository topic."`
	Stars    string `json:"stars,omitempty" jsonschema:"Star count filter, e.g. '>100'."`
	Sort     string `json:"sort,omitempty" jsonschema:"Sort order: stars, forks, updated."`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum results to return. Defaults to 30."`
}

var FetchFileContent = &mcp.Tool{
	Name: "fetch_file_content",
	Description: `Fetch one file from a repository at a given branch.

If the branch does not exist, conventional branches (main, master,
develop, trunk) are probed in order and a fallback notice is included.`,
}

type FetchFileContentParams struct {
	Owner  string `json:"owner" jsonschema:"Repository owner."`
	Repo   string `json:"repo" jsonschema:"Repository name."`
	Path   string `json:"path" jsonschema:"File path within the repository."`
	Branch string `json:"branch,omitempty" jsonschema:"Branch or ref to read from. Falls back to conventional branches when missing."`
}

var ViewRepoStructure = &mcp.Tool{
	Name: "view_repo_structure",
	Description: `List a repository's tree at a given branch.

Use before fetching files to discover paths. Same branch fallback as
fetch_file_content.`,
}

type ViewRepoStructureParams struct {
	Owner     string `json:"owner" jsonschema:"Repository owner."`
	Repo      string `json:"repo" jsonschema:"Repository name."`
	Branch    string `json:"branch,omitempty" jsonschema:"Branch or ref to list. Falls back to conventional branches when missing."`
	Recursive bool   `json:"recursive,omitempty" jsonschema:"List the full tree instead of the top level."`
}

var SearchPackages = &mcp.Tool{
	Name: "search_packages",
	Description: `Search the package registry.

Returns name, description, and version metadata for matching packages.`,
}

type SearchPackagesParams struct {
	Query string `json:"query" jsonschema:"The search query."`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum results to return. Defaults to 30."`
}

var ViewPackage = &mcp.Tool{
	Name: "view_package",
	Description: `Show registry metadata for one package.

Request specific fields (e.g. repository.url, dependencies) to keep the
payload small.`,
}

type ViewPackageParams struct {
	Name    string   `json:"name" jsonschema:"Package name."`
	Version string   `json:"version,omitempty" jsonschema:"Specific version. Defaults to latest."`
	Fields  []string `json:"fields,omitempty" jsonschema:"Metadata fields to select, e.g. repository.url."`
}
