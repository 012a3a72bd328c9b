package domain

// CodeSearchRequest queries the hosting CLI's code search.
type CodeSearchRequest struct {
	Query     string `json:"query"`
	Language  string `json:"language,omitempty"`
	Owner     string `json:"owner,omitempty"`
	Repo      string `json:"repo,omitempty"`
	Extension string `json:"extension,omitempty"`
	Filename  string `json:"filename,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// RepoSearchRequest queries the hosting CLI's repository search.
type RepoSearchRequest struct {
	Query    string `json:"query"`
	Owner    string `json:"owner,omitempty"`
	Language string `json:"language,omitempty"`
	Topic    string `json:"topic,omitempty"`
	Stars    string `json:"stars,omitempty"`
	Sort     string `json:"sort,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

// FileContentRequest fetches one file at a ref, with branch fallback.
type FileContentRequest struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Path   string `json:"path"`
	Branch string `json:"branch,omitempty"`
}

// RepoStructureRequest lists a repository tree at a ref, with branch fallback.
type RepoStructureRequest struct {
	Owner     string `json:"owner"`
	Repo      string `json:"repo"`
	Branch    string `json:"branch,omitempty"`
	Recursive bool   `json:"recursive,omitempty"`
}

// PackageSearchRequest queries the registry CLI's search.
type PackageSearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// PackageViewRequest shows registry metadata for one package.
type PackageViewRequest struct {
	Name    string   `json:"name"`
	Version string   `json:"version,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}
