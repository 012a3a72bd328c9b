package domain

// Cache key categories. The category is the namespace prefix that selects
// the TTL policy for an operation type.
const (
	CategoryCodeSearch    = "gh-search-code"
	CategoryRepoSearch    = "gh-search-repos"
	CategoryFileContent   = "gh-file-content"
	CategoryRepoStructure = "gh-repo-structure"
	CategoryPackageSearch = "npm-search"
	CategoryPackageView   = "npm-view"
)

// Default TTLs in seconds, by category. Volatile searches expire quickly;
// registry metadata is stable for hours; everything else gets a
// conservative day.
const (
	DefaultTTLCodeSearch    = 3600
	DefaultTTLRepoSearch    = 7200
	DefaultTTLPackageSearch = 14400
	DefaultTTLPackageView   = 14400
	DefaultTTLFallback      = 86400
)

// DefaultBranchCandidates is the convention list tried after the requested
// branch, in order.
var DefaultBranchCandidates = []string{"main", "master", "develop", "trunk"}
