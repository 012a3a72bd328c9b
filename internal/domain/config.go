package domain

// Config mirrors ~/.codescout/config.yaml.
type Config struct {
	ConfigFormatVersion string             `yaml:"config_format_version"`
	Executables         ExecutableSettings `yaml:"executables"`
	Cache               CacheSettings      `yaml:"cache"`
	Branches            BranchSettings     `yaml:"branches"`
	Redaction           RedactionSettings  `yaml:"redaction"`
	Audit               AuditSettings      `yaml:"audit"`
}

// ExecutableSettings names the wrapped CLIs and bounds their runtime.
type ExecutableSettings struct {
	HostingCLI     string `yaml:"hosting_cli"`
	RegistryCLI    string `yaml:"registry_cli"`
	TimeoutSeconds int    `yaml:"timeout"`
}

// CacheSettings control the in-memory result cache.
type CacheSettings struct {
	KeyVersion           string         `yaml:"key_version"`
	MaxEntries           int            `yaml:"max_entries"`
	SweepIntervalSecond  int            `yaml:"sweep_interval"`
	DefaultTTLSeconds    int            `yaml:"default_ttl"`
	TTLSecondsByCategory map[string]int `yaml:"ttl_by_category"`
}

// BranchSettings hold the convention list tried when a requested branch may
// not exist. Values are policy, not algorithmic necessity.
type BranchSettings struct {
	Candidates []string `yaml:"candidates"`
}

// RedactionSettings toggle secret scrubbing of tool output.
type RedactionSettings struct {
	Enabled   bool   `yaml:"enabled"`
	RulesFile string `yaml:"rules_file"`
}

// AuditSettings toggle the sqlite invocation log.
type AuditSettings struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}
