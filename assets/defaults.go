package assets

import (
	_ "embed"
)

// DefaultRedactionYAML contains the embedded default secret-detection rules.
//
//go:embed defaults/redaction.yaml
var DefaultRedactionYAML []byte
