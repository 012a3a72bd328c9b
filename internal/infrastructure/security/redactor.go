// Package security scrubs secrets from outbound tool text using a
// regex rule table loaded from YAML.
package security

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/codescout/assets"
	"github.com/doeshing/codescout/internal/ports"
)

// SecretPattern describes one regex-based redaction rule.
type SecretPattern struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// RulesFile is the YAML schema root.
type RulesFile struct {
	Rules struct {
		SecretPatterns []SecretPattern `yaml:"secret_patterns"`
	} `yaml:"rules"`
}

type compiledPattern struct {
	re          *regexp.Regexp
	replacement string
}

// Redactor implements the ports.Redactor port.
type Redactor struct {
	patterns []compiledPattern
}

// NewRedactor loads rules from path, falling back to the embedded defaults
// when the file is missing or lists no patterns.
func NewRedactor(path string) (*Redactor, error) {
	rules, err := loadRules(path)
	if err != nil {
		return nil, err
	}

	var compiled []compiledPattern
	for _, pattern := range rules.Rules.SecretPatterns {
		re, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			return nil, fmt.Errorf("redaction rule %q: %w", pattern.Name, err)
		}
		replacement := pattern.Replacement
		if replacement == "" {
			replacement = "[REDACTED:" + pattern.Name + "]"
		}
		compiled = append(compiled, compiledPattern{re: re, replacement: replacement})
	}

	return &Redactor{patterns: compiled}, nil
}

// Redact implements ports.Redactor.
func (r *Redactor) Redact(text string) string {
	for _, pattern := range r.patterns {
		text = pattern.re.ReplaceAllString(text, pattern.replacement)
	}
	return text
}

func loadRules(path string) (RulesFile, error) {
	var rules RulesFile
	data, err := os.ReadFile(path)
	if err != nil {
		data = assets.DefaultRedactionYAML
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return RulesFile{}, err
	}
	if len(rules.Rules.SecretPatterns) == 0 {
		if err := yaml.Unmarshal(assets.DefaultRedactionYAML, &rules); err != nil {
			return RulesFile{}, err
		}
	}
	return rules, nil
}

// NoopRedactor passes text through unchanged. Used when redaction is
// disabled in config.
type NoopRedactor struct{}

// Redact implements ports.Redactor.
func (NoopRedactor) Redact(text string) string { return text }

var (
	_ ports.Redactor = (*Redactor)(nil)
	_ ports.Redactor = NoopRedactor{}
)
