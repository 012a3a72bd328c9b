// Package classify maps heterogeneous command failures onto a small
// taxonomy. The wrapped CLIs give no structured error shapes, so the
// default strategy is substring heuristics over the failure text, with
// exit-code hints layered on top where available.
package classify

import (
	"strings"

	"github.com/doeshing/codescout/internal/domain"
	"github.com/doeshing/codescout/internal/ports"
)

// rule order matters: categories overlap in vocabulary, so NotFound must be
// checked before Forbidden, and Forbidden before RateLimited.
var rules = []struct {
	class     domain.Classification
	fragments []string
}{
	{domain.ClassNotFound, []string{"404", "not found", "no commit found"}},
	{domain.ClassForbidden, []string{"403", "forbidden"}},
	{domain.ClassRateLimited, []string{"rate limit", "429"}},
	{domain.ClassTimeout, []string{"timeout", "timed out"}},
	{domain.ClassMalformedOutput, []string{"malformed output"}},
}

// Heuristic classifies by ordered, case-insensitive substring matching.
// Pure and side-effect free.
type Heuristic struct{}

// Classify implements ports.Classifier.
func (Heuristic) Classify(outcome domain.CommandOutcome) domain.Classification {
	return ClassifyText(outcome.Result.Text())
}

// ClassifyText applies the heuristic rules to raw failure text.
func ClassifyText(raw string) domain.Classification {
	lower := strings.ToLower(raw)
	for _, rule := range rules {
		for _, fragment := range rule.fragments {
			if strings.Contains(lower, fragment) {
				return rule.class
			}
		}
	}
	return domain.ClassUnknown
}

// ExitCodeClassifier prefers structured signals recorded by the gateway
// (timeout flag, malformed flag, known exit codes) and falls back to text
// heuristics when those say nothing.
type ExitCodeClassifier struct {
	fallback Heuristic
}

// NewExitCodeClassifier returns the default classification strategy.
func NewExitCodeClassifier() *ExitCodeClassifier {
	return &ExitCodeClassifier{}
}

// Classify implements ports.Classifier.
func (c *ExitCodeClassifier) Classify(outcome domain.CommandOutcome) domain.Classification {
	if outcome.TimedOut {
		return domain.ClassTimeout
	}
	if outcome.Malformed {
		return domain.ClassMalformedOutput
	}
	// gh exits 4 when authentication is required.
	if outcome.ExitCode == 4 {
		return domain.ClassForbidden
	}
	return c.fallback.Classify(outcome)
}

var (
	_ ports.Classifier = Heuristic{}
	_ ports.Classifier = (*ExitCodeClassifier)(nil)
)
