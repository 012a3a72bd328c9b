package classify

import (
	"testing"

	"github.com/doeshing/codescout/internal/domain"
)

func TestHeuristicClassification(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.Classification
	}{
		{"404 Not Found", domain.ClassNotFound},
		{"no commit found for ref feature-x", domain.ClassNotFound},
		{"403 Forbidden", domain.ClassForbidden},
		{"HTTP 403: access blocked", domain.ClassForbidden},
		{"API rate limit exceeded (429)", domain.ClassRateLimited},
		{"connection timed out", domain.ClassTimeout},
		{"request timeout after 30s", domain.ClassTimeout},
		{"malformed output from gh api: <html>", domain.ClassMalformedOutput},
		{"weird upstream glitch", domain.ClassUnknown},
		{"", domain.ClassUnknown},
	}

	for _, test := range tests {
		if got := ClassifyText(test.raw); got != test.want {
			t.Errorf("ClassifyText(%q) = %q, want %q", test.raw, got, test.want)
		}
	}
}

// Categories overlap in vocabulary; the rule order decides.
func TestHeuristicOrderingOnOverlap(t *testing.T) {
	// "not found" outranks the 403 fragment.
	if got := ClassifyText("403: resource not found"); got != domain.ClassNotFound {
		t.Fatalf("got %q, want not_found", got)
	}
	// forbidden outranks rate limit vocabulary.
	if got := ClassifyText("403 forbidden: secondary rate limit"); got != domain.ClassForbidden {
		t.Fatalf("got %q, want forbidden", got)
	}
}

func TestHeuristicIsCaseInsensitive(t *testing.T) {
	if got := ClassifyText("RATE LIMIT reached"); got != domain.ClassRateLimited {
		t.Fatalf("got %q, want rate_limited", got)
	}
}

func TestExitCodeClassifierPrefersStructuredSignals(t *testing.T) {
	c := NewExitCodeClassifier()

	tests := []struct {
		name    string
		outcome domain.CommandOutcome
		want    domain.Classification
	}{
		{
			name:    "timeout flag wins over text",
			outcome: domain.CommandOutcome{TimedOut: true, Result: domain.ErrorResult("404 not found")},
			want:    domain.ClassTimeout,
		},
		{
			name:    "malformed flag",
			outcome: domain.CommandOutcome{Malformed: true, Result: domain.ErrorResult("gibberish")},
			want:    domain.ClassMalformedOutput,
		},
		{
			name:    "auth exit code",
			outcome: domain.CommandOutcome{ExitCode: 4, Result: domain.ErrorResult("To get started with GitHub CLI, please run: gh auth login")},
			want:    domain.ClassForbidden,
		},
		{
			name:    "falls back to text heuristics",
			outcome: domain.CommandOutcome{ExitCode: 1, Result: domain.ErrorResult("404 Not Found")},
			want:    domain.ClassNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := c.Classify(test.outcome); got != test.want {
				t.Fatalf("got %q, want %q", got, test.want)
			}
		})
	}
}
