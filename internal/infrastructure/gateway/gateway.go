// Package gateway invokes the wrapped CLIs and normalizes their outcomes.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/doeshing/codescout/internal/domain"
	"github.com/doeshing/codescout/internal/ports"
)

// DefaultTimeout bounds invocations whose spec carries no timeout.
const DefaultTimeout = 30 * time.Second

// Gateway spawns external CLIs with an argument vector, enforces the
// per-invocation timeout, and wraps stdout/stderr into a Result. It never
// retries; retry policy belongs to the caller.
type Gateway struct {
	binaries map[domain.Executable]string
	timeout  time.Duration
}

// New builds a gateway from the executable settings. Empty binary names
// fall back to the executable's canonical name.
func New(settings domain.ExecutableSettings) *Gateway {
	binaries := map[domain.Executable]string{
		domain.ExecutableHosting:  settings.HostingCLI,
		domain.ExecutableRegistry: settings.RegistryCLI,
	}
	timeout := time.Duration(settings.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{binaries: binaries, timeout: timeout}
}

// Run implements ports.CommandRunner.
func (g *Gateway) Run(ctx context.Context, spec domain.CommandSpec) domain.CommandOutcome {
	timeout := spec.Timeout
	if timeout <= 0 {
		timeout = g.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	binary := g.binary(spec.Executable)
	cmd := exec.CommandContext(ctx, binary, spec.Argv()...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	outcome := domain.CommandOutcome{Duration: time.Since(start)}
	if state := cmd.ProcessState; state != nil {
		outcome.ExitCode = state.ExitCode()
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		outcome.TimedOut = true
		outcome.Result = domain.ErrorResult(fmt.Sprintf("%s %s timed out after %s", binary, spec.Subcommand, timeout))
		return outcome
	}

	if runErr != nil {
		outcome.Result = domain.ErrorResult(failureText(runErr, stdout.String(), stderr.String()))
		return outcome
	}

	payload, ok := parseEnvelope(stdout.Bytes())
	if !ok {
		outcome.Malformed = true
		outcome.Result = domain.ErrorResult(fmt.Sprintf("malformed output from %s %s: %s", binary, spec.Subcommand, clip(stdout.String(), 512)))
		return outcome
	}
	outcome.Result = domain.TextResult(payload)
	return outcome
}

func (g *Gateway) binary(exe domain.Executable) string {
	if name := g.binaries[exe]; name != "" {
		return name
	}
	return string(exe)
}

// parseEnvelope extracts the payload from the {"result": <string|JSON>}
// contract the wrapped CLIs print on success.
func parseEnvelope(stdout []byte) (string, bool) {
	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(stdout, &envelope); err != nil || envelope.Result == nil {
		return "", false
	}
	var text string
	if err := json.Unmarshal(envelope.Result, &text); err == nil {
		return text, true
	}
	return string(bytes.TrimSpace(envelope.Result)), true
}

func failureText(err error, stdout, stderr string) string {
	if text := strings.TrimSpace(stderr); text != "" {
		return text
	}
	if text := strings.TrimSpace(stdout); text != "" {
		return text
	}
	return err.Error()
}

func clip(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}

var _ ports.CommandRunner = (*Gateway)(nil)
