package domain

import "time"

// Executable identifies one of the two wrapped CLIs.
type Executable string

const (
	// ExecutableHosting is the git-hosting CLI (gh).
	ExecutableHosting Executable = "gh"
	// ExecutableRegistry is the package-registry CLI (npm).
	ExecutableRegistry Executable = "npm"
)

// CommandSpec describes one external invocation. Arguments are always passed
// as a vector and never interpolated into a shell string.
type CommandSpec struct {
	Executable Executable
	Subcommand string
	Args       []string
	Timeout    time.Duration
}

// Argv returns the full argument vector after the executable name.
func (s CommandSpec) Argv() []string {
	if s.Subcommand == "" {
		return s.Args
	}
	return append([]string{s.Subcommand}, s.Args...)
}

// CommandOutcome is the gateway's view of a finished invocation. The Result
// is what flows upward; the exit code is kept alongside so a classifier can
// prefer structured information over text heuristics.
type CommandOutcome struct {
	Result   Result
	ExitCode int
	// TimedOut is set when the context deadline killed the process.
	TimedOut bool
	// Malformed is set when stdout did not carry the expected envelope.
	Malformed bool
	Duration  time.Duration
}
