package command

import (
	"context"
	"strings"
)

// MockExecutor implements [Executor] for testing.
//
// It records every invocation in order and never spawns a real process.
// Failures are simulated by setting FailOn (non-zero exit) or SpawnErr
// (spawn-level failure).
type MockExecutor struct {
	// Invocations records all commands passed to Run, in order.
	Invocations []Command

	// FailOn makes Run return an [*ExitError] for any command whose
	// string form contains this substring. Empty means never fail.
	FailOn string

	// ExitCode is the exit code used when FailOn matches. Defaults to 1.
	ExitCode int

	// SpawnErr, when set, is returned for every command, simulating a
	// spawn-level failure such as a missing executable.
	SpawnErr error
}

func (m *MockExecutor) Run(ctx context.Context, cmd Command) error {
	m.Invocations = append(m.Invocations, cmd)

	if m.SpawnErr != nil {
		return m.SpawnErr
	}
	if m.FailOn != "" && strings.Contains(cmd.String(), m.FailOn) {
		code := m.ExitCode
		if code == 0 {
			code = 1
		}
		return &ExitError{Cmd: cmd, Code: code}
	}
	return nil
}

// Strings returns the recorded invocations in shell-like form, which keeps
// test assertions readable.
func (m *MockExecutor) Strings() []string {
	out := make([]string, len(m.Invocations))
	for i, c := range m.Invocations {
		out[i] = c.String()
	}
	return out
}
