// Package command handles spawning external toolchain processes.
//
// The wizard delegates all real work (composer, php artisan, npm) to external
// commands. This package defines [Command], the [Executor] interface used to
// run them, and [ExecExecutor], the production implementation built on
// os/exec with inherited standard streams so the child's own output reaches
// the user directly.
//
// For testing, use [MockExecutor] which records invocations without spawning
// real processes.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command describes a single external command invocation.
type Command struct {
	// Name is the executable to run, resolved via PATH unless absolute.
	Name string

	// Args are the arguments passed to the executable.
	Args []string

	// Dir is the working directory for the process. Empty means the
	// current process's working directory.
	Dir string
}

// String returns the command in shell-like form, for labels and logs.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Executor is the interface for running external commands.
//
// Run blocks until the command exits. A nil return means exit status zero.
// A started command that exits non-zero is reported as an [*ExitError];
// spawn-level failures (executable not found, permission denied) are
// returned wrapped from os/exec.
type Executor interface {
	Run(ctx context.Context, cmd Command) error
}

// ExitError reports a command that started but exited with a non-zero status.
type ExitError struct {
	Cmd  Command
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: exit status %d", e.Cmd, e.Code)
}

// ExecExecutor runs commands with os/exec, wiring the child's stdin, stdout
// and stderr to this process's streams unless overridden. The zero value is
// not usable; create instances with [NewExecExecutor].
type ExecExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecExecutor creates an [ExecExecutor] that inherits the current
// process's standard streams.
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes the command and waits for it to exit.
//
// Exit status zero returns nil. A non-zero exit is returned as an
// [*ExitError] carrying the exit code so callers can propagate it as the
// process exit status. Failures to start at all are wrapped and returned
// as-is from the I/O layer.
func (e *ExecExecutor) Run(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = e.Stdin
	c.Stdout = e.Stdout
	c.Stderr = e.Stderr

	err := c.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Cmd: cmd, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("starting %s: %w", cmd.Name, err)
}
