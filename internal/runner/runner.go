// Package runner executes an ordered list of setup steps with fail-fast
// semantics.
//
// The runner walks the step list strictly in declared order. Each step either
// performs a direct filesystem action, runs an external command, or asks the
// user to choose among alternatives that map to commands. The first failure
// stops the run: later steps never execute, nothing is retried, and nothing
// is rolled back — earlier steps' effects are left for the operator.
//
// Key types:
//   - [Step] describes one unit of work (see step.go)
//   - [Runner] drives the sequence with injected capabilities
//   - [StepFailure] is the typed result of a failed run
//
// The runner itself never terminates the process. Run returns nil on full
// success or a [*StepFailure]; the CLI layer converts that into the process
// exit status. All external I/O goes through injected interfaces
// ([command.Executor], [prompt.Chooser], [Reporter]) so the failure path is
// testable without spawning processes or reading a terminal.
package runner

import (
	"context"
	"errors"
	"fmt"

	"stackup/internal/command"
	"stackup/internal/prompt"
)

// Config carries the runner's explicit environment instead of relying on
// ambient process state.
type Config struct {
	// WorkingDir is the directory external commands run in. Commands that
	// set their own Dir keep it. Empty means the current directory.
	WorkingDir string
}

// Reporter receives step lifecycle notifications.
//
// Indexes are 1-based. For every step exactly one of Done, Skipped or Failed
// follows Start. Progress is monotonic: completion notifications arrive in
// index order with no gaps, and after a Failed no further notifications are
// sent.
type Reporter interface {
	StepStart(index, total int, title string)
	StepDone(index, total int, title string)
	StepSkipped(index, total int, title string)
	StepFailed(index, total int, title string, err error)
}

// StepFailure is the typed result of a failed run.
//
// It records which step failed and why, so the top-level driver can report
// the failing step's label and decide the process exit code without the
// runner calling os.Exit itself.
type StepFailure struct {
	// Index is the 1-based position of the failed step.
	Index int

	// Title is the failed step's label.
	Title string

	// Cause is the underlying error: an I/O error from a direct action,
	// a [*command.ExitError], or a spawn/prompt error.
	Cause error
}

func (e *StepFailure) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Title, e.Cause)
}

func (e *StepFailure) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit status the failure should produce: the
// failed command's own exit code when there is one, otherwise 1.
func (e *StepFailure) ExitCode() int {
	var exitErr *command.ExitError
	if errors.As(e.Cause, &exitErr) && exitErr.Code != 0 {
		return exitErr.Code
	}
	return 1
}

// Runner executes a step sequence.
//
// Create instances with [New]. The executor runs external commands, the
// chooser resolves choice steps, and the reporter receives progress
// notifications. All three are required.
type Runner struct {
	cfg      Config
	exec     command.Executor
	chooser  prompt.Chooser
	reporter Reporter
}

// New creates a [Runner] with the given configuration and capabilities.
func New(cfg Config, exec command.Executor, chooser prompt.Chooser, reporter Reporter) *Runner {
	return &Runner{
		cfg:      cfg,
		exec:     exec,
		chooser:  chooser,
		reporter: reporter,
	}
}

// Run executes the steps strictly in declared order.
//
// It returns nil when every step completed or was skipped, in which case the
// reported progress reached the total step count. On the first failure it
// returns a [*StepFailure] for that step; steps after it are never started.
func (r *Runner) Run(ctx context.Context, steps []Step) error {
	total := len(steps)

	for i, step := range steps {
		index := i + 1
		r.reporter.StepStart(index, total, step.Title)

		skipped, err := r.runStep(ctx, step)
		if err != nil {
			r.reporter.StepFailed(index, total, step.Title, err)
			return &StepFailure{Index: index, Title: step.Title, Cause: err}
		}
		if skipped {
			r.reporter.StepSkipped(index, total, step.Title)
		} else {
			r.reporter.StepDone(index, total, step.Title)
		}
	}
	return nil
}

// runStep performs one step. It reports skipped=true when a gate condition
// was false or the user picked an option with no commands; both count as
// success.
func (r *Runner) runStep(ctx context.Context, step Step) (skipped bool, err error) {
	if step.Condition != nil {
		ok, err := step.Condition()
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
	}

	if step.Direct != nil {
		if err := step.Direct(); err != nil {
			return false, err
		}
	}

	if step.Command != nil {
		if err := r.exec.Run(ctx, r.localize(*step.Command)); err != nil {
			return false, err
		}
	}

	if step.Choice != nil {
		selected, err := r.chooser.Choose(step.Choice.Prompt, step.Choice.Labels())
		if err != nil {
			return false, err
		}
		if selected < 0 || selected >= len(step.Choice.Options) {
			return false, fmt.Errorf("selection %d out of range for %q", selected, step.Choice.Prompt)
		}
		option := step.Choice.Options[selected]
		if len(option.Commands) == 0 {
			return true, nil
		}
		for _, cmd := range option.Commands {
			if err := r.exec.Run(ctx, r.localize(cmd)); err != nil {
				return false, err
			}
		}
	}

	return false, nil
}

// localize fills in the runner's working directory for commands that do not
// set their own.
func (r *Runner) localize(cmd command.Command) command.Command {
	if cmd.Dir == "" {
		cmd.Dir = r.cfg.WorkingDir
	}
	return cmd
}
