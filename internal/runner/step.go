package runner

import "stackup/internal/command"

// Step is one ordered unit of work in the setup sequence.
//
// A step's work is described by its fields, evaluated in order when the
// step runs:
//   - Condition, when set, gates the rest of the step. A false result
//     makes the step a no-op success, reported as skipped.
//   - Direct, when set, is a synchronous filesystem action.
//   - Command, when set, is a single external command.
//   - Choice, when set, asks the user to pick among options, each mapping
//     to zero or more external commands.
//
// The sequence is built once at startup (see the steps package), consumed
// linearly, and discarded at process exit.
type Step struct {
	// Title is the human-readable label reported for this step.
	Title string

	// Condition gates the step. When it returns false the step is
	// reported as skipped and nothing else runs. An error is a step
	// failure.
	Condition func() (bool, error)

	// Direct is a synchronous filesystem action. Errors from the I/O
	// layer propagate unmasked as the step's failure cause.
	Direct func() error

	// Command is an external command run with inherited standard streams.
	Command *command.Command

	// Choice is an interactive selection among labeled options.
	Choice *Choice
}

// Choice is the interactive part of a choice step.
type Choice struct {
	// Prompt is the question shown to the user.
	Prompt string

	// Options are the selectable alternatives. The first option is the
	// safe default: selecting it (or defaulting to it in non-interactive
	// mode) performs no commands.
	Options []Option
}

// Option is one selectable alternative of a [Choice].
type Option struct {
	// Label is the text shown in the selection list.
	Label string

	// Commands are executed in order when this option is selected.
	// An empty list means the option skips the step.
	Commands []command.Command
}

// Labels returns the option labels in declared order, for the chooser.
func (c *Choice) Labels() []string {
	labels := make([]string, len(c.Options))
	for i, opt := range c.Options {
		labels[i] = opt.Label
	}
	return labels
}
