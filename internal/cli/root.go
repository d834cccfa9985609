// Package cli implements the stackup command-line interface.
//
// The root command runs the setup wizard; `check` is a read-only
// environment doctor. Commands are built from an [App] carrying the
// injectable capabilities (executor, chooser, output writer) so tests can
// drive the full command path without spawning processes or a terminal.
//
// Commands never call os.Exit mid-stack. Failures surface as [*ExitError]
// values returned from RunE; [RunWithArgs] extracts the code and [Execute]
// performs the actual exit.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"stackup/internal/command"
	"stackup/internal/logger"
	"stackup/internal/prompt"
)

// App carries the dependencies commands run with.
//
// Zero fields fall back to production implementations: [command.ExecExecutor]
// for Exec, [prompt.TerminalChooser] for Chooser, os.Stdout for Out.
type App struct {
	// Exec runs external commands.
	Exec command.Executor

	// Chooser resolves choice steps. Overridden by --yes, which answers
	// every choice with its first (skip) option.
	Chooser prompt.Chooser

	// Out receives all wizard output. The output of external commands
	// goes to the process's own streams, not here.
	Out io.Writer
}

// NewApp creates an [App] with production defaults.
func NewApp() *App {
	return &App{
		Exec:    command.NewExecExecutor(),
		Chooser: prompt.TerminalChooser{},
		Out:     os.Stdout,
	}
}

func (a *App) out() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

func (a *App) exec() command.Executor {
	if a.Exec != nil {
		return a.Exec
	}
	return command.NewExecExecutor()
}

// ExecuteResult is the outcome of a command run, carrying the exit code the
// process should terminate with.
type ExecuteResult struct {
	ExitCode int
	Err      error
}

// Execute runs the CLI with os.Args and terminates the process with the
// resulting exit code. This is the only place the process exits.
func Execute() {
	result := RunWithArgs(NewApp(), os.Args[1:])
	os.Exit(result.ExitCode)
}

// RunWithArgs runs the CLI against the given app and arguments and returns
// the outcome instead of exiting, so the failure path is testable.
func RunWithArgs(app *App, args []string) ExecuteResult {
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(app.out())
	root.SetErr(app.out())

	if err := root.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return ExecuteResult{}
}

// rootOptions holds the persistent flag values shared by subcommands.
type rootOptions struct {
	dir   string
	yes   bool
	debug bool
}

// NewRootCommand builds the command tree. Running the root with no
// subcommand starts the wizard.
func NewRootCommand(app *App) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "stackup",
		Short: "Interactive setup wizard for Laravel-style projects",
		Long: `stackup walks a fresh checkout through its setup sequence:
composer dependencies, environment file, application key, storage link,
database migrations, frontend assets and production caches.

Each step either performs a filesystem action or shells out to the
project toolchain. The first failure aborts the whole run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd, app, opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.dir, "dir", "d", ".", "project directory")
	root.PersistentFlags().BoolVarP(&opts.yes, "yes", "y", false, "non-interactive: answer every choice with its skip option")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(newSetupCommand(app, opts))
	root.AddCommand(newCheckCommand(app, opts))

	return root
}

// chooserFor returns the chooser a run should use: canned skip answers in
// non-interactive mode, the app's chooser otherwise.
func chooserFor(app *App, opts *rootOptions) prompt.Chooser {
	if opts.yes {
		return &prompt.StaticChooser{}
	}
	if app.Chooser != nil {
		return app.Chooser
	}
	return prompt.TerminalChooser{}
}
