package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"stackup/internal/config"
	"stackup/internal/envfile"
	"stackup/internal/logger"
	"stackup/internal/runner"
	"stackup/internal/steps"
	"stackup/internal/ui"
)

func newSetupCommand(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Run the setup wizard",
		Long: `Run the full setup sequence for the project:
  1. Install PHP dependencies    (choice: skip / install)
  2. Provision environment file  (.env from .env.example)
  3. Generate application key    (only when APP_KEY is empty)
  4. Recreate storage link
  5. Run database migrations     (choice: skip / migrate / migrate+seed)
  6. Build frontend assets       (choice: skip / install+build)
  7. Warm production caches      (choice: skip / cache everything)

The first failing step aborts the run. Already-completed steps are not
rolled back; fix the problem and run setup again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd, app, opts)
		},
	}
}

// runSetup drives the wizard: load config, refuse production environments,
// then hand the hardcoded sequence to the runner. It maps a step failure to
// an [*ExitError] carrying the failed command's exit code.
func runSetup(cmd *cobra.Command, app *App, opts *rootOptions) error {
	out := app.out()

	cfg, err := config.NewLoader().Load(opts.dir)
	if err != nil {
		ui.Abort(out, err.Error())
		return NewExitError(1)
	}

	ui.Banner(out, "stackup")
	ui.Tagline(out, "Let's get this project running.", cfg.Output.Typewriter && !opts.yes)

	// The production guard runs before any mutating step, regardless of
	// where environment handling sits in the sequence.
	envPath := filepath.Join(cfg.ProjectDir, cfg.EnvFile)
	prod, envName, err := envfile.IsProduction(envPath, cfg.ProductionEnvs)
	if err != nil {
		ui.Abort(out, err.Error())
		return NewExitError(1)
	}
	if prod {
		ui.Abort(out, fmt.Sprintf("APP_ENV is %q: refusing to run setup against a production environment", envName))
		return NewExitError(1)
	}

	reporter := ui.NewConsoleReporter(out)
	reporter.Quotes = cfg.Output.Quotes

	r := runner.New(
		runner.Config{WorkingDir: cfg.ProjectDir},
		app.exec(),
		chooserFor(app, opts),
		reporter,
	)

	logger.Debug("running setup in %s\n", cfg.ProjectDir)
	if err := r.Run(cmd.Context(), steps.Sequence(cfg)); err != nil {
		var failure *runner.StepFailure
		if errors.As(err, &failure) {
			return NewExitError(failure.ExitCode())
		}
		return NewExitError(1)
	}

	ui.Success(out, "Setup complete. Happy building!")
	return nil
}
