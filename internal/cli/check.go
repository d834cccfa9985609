package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"stackup/internal/config"
	"stackup/internal/envfile"
	"stackup/internal/ui"
)

func newCheckCommand(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Inspect the project environment without changing anything",
		Long: `Report the state the wizard would find: whether the environment file
exists, the APP_ENV value, whether an application key is set, and whether
the storage link is in place.

Exits non-zero when a production-like APP_ENV is detected, the same
condition that makes setup refuse to run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(app, opts)
		},
	}
}

func runCheck(app *App, opts *rootOptions) error {
	out := app.out()

	cfg, err := config.NewLoader().Load(opts.dir)
	if err != nil {
		ui.Abort(out, err.Error())
		return NewExitError(1)
	}

	envPath := filepath.Join(cfg.ProjectDir, cfg.EnvFile)

	envExists := true
	if _, err := os.Stat(envPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			ui.Abort(out, err.Error())
			return NewExitError(1)
		}
		envExists = false
	}

	if envExists {
		fmt.Fprintf(out, "env file:     %s\n", cfg.EnvFile)
	} else {
		fmt.Fprintf(out, "env file:     %s (missing, will be provisioned from %s)\n", cfg.EnvFile, cfg.EnvTemplate)
	}

	prod, envName, err := envfile.IsProduction(envPath, cfg.ProductionEnvs)
	if err != nil {
		ui.Abort(out, err.Error())
		return NewExitError(1)
	}
	if envName == "" {
		envName = "(unset)"
	}
	fmt.Fprintf(out, "APP_ENV:      %s\n", envName)

	if envExists {
		hasKey, err := envfile.HasAppKey(envPath)
		if err != nil {
			ui.Abort(out, err.Error())
			return NewExitError(1)
		}
		if hasKey {
			fmt.Fprintf(out, "APP_KEY:      set\n")
		} else {
			fmt.Fprintf(out, "APP_KEY:      empty (setup will generate one)\n")
		}
	} else {
		fmt.Fprintf(out, "APP_KEY:      (no env file)\n")
	}

	linkPath := filepath.Join(cfg.ProjectDir, cfg.StorageLink)
	if _, err := os.Lstat(linkPath); err == nil {
		fmt.Fprintf(out, "storage link: present\n")
	} else {
		fmt.Fprintf(out, "storage link: missing\n")
	}

	if prod {
		ui.Abort(out, "production environment detected; setup will refuse to run")
		return NewExitError(1)
	}
	return nil
}
