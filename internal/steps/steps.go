// Package steps defines the hardcoded setup sequence for a Laravel-style
// project.
//
// The sequence is built once from the configuration and handed to the
// runner. Order matters: the environment file must exist before the key
// check, and the key must exist before anything touches the database.
package steps

import (
	"os"
	"path/filepath"

	"stackup/internal/command"
	"stackup/internal/config"
	"stackup/internal/envfile"
	"stackup/internal/runner"
)

// Sequence builds the ordered setup steps from the configuration.
//
// Choice steps list the skip option first, so defaulting (non-interactive
// mode) is always the safe path: with every choice skipped, only the
// environment file, the application key and the storage link are touched.
func Sequence(cfg *config.Config) []runner.Step {
	envPath := filepath.Join(cfg.ProjectDir, cfg.EnvFile)
	templatePath := filepath.Join(cfg.ProjectDir, cfg.EnvTemplate)
	linkPath := filepath.Join(cfg.ProjectDir, cfg.StorageLink)

	php := cfg.Tools.PHP
	composer := cfg.Tools.Composer
	npm := cfg.Tools.NPM

	return []runner.Step{
		{
			Title: "Install PHP dependencies",
			Choice: &runner.Choice{
				Prompt: "Install composer dependencies?",
				Options: []runner.Option{
					{Label: "Skip"},
					{Label: "Install", Commands: []command.Command{
						{Name: composer, Args: []string{"install"}},
					}},
				},
			},
		},
		{
			Title: "Provision environment file",
			Direct: func() error {
				_, err := envfile.Provision(templatePath, envPath)
				return err
			},
		},
		{
			Title: "Generate application key",
			Condition: func() (bool, error) {
				has, err := envfile.HasAppKey(envPath)
				return !has, err
			},
			Command: &command.Command{Name: php, Args: []string{"artisan", "key:generate", "--ansi"}},
		},
		{
			Title: "Recreate storage link",
			// A stale link from a previous checkout makes artisan
			// refuse to relink, so remove it first. Absence is fine.
			Direct: func() error {
				return os.RemoveAll(linkPath)
			},
			Command: &command.Command{Name: php, Args: []string{"artisan", "storage:link"}},
		},
		{
			Title: "Run database migrations",
			Choice: &runner.Choice{
				Prompt: "Run database migrations?",
				Options: []runner.Option{
					{Label: "Skip"},
					{Label: "Migrate", Commands: []command.Command{
						{Name: php, Args: []string{"artisan", "migrate", "--force"}},
					}},
					{Label: "Migrate and seed", Commands: []command.Command{
						{Name: php, Args: []string{"artisan", "migrate", "--seed", "--force"}},
					}},
				},
			},
		},
		{
			Title: "Build frontend assets",
			Choice: &runner.Choice{
				Prompt: "Install and build frontend assets?",
				Options: []runner.Option{
					{Label: "Skip"},
					{Label: "Install and build", Commands: []command.Command{
						{Name: npm, Args: []string{"install"}},
						{Name: npm, Args: []string{"run", "build"}},
					}},
				},
			},
		},
		{
			Title: "Warm production caches",
			Choice: &runner.Choice{
				Prompt: "Cache configuration, routes and views?",
				Options: []runner.Option{
					{Label: "Skip"},
					{Label: "Cache everything", Commands: []command.Command{
						{Name: php, Args: []string{"artisan", "config:cache"}},
						{Name: php, Args: []string{"artisan", "route:cache"}},
						{Name: php, Args: []string{"artisan", "view:cache"}},
					}},
				},
			},
		},
	}
}
