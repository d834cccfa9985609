package steps

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackup/internal/command"
	"stackup/internal/config"
	"stackup/internal/prompt"
	"stackup/internal/runner"
)

const templateEnv = "APP_NAME=Demo\nAPP_ENV=local\nAPP_KEY=\nDB_CONNECTION=sqlite\n"

// nopReporter discards progress notifications.
type nopReporter struct{}

func (nopReporter) StepStart(int, int, string)         {}
func (nopReporter) StepDone(int, int, string)          {}
func (nopReporter) StepSkipped(int, int, string)       {}
func (nopReporter) StepFailed(int, int, string, error) {}

func newProject(t *testing.T) (string, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ProjectDir = dir
	return dir, cfg
}

func run(t *testing.T, cfg *config.Config, exec *command.MockExecutor, chooser prompt.Chooser) error {
	t.Helper()
	r := runner.New(runner.Config{WorkingDir: cfg.ProjectDir}, exec, chooser, nopReporter{})
	return r.Run(context.Background(), Sequence(cfg))
}

func TestSequence_AllChoicesSkipped(t *testing.T) {
	dir, cfg := newProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.example"), []byte(templateEnv), 0o644))

	exec := &command.MockExecutor{}
	err := run(t, cfg, exec, &prompt.StaticChooser{})

	require.NoError(t, err)

	// The template was copied to the live env file.
	data, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, templateEnv, string(data))

	// With every choice skipped, exactly the key generation and the
	// storage link ran: no composer, migrate, build or cache commands.
	assert.Equal(t, []string{
		"php artisan key:generate --ansi",
		"php artisan storage:link",
	}, exec.Strings())
}

func TestSequence_ExistingEnvWithKeyIsLeftAlone(t *testing.T) {
	dir, cfg := newProject(t)
	live := "APP_NAME=Demo\nAPP_ENV=local\nAPP_KEY=base64:0123456789abcdef\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.example"), []byte(templateEnv), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(live), 0o644))

	exec := &command.MockExecutor{}
	err := run(t, cfg, exec, &prompt.StaticChooser{})

	require.NoError(t, err)

	// Provisioning was a no-op and key generation was skipped.
	data, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, live, string(data))
	assert.Equal(t, []string{"php artisan storage:link"}, exec.Strings())
}

func TestSequence_MigrateAndSeed(t *testing.T) {
	dir, cfg := newProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.example"), []byte(templateEnv), 0o644))

	exec := &command.MockExecutor{}
	chooser := &prompt.StaticChooser{
		Answers: map[string]string{"Run database migrations?": "Migrate and seed"},
	}
	err := run(t, cfg, exec, chooser)

	require.NoError(t, err)
	assert.Contains(t, exec.Strings(), "php artisan migrate --seed --force")
	assert.NotContains(t, exec.Strings(), "php artisan migrate --force")
}

func TestSequence_FrontendInstallThenBuild(t *testing.T) {
	dir, cfg := newProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.example"), []byte(templateEnv), 0o644))

	exec := &command.MockExecutor{}
	chooser := &prompt.StaticChooser{
		Answers: map[string]string{"Install and build frontend assets?": "Install and build"},
	}
	err := run(t, cfg, exec, chooser)

	require.NoError(t, err)
	invocations := exec.Strings()
	require.Contains(t, invocations, "npm install")
	require.Contains(t, invocations, "npm run build")
	assert.Less(t,
		indexOf(invocations, "npm install"),
		indexOf(invocations, "npm run build"),
		"install must run before build")
}

func TestSequence_CacheWarming(t *testing.T) {
	dir, cfg := newProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.example"), []byte(templateEnv), 0o644))

	exec := &command.MockExecutor{}
	chooser := &prompt.StaticChooser{
		Answers: map[string]string{"Cache configuration, routes and views?": "Cache everything"},
	}
	err := run(t, cfg, exec, chooser)

	require.NoError(t, err)
	invocations := exec.Strings()
	assert.Contains(t, invocations, "php artisan config:cache")
	assert.Contains(t, invocations, "php artisan route:cache")
	assert.Contains(t, invocations, "php artisan view:cache")
}

func TestSequence_StorageLinkIsRecreated(t *testing.T) {
	dir, cfg := newProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.example"), []byte(templateEnv), 0o644))

	// A stale link target left over from a previous checkout.
	stale := filepath.Join(dir, "public", "storage")
	require.NoError(t, os.MkdirAll(stale, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(stale, "old.txt"), []byte("stale"), 0o644))

	exec := &command.MockExecutor{}
	err := run(t, cfg, exec, &prompt.StaticChooser{})

	require.NoError(t, err)
	_, statErr := os.Stat(stale)
	assert.True(t, os.IsNotExist(statErr), "stale storage link should be removed")
	assert.Contains(t, exec.Strings(), "php artisan storage:link")
}

func TestSequence_MissingTemplateFailsProvisioning(t *testing.T) {
	_, cfg := newProject(t)

	exec := &command.MockExecutor{}
	err := run(t, cfg, exec, &prompt.StaticChooser{})

	var failure *runner.StepFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, 2, failure.Index)
	assert.Equal(t, "Provision environment file", failure.Title)

	// Nothing ran: the composer choice was skipped and the run stopped
	// before any command step.
	assert.Empty(t, exec.Invocations)
}

func TestSequence_TitlesAndOrder(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ProjectDir = t.TempDir()

	sequence := Sequence(cfg)

	titles := make([]string, len(sequence))
	for i, step := range sequence {
		titles[i] = step.Title
	}
	assert.Equal(t, []string{
		"Install PHP dependencies",
		"Provision environment file",
		"Generate application key",
		"Recreate storage link",
		"Run database migrations",
		"Build frontend assets",
		"Warm production caches",
	}, titles)
}

func TestSequence_ChoiceStepsSkipFirst(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ProjectDir = t.TempDir()

	for _, step := range Sequence(cfg) {
		if step.Choice == nil {
			continue
		}
		require.NotEmpty(t, step.Choice.Options, step.Title)
		assert.Empty(t, step.Choice.Options[0].Commands,
			"%s: first option must be the safe skip", step.Title)
	}
}

func indexOf(values []string, want string) int {
	for i, v := range values {
		if v == want {
			return i
		}
	}
	return -1
}
