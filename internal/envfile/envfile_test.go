package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestProvision_CopiesTemplateWhenLiveAbsent(t *testing.T) {
	dir := t.TempDir()
	template := filepath.Join(dir, ".env.example")
	live := filepath.Join(dir, ".env")
	writeFile(t, template, "APP_ENV=local\nAPP_KEY=\n")

	copied, err := Provision(template, live)

	require.NoError(t, err)
	assert.True(t, copied)

	data, err := os.ReadFile(live)
	require.NoError(t, err)
	assert.Equal(t, "APP_ENV=local\nAPP_KEY=\n", string(data))
}

func TestProvision_NoOpWhenLiveExists(t *testing.T) {
	dir := t.TempDir()
	template := filepath.Join(dir, ".env.example")
	live := filepath.Join(dir, ".env")
	writeFile(t, template, "APP_ENV=local\n")
	writeFile(t, live, "APP_ENV=testing\nAPP_KEY=base64:abc\n")

	copied, err := Provision(template, live)

	require.NoError(t, err)
	assert.False(t, copied)

	// The existing file is untouched.
	data, err := os.ReadFile(live)
	require.NoError(t, err)
	assert.Equal(t, "APP_ENV=testing\nAPP_KEY=base64:abc\n", string(data))
}

func TestProvision_MissingTemplateIsAnError(t *testing.T) {
	dir := t.TempDir()

	_, err := Provision(filepath.Join(dir, ".env.example"), filepath.Join(dir, ".env"))

	require.Error(t, err)
	assert.ErrorContains(t, err, ".env.example")
}

func TestHasAppKey(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "key set",
			content: "APP_NAME=Demo\nAPP_KEY=base64:0123456789abcdef\n",
			want:    true,
		},
		{
			name:    "key empty",
			content: "APP_NAME=Demo\nAPP_KEY=\n",
			want:    false,
		},
		{
			name:    "key absent",
			content: "APP_NAME=Demo\n",
			want:    false,
		},
		{
			name:    "commented out key does not count",
			content: "#APP_KEY=base64:abc\n",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".env")
			writeFile(t, path, tt.content)

			got, err := HasAppKey(path)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasAppKey_MissingFileIsAnError(t *testing.T) {
	_, err := HasAppKey(filepath.Join(t.TempDir(), ".env"))

	require.Error(t, err)
}

func TestEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "APP_NAME=Demo\nAPP_ENV=staging\n")

	value, err := Environment(path)

	require.NoError(t, err)
	assert.Equal(t, "staging", value)
}

func TestEnvironment_MissingFileYieldsEmpty(t *testing.T) {
	value, err := Environment(filepath.Join(t.TempDir(), ".env"))

	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestIsProduction(t *testing.T) {
	productionEnvs := []string{"production", "prod"}

	tests := []struct {
		name    string
		content string
		want    bool
		wantEnv string
	}{
		{
			name:    "production",
			content: "APP_ENV=production\n",
			want:    true,
			wantEnv: "production",
		},
		{
			name:    "case insensitive",
			content: "APP_ENV=Production\n",
			want:    true,
			wantEnv: "Production",
		},
		{
			name:    "short alias",
			content: "APP_ENV=prod\n",
			want:    true,
			wantEnv: "prod",
		},
		{
			name:    "local is fine",
			content: "APP_ENV=local\n",
			want:    false,
			wantEnv: "local",
		},
		{
			name:    "unset is fine",
			content: "APP_NAME=Demo\n",
			want:    false,
			wantEnv: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".env")
			writeFile(t, path, tt.content)

			got, env, err := IsProduction(path, productionEnvs)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantEnv, env)
		})
	}
}

func TestIsProduction_MissingFileIsNotProduction(t *testing.T) {
	got, env, err := IsProduction(filepath.Join(t.TempDir(), ".env"), []string{"production"})

	require.NoError(t, err)
	assert.False(t, got)
	assert.Empty(t, env)
}
