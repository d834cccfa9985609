// Package envfile inspects and provisions the project's environment file.
//
// Three concerns live here:
//   - [Provision] copies the template (.env.example) to the live .env when
//     the live file is absent, and is a no-op when it exists.
//   - [HasAppKey] checks whether the live file carries a non-empty APP_KEY,
//     which decides whether key generation runs.
//   - [Environment] and [IsProduction] read APP_ENV so the wizard can refuse
//     to run against a production-like environment.
//
// Key/value parsing uses gotenv, the same parser viper uses for .env files.
// The APP_KEY check is a line-level pattern match instead, so a commented-out
// or blank assignment is treated as missing.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/subosito/gotenv"
)

// appKeyPattern matches an uncommented APP_KEY assignment with a non-empty
// value at the start of a line.
var appKeyPattern = regexp.MustCompile(`(?m)^APP_KEY=\S+`)

// Provision copies the template file to livePath unless livePath already
// exists. It reports whether a copy was performed.
//
// A missing template is an error: without it the project cannot be
// provisioned, so the underlying I/O error is propagated unmasked.
func Provision(templatePath, livePath string) (copied bool, err error) {
	if _, err := os.Stat(livePath); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking %s: %w", livePath, err)
	}

	data, err := os.ReadFile(templatePath)
	if err != nil {
		return false, fmt.Errorf("reading template %s: %w", templatePath, err)
	}
	if err := os.WriteFile(livePath, data, 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", livePath, err)
	}
	return true, nil
}

// HasAppKey reports whether the environment file at path contains a
// non-empty APP_KEY assignment. A missing file is an error because the
// provisioning step runs first and should have created it.
func HasAppKey(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return appKeyPattern.Match(data), nil
}

// Environment returns the APP_ENV value from the environment file at path.
// A missing file yields an empty value and no error: there is nothing to
// inspect yet.
func Environment(path string) (string, error) {
	env, err := gotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return env["APP_ENV"], nil
}

// IsProduction reports whether the environment file at path declares a
// production-like APP_ENV. The comparison is case-insensitive against the
// provided environment names. The matched value is returned for reporting.
func IsProduction(path string, productionEnvs []string) (bool, string, error) {
	value, err := Environment(path)
	if err != nil {
		return false, "", err
	}
	for _, name := range productionEnvs {
		if strings.EqualFold(value, name) {
			return true, value, nil
		}
	}
	return false, value, nil
}
