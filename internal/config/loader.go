package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigName is the config file base name searched for in the project
// directory (stackup.yaml).
const ConfigName = "stackup"

// EnvPrefix is the environment variable prefix for overrides.
const EnvPrefix = "STACKUP"

// Loader loads configuration with Viper.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a [Loader] with defaults, environment binding and the
// config file search path registered.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("env_file", defaults.EnvFile)
	v.SetDefault("env_template", defaults.EnvTemplate)
	v.SetDefault("storage_link", defaults.StorageLink)
	v.SetDefault("production_envs", defaults.ProductionEnvs)
	v.SetDefault("tools.php", defaults.Tools.PHP)
	v.SetDefault("tools.composer", defaults.Tools.Composer)
	v.SetDefault("tools.npm", defaults.Tools.NPM)
	v.SetDefault("output.quotes", defaults.Output.Quotes)
	v.SetDefault("output.typewriter", defaults.Output.Typewriter)

	return &Loader{v: v}
}

// Load reads the configuration for a project directory.
//
// A missing config file is not an error; defaults and environment overrides
// still apply. A present but malformed file is an error.
func (l *Loader) Load(projectDir string) (*Config, error) {
	l.v.AddConfigPath(projectDir)

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.ProjectDir = projectDir
	return &cfg, nil
}
