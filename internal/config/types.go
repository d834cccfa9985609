// Package config provides configuration loading for stackup.
//
// Configuration is loaded with Viper, supporting a YAML config file and
// environment variable overrides. Defaults work out of the box for a
// conventional Laravel project layout.
//
// Configuration priority (highest to lowest):
//  1. Environment variables (STACKUP_ prefix, e.g. STACKUP_TOOLS_PHP)
//  2. stackup.yaml in the project directory
//  3. [DefaultConfig] defaults
package config

// Config is the root configuration container.
type Config struct {
	// ProjectDir is the project root all relative paths and commands are
	// resolved against. Set from the --dir flag, not the config file.
	ProjectDir string `mapstructure:"-"`

	// EnvFile is the live environment file, relative to ProjectDir.
	EnvFile string `mapstructure:"env_file"`

	// EnvTemplate is the template copied to EnvFile when it is absent.
	EnvTemplate string `mapstructure:"env_template"`

	// StorageLink is the public storage symlink path, relative to
	// ProjectDir. It is removed and recreated during setup.
	StorageLink string `mapstructure:"storage_link"`

	// ProductionEnvs lists APP_ENV values the wizard refuses to run
	// against. Matching is case-insensitive.
	ProductionEnvs []string `mapstructure:"production_envs"`

	// Tools names the external toolchain binaries.
	Tools ToolsConfig `mapstructure:"tools"`

	// Output controls the cosmetic side of the wizard.
	Output OutputConfig `mapstructure:"output"`
}

// ToolsConfig names the external binaries the wizard shells out to.
// Names are resolved via PATH unless absolute.
type ToolsConfig struct {
	PHP      string `mapstructure:"php"`
	Composer string `mapstructure:"composer"`
	NPM      string `mapstructure:"npm"`
}

// OutputConfig controls terminal presentation.
type OutputConfig struct {
	// Quotes enables random encouragement lines between steps.
	Quotes bool `mapstructure:"quotes"`

	// Typewriter enables the typed-text intro animation.
	Typewriter bool `mapstructure:"typewriter"`
}

// DefaultConfig returns a [Config] with defaults for a conventional
// Laravel project.
func DefaultConfig() *Config {
	return &Config{
		EnvFile:        ".env",
		EnvTemplate:    ".env.example",
		StorageLink:    "public/storage",
		ProductionEnvs: []string{"production", "prod"},
		Tools: ToolsConfig{
			PHP:      "php",
			Composer: "composer",
			NPM:      "npm",
		},
		Output: OutputConfig{
			Quotes:     true,
			Typewriter: true,
		},
	}
}
