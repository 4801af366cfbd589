package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable naming an explicit config file.
const EnvConfigPath = "SCENARIOFLOW_CONFIG_PATH"

// EnvAgentPath is the environment variable overriding the agent binary path.
const EnvAgentPath = "SCENARIOFLOW_AGENT_PATH"

// Loader handles Viper-based configuration loading.
//
// Create instances with [NewLoader], then call [Loader.Load] for the standard
// resolution chain or [Loader.LoadFromFile] for an explicit file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a [Loader] with defaults and environment bindings applied.
func NewLoader() *Loader {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("agent.binary_path", defaults.Agent.BinaryPath)
	v.SetDefault("agent.output_format", defaults.Agent.OutputFormat)
	v.SetDefault("agent.model", defaults.Agent.Model)
	v.SetDefault("output.truncate_lines", defaults.Output.TruncateLines)
	v.SetDefault("output.truncate_length", defaults.Output.TruncateLength)
	v.SetDefault("library.dir", defaults.Library.Dir)

	v.SetEnvPrefix("SCENARIOFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// Load resolves and loads configuration using the standard priority chain.
//
// A missing config file is not an error; defaults apply. A present but
// malformed config file is an error.
func (l *Loader) Load() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return l.LoadFromFile(path)
	}

	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")
	if userDir, err := os.UserConfigDir(); err == nil {
		l.v.AddConfigPath(filepath.Join(userDir, "scenarioflow"))
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		// Fall back to a project-local scenarioflow.yaml if present.
		if _, statErr := os.Stat("scenarioflow.yaml"); statErr == nil {
			l.v.SetConfigFile("scenarioflow.yaml")
			if err := l.v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	return l.unmarshal()
}

// LoadFromFile loads configuration from an explicit file path.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Dedicated override for the agent binary, matching the documented
	// SCENARIOFLOW_AGENT_PATH variable.
	if path := os.Getenv(EnvAgentPath); path != "" {
		cfg.Agent.BinaryPath = path
	}

	return &cfg, nil
}
