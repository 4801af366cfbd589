// Package config provides configuration loading and management for
// scenarioflow.
//
// Configuration is loaded with Viper, supporting YAML config files and
// environment variable overrides. Defaults work out of the box; a config
// file only needs to state what differs.
//
// Configuration priority (highest to lowest):
//  1. Environment variables (SCENARIOFLOW_ prefix)
//  2. Config file named by SCENARIOFLOW_CONFIG_PATH
//  3. User config directory (e.g. ~/.config/scenarioflow/config.yaml on Linux)
//  4. ./scenarioflow.yaml
//  5. [DefaultConfig] defaults
package config

// Config is the root configuration container.
type Config struct {
	// Agent contains agent CLI binary settings.
	Agent AgentConfig `mapstructure:"agent"`

	// Output contains terminal output formatting settings.
	Output OutputConfig `mapstructure:"output"`

	// Library contains scenario library settings.
	Library LibraryConfig `mapstructure:"library"`
}

// AgentConfig controls how the agent CLI binary is invoked.
type AgentConfig struct {
	// BinaryPath is the path to the agent CLI binary.
	// Default: "claude" (assumes the binary is in PATH).
	// Can be overridden with the SCENARIOFLOW_AGENT_PATH environment variable.
	BinaryPath string `mapstructure:"binary_path"`

	// OutputFormat is the output format requested from the agent CLI.
	// Should be "stream-json" for structured event parsing.
	OutputFormat string `mapstructure:"output_format"`

	// Model selects the model for agent runs. Empty uses the CLI default.
	Model string `mapstructure:"model"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// TruncateLines is the maximum number of lines shown per tool result.
	// Additional lines are elided with an omission indicator. Default: 20.
	TruncateLines int `mapstructure:"truncate_lines"`

	// TruncateLength is the maximum length of header summary lines.
	// Longer lines get a "..." suffix. Default: 60.
	TruncateLength int `mapstructure:"truncate_length"`
}

// LibraryConfig controls scenario library discovery.
type LibraryConfig struct {
	// Dir is the directory scanned for workflow documents by the list
	// command. Default: "." (current directory).
	Dir string `mapstructure:"dir"`
}

// DefaultConfig returns a [Config] populated with defaults that work without
// any configuration file.
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			BinaryPath:   "claude",
			OutputFormat: "stream-json",
		},
		Output: OutputConfig{
			TruncateLines:  20,
			TruncateLength: 60,
		},
		Library: LibraryConfig{
			Dir: ".",
		},
	}
}
