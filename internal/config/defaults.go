package config

import (
	"os"
	"path/filepath"
)

// EnvPrefix is the prefix for environment variable overrides (DOTOOL_OUTPUT_COLOR, ...).
const EnvPrefix = "DOTOOL"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Color:   true,
			Verbose: false,
			Quiet:   false,
		},
		Log: LogConfig{
			Format: "text",
		},
		RunFile: RunFileConfig{
			ArtifactsRoot:   "",
			TargetFramework: "net10.0",
		},
		Build: BuildConfig{
			DotnetPath:     "dotnet",
			TimeoutSeconds: 0,
		},
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "dotool", "config.yaml")
}
