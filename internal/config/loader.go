package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tacogips/dotool/internal/debug"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)

	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)

	// Validate validates the configuration.
	Validate(config *Config) error
}

// ViperLoader implements Loader on top of viper. Values are layered as
// defaults < config file < DOTOOL_* environment variables.
type ViperLoader struct {
	envPrefix string
}

// NewLoader creates a new ViperLoader instance.
func NewLoader() Loader {
	return &ViperLoader{envPrefix: EnvPrefix}
}

// Load loads configuration from the specified file path.
// The format is inferred from the extension (yaml, json, toml).
func (l *ViperLoader) Load(path string) (*Config, error) {
	if path == "" {
		return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file path is empty", nil)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	v := l.newViper()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid configuration syntax", err)
	}

	debug.Debug("[config] Loaded configuration file: %s", path)
	return l.decode(v, path)
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
// Environment overrides apply in both cases.
func (l *ViperLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		if IsNotFound(err) {
			debug.Debug("[config] No configuration file at %q, using defaults", path)
			return l.decode(l.newViper(), "")
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *ViperLoader) Validate(config *Config) error {
	switch config.Log.Format {
	case "text", "json", "logfmt":
	default:
		return NewConfigErrorWithField(ConfigValidationFailed, "", "log.format",
			fmt.Sprintf("unsupported log format %q (want text, json or logfmt)", config.Log.Format))
	}
	if strings.TrimSpace(config.RunFile.TargetFramework) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "runfile.target_framework", "target framework cannot be empty")
	}
	if strings.TrimSpace(config.Build.DotnetPath) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "build.dotnet_path", "dotnet path cannot be empty")
	}
	if config.Build.TimeoutSeconds < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "build.timeout_seconds", "timeout cannot be negative")
	}
	return nil
}

// newViper returns a viper instance with defaults and environment bindings registered.
func (l *ViperLoader) newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("output.color", defaults.Output.Color)
	v.SetDefault("output.verbose", defaults.Output.Verbose)
	v.SetDefault("output.quiet", defaults.Output.Quiet)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("runfile.artifacts_root", defaults.RunFile.ArtifactsRoot)
	v.SetDefault("runfile.target_framework", defaults.RunFile.TargetFramework)
	v.SetDefault("build.dotnet_path", defaults.Build.DotnetPath)
	v.SetDefault("build.timeout_seconds", defaults.Build.TimeoutSeconds)

	v.SetEnvPrefix(l.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func (l *ViperLoader) decode(v *viper.Viper, path string) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to decode configuration", err)
	}

	expanded, err := ExpandPath(cfg.RunFile.ArtifactsRoot)
	if err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid runfile.artifacts_root", err)
	}
	cfg.RunFile.ArtifactsRoot = expanded

	return &cfg, nil
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	// Make absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}
