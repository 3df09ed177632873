package config

// Config represents the global dotool configuration.
type Config struct {
	// Output configuration for display.
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	// Log configuration for debug logging.
	Log LogConfig `mapstructure:"log" yaml:"log"`
	// RunFile configuration for file-based program projects.
	RunFile RunFileConfig `mapstructure:"runfile" yaml:"runfile"`
	// Build configuration for the external build engine.
	Build BuildConfig `mapstructure:"build" yaml:"build"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `mapstructure:"color" yaml:"color"`
	// Verbose enables verbose output.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
	// Quiet suppresses non-error output.
	Quiet bool `mapstructure:"quiet" yaml:"quiet"`
}

// LogConfig represents debug log settings.
type LogConfig struct {
	// Format is the debug log format: text, json or logfmt.
	Format string `mapstructure:"format" yaml:"format"`
}

// RunFileConfig represents settings for synthesized projects.
type RunFileConfig struct {
	// ArtifactsRoot overrides the platform temp/local-app-data root for build artifacts.
	ArtifactsRoot string `mapstructure:"artifacts_root" yaml:"artifacts_root"`
	// TargetFramework is the target framework moniker written into synthesized projects.
	TargetFramework string `mapstructure:"target_framework" yaml:"target_framework"`
}

// BuildConfig represents settings for the external build engine.
type BuildConfig struct {
	// DotnetPath is the dotnet host executable used for restore and build.
	DotnetPath string `mapstructure:"dotnet_path" yaml:"dotnet_path"`
	// TimeoutSeconds bounds a single restore or build step (0 = no timeout).
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}
