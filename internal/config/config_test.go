package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if !cfg.Output.Color {
		t.Error("Color output should be enabled by default")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Expected log format text, got %s", cfg.Log.Format)
	}
	if cfg.RunFile.TargetFramework != "net10.0" {
		t.Errorf("Expected TargetFramework=net10.0, got %s", cfg.RunFile.TargetFramework)
	}
	if cfg.Build.DotnetPath != "dotnet" {
		t.Errorf("Expected DotnetPath=dotnet, got %s", cfg.Build.DotnetPath)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	loader := NewLoader()

	t.Run("valid yaml config", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", `
output:
  color: false
log:
  format: json
build:
  dotnet_path: /opt/dotnet/dotnet
  timeout_seconds: 120
`)
		cfg, err := loader.Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Output.Color {
			t.Error("Expected color=false from file")
		}
		if cfg.Log.Format != "json" {
			t.Errorf("Expected log format json, got %s", cfg.Log.Format)
		}
		if cfg.Build.DotnetPath != "/opt/dotnet/dotnet" {
			t.Errorf("Expected dotnet path from file, got %s", cfg.Build.DotnetPath)
		}
		if cfg.Build.TimeoutSeconds != 120 {
			t.Errorf("Expected timeout 120, got %d", cfg.Build.TimeoutSeconds)
		}
		// Unset keys fall back to defaults
		if cfg.RunFile.TargetFramework != "net10.0" {
			t.Errorf("Expected default TargetFramework, got %s", cfg.RunFile.TargetFramework)
		}
	})

	t.Run("json config", func(t *testing.T) {
		path := writeConfig(t, "config.json", `{"runfile": {"target_framework": "net9.0"}}`)
		cfg, err := loader.Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.RunFile.TargetFramework != "net9.0" {
			t.Errorf("Expected net9.0, got %s", cfg.RunFile.TargetFramework)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/config.yaml")
		if err == nil {
			t.Fatal("Expected error for missing file")
		}
		cfgErr, ok := err.(*ConfigError)
		if !ok {
			t.Fatalf("Expected ConfigError, got %T", err)
		}
		if cfgErr.Type != ConfigNotFound {
			t.Errorf("Expected ConfigNotFound, got %v", cfgErr.Type)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", "output: [unclosed")
		_, err := loader.Load(path)
		if err == nil {
			t.Fatal("Expected error for invalid YAML")
		}
		cfgErr, ok := err.(*ConfigError)
		if !ok {
			t.Fatalf("Expected ConfigError, got %T", err)
		}
		if cfgErr.Type != ConfigInvalid {
			t.Errorf("Expected ConfigInvalid, got %v", cfgErr.Type)
		}
	})
}

func TestLoadOrDefault(t *testing.T) {
	loader := NewLoader()

	t.Run("returns defaults for missing file", func(t *testing.T) {
		cfg, err := loader.LoadOrDefault("/nonexistent/config.yaml")
		if err != nil {
			t.Fatalf("LoadOrDefault should not error on missing file: %v", err)
		}
		if cfg.Build.DotnetPath != "dotnet" {
			t.Errorf("Expected default dotnet path, got %s", cfg.Build.DotnetPath)
		}
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("DOTOOL_BUILD_DOTNET_PATH", "/usr/local/bin/dotnet")
		t.Setenv("DOTOOL_LOG_FORMAT", "logfmt")

		cfg, err := loader.LoadOrDefault("/nonexistent/config.yaml")
		if err != nil {
			t.Fatalf("LoadOrDefault failed: %v", err)
		}
		if cfg.Build.DotnetPath != "/usr/local/bin/dotnet" {
			t.Errorf("Expected env override, got %s", cfg.Build.DotnetPath)
		}
		if cfg.Log.Format != "logfmt" {
			t.Errorf("Expected env override logfmt, got %s", cfg.Log.Format)
		}
	})

	t.Run("propagates invalid file", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", "log: [bad")
		if _, err := loader.LoadOrDefault(path); err == nil {
			t.Fatal("Expected error for invalid file")
		}
	})
}

func TestValidateConfig(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"empty target framework", func(c *Config) { c.RunFile.TargetFramework = " " }, "runfile.target_framework"},
		{"empty dotnet path", func(c *Config) { c.Build.DotnetPath = "" }, "build.dotnet_path"},
		{"negative timeout", func(c *Config) { c.Build.TimeoutSeconds = -1 }, "build.timeout_seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := loader.Validate(cfg)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			cfgErr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("Expected ConfigError, got %T", err)
			}
			if cfgErr.Type != ConfigValidationFailed || cfgErr.Field != tt.field {
				t.Errorf("Expected validation error on %s, got %v", tt.field, cfgErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty path", "", false},
		{"absolute path", "/tmp/test", false},
		{"relative path", "./test", false},
		{"home directory", "~", false},
		{"home subdirectory", "~/test", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expanded, err := ExpandPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExpandPath() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.path != "" && !tt.wantErr && !filepath.IsAbs(expanded) {
				t.Errorf("ExpandPath() = %q, want absolute path", expanded)
			}
		})
	}
}
