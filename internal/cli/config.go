package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tacogips/dotool/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect dotool configuration",
	Long: `Inspect the effective configuration.

Settings are read from ~/.config/dotool/config.yaml (or --config) and can be
overridden with DOTOOL_* environment variables, for example
DOTOOL_BUILD_DOTNET_PATH or DOTOOL_RUNFILE_TARGET_FRAMEWORK.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(loadedConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	printData("%s", data)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path := globalConfig
	if path == "" {
		path = config.DefaultConfigPath()
	}
	printData("%s\n", path)
	return nil
}
