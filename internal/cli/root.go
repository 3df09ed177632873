package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tacogips/dotool/internal/build"
	"github.com/tacogips/dotool/internal/config"
	"github.com/tacogips/dotool/internal/debug"
)

// Version information (set by main from ldflags)
var (
	Version   = build.Version()
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor   bool
	globalQuiet     bool
	globalVerbose   bool
	globalDebug     bool
	globalConfig    string
	globalLogFormat string
	globalDirectory string
)

var (
	// loadedConfig is the effective configuration for the running command.
	loadedConfig = config.DefaultConfig()

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dotool",
	Short: "Local tool manifests and file-based C# programs",
	Long: `dotool resolves local tools from dotnet-tools.json manifests and turns
single C# files into buildable projects.

Tool manifests are searched from the working directory upward, probing
.config/dotnet-tools.json and then dotnet-tools.json in every directory.
Closer manifests win and a manifest with "isRoot": true ends the search.

A file-based program declares its build settings at the top of the file:

  #!/usr/bin/env dotnet
  #:sdk Microsoft.NET.Sdk.Web
  #:property LangVersion preview
  #:package Humanizer 2.14.1`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initRuntime,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, FlagVerbose, "v", false, DescVerbose)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalConfig, FlagConfig, "", DescConfig)
	rootCmd.PersistentFlags().StringVar(&globalLogFormat, FlagLogFormat, "", DescLogFormat)
	rootCmd.PersistentFlags().StringVarP(&globalDirectory, FlagDirectory, "C", "", DescDirectory)

	// Add subcommands
	rootCmd.AddCommand(toolCmd)
	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initRuntime loads .env and the configuration file, then applies output
// and logging settings. Flags take precedence over configuration.
func initRuntime(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	loader := config.NewLoader()
	var (
		cfg *config.Config
		err error
	)
	if globalConfig != "" {
		cfg, err = loader.Load(globalConfig)
	} else {
		cfg, err = loader.LoadOrDefault(config.DefaultConfigPath())
	}
	if err != nil {
		return err
	}

	if globalLogFormat != "" {
		cfg.Log.Format = globalLogFormat
	}
	if err := loader.Validate(cfg); err != nil {
		return err
	}

	globalNoColor = globalNoColor || !cfg.Output.Color
	globalQuiet = globalQuiet || cfg.Output.Quiet
	globalVerbose = globalVerbose || cfg.Output.Verbose
	loadedConfig = cfg

	color.NoColor = color.NoColor || globalNoColor
	applyTableColor(globalNoColor)

	debug.SetDebug(globalDebug)
	debug.SetNoColor(globalNoColor)
	if err := debug.SetFormat(cfg.Log.Format); err != nil {
		return err
	}

	debug.DebugSection("Runtime")
	debug.DebugJSON("config", cfg)
	return nil
}

// Execute runs the root command with the process arguments and exits with
// the command's exit code.
func Execute() {
	if code := Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// Run executes the command line args and returns the exit code. Flags are
// reset first so Run can be called repeatedly in one process.
func Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	stdout, stderr = out, errOut
	loadedConfig = config.DefaultConfig()
	resetFlags(rootCmd)

	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			printError(exitErr.Err)
		}
		return exitErr.Code
	}
	printError(err)
	return 1
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// printError prints an error message to stderr
func printError(err error) {
	fmt.Fprintf(stderr, "%s %v\n", errorColor.Sprint("Error:"), err)
}
