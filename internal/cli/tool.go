package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacogips/dotool/internal/app"
	"github.com/tacogips/dotool/internal/toolmanifest"
)

var toolCmd = &cobra.Command{
	Use:   "tool",
	Short: "Inspect local tools declared in manifests",
	Long: `Inspect local tools declared in dotnet-tools.json manifests.

Manifests are merged from the start directory upward. When the same package
appears in several manifests the closest one wins.`,
}

var toolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tools visible from the current directory",
	Long: `List every tool package visible from the start directory.

Examples:
  dotool tool list
  dotool tool list --json
  dotool tool list --manifest ./tools/dotnet-tools.json`,
	Args: cobra.NoArgs,
	RunE: runToolList,
}

var toolWhichCmd = &cobra.Command{
	Use:   "which <command>",
	Short: "Show which package provides a command",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolWhich,
}

var toolShowCmd = &cobra.Command{
	Use:   "show <package-id>",
	Short: "Show the closest declaration of a package",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolShow,
}

var toolManifestsCmd = &cobra.Command{
	Use:   "manifests <package-id>",
	Short: "List manifests in the first scope that declare a package",
	Long: `List the manifests that declare a package, stopping at the first
directory whose manifests do not mention it.`,
	Args: cobra.ExactArgs(1),
	RunE: runToolManifests,
}

// Tool command flags
var (
	toolManifestPath string
	toolJSON         bool
)

func init() {
	toolCmd.PersistentFlags().BoolVar(&toolJSON, FlagJSON, false, DescJSON)
	toolListCmd.Flags().StringVar(&toolManifestPath, "manifest", "", "Read only this manifest file")

	toolCmd.AddCommand(toolListCmd)
	toolCmd.AddCommand(toolWhichCmd)
	toolCmd.AddCommand(toolShowCmd)
	toolCmd.AddCommand(toolManifestsCmd)
}

func workspace() app.Workspace {
	return app.Workspace{Dir: globalDirectory}
}

func runToolList(cmd *cobra.Command, args []string) error {
	packages, err := app.ListTools(cmd.Context(), app.ListToolsOptions{
		Workspace:    workspace(),
		ManifestPath: toolManifestPath,
	})
	if err != nil {
		return err
	}

	if toolJSON {
		if packages == nil {
			packages = []toolmanifest.Package{}
		}
		return printJSON(packages)
	}
	if len(packages) == 0 {
		printInfo("No tools found.")
		return nil
	}
	printData("%s\n", renderToolTable(packages))
	printVerbose(fmt.Sprintf("%d package(s)", len(packages)))
	return nil
}

func runToolWhich(cmd *cobra.Command, args []string) error {
	pkg, err := app.WhichTool(cmd.Context(), app.WhichToolOptions{
		Workspace: workspace(),
		Command:   args[0],
	})
	if err != nil {
		return err
	}
	return printPackage(pkg)
}

func runToolShow(cmd *cobra.Command, args []string) error {
	pkg, err := app.ShowTool(cmd.Context(), app.ShowToolOptions{
		Workspace: workspace(),
		PackageID: args[0],
	})
	if err != nil {
		return err
	}
	return printPackage(pkg)
}

func runToolManifests(cmd *cobra.Command, args []string) error {
	paths, err := app.ManifestsForPackage(cmd.Context(), app.ShowToolOptions{
		Workspace: workspace(),
		PackageID: args[0],
	})
	if err != nil {
		return err
	}

	if toolJSON {
		if paths == nil {
			paths = []string{}
		}
		return printJSON(paths)
	}
	for _, p := range paths {
		printData("%s\n", p)
	}
	return nil
}

func printPackage(pkg *toolmanifest.Package) error {
	if toolJSON {
		return printJSON(pkg)
	}
	printData("%s\n", TitleStyle.Render(pkg.PackageID))
	printData("  %-10s %s\n", "version:", pkg.Version)
	printData("  %-10s %s\n", "commands:", CmdStyle.Render(strings.Join(pkg.CommandNames, ", ")))
	if pkg.RollForward {
		printData("  %-10s %t\n", "rollForward:", pkg.RollForward)
	}
	printData("  %-10s %s\n", "manifest:", PathStyle.Render(pkg.ManifestPath))
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	printData("%s\n", data)
	return nil
}
