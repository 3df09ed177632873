package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/dotool/internal/app"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Locate tool manifests",
}

var manifestFindCmd = &cobra.Command{
	Use:   "find",
	Short: "Print the closest tool manifest",
	Long: `Print the closest dotnet-tools.json manifest.

With --create an empty root manifest is written when none exists. The new
manifest goes into .config/ next to the repository root (a .git directory)
or the closest solution file, falling back to the start directory.

Examples:
  dotool manifest find
  dotool manifest find --create
  dotool manifest find --create --yes`,
	Args: cobra.NoArgs,
	RunE: runManifestFind,
}

// Manifest command flags
var (
	manifestCreate bool
	manifestYes    bool
)

func init() {
	manifestFindCmd.Flags().BoolVar(&manifestCreate, "create", false, "Create a manifest when none is found")
	manifestFindCmd.Flags().BoolVarP(&manifestYes, FlagYes, "y", false, DescYes)

	manifestCmd.AddCommand(manifestFindCmd)
}

func runManifestFind(cmd *cobra.Command, args []string) error {
	opts := app.FindManifestOptions{
		Workspace: workspace(),
		Create:    manifestCreate,
	}
	if manifestCreate && !manifestYes {
		opts.Confirm = confirmManifestCreation
	}

	result, err := app.FindManifest(cmd.Context(), opts)
	if err != nil {
		if app.IsType(err, app.Cancelled) {
			printWarning("Cancelled.")
			return &ExitError{Code: 1}
		}
		return err
	}

	if result.Created {
		printSuccess(fmt.Sprintf("Created %s", result.Path))
		return nil
	}
	printData("%s\n", result.Path)
	return nil
}
