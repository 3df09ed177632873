package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tacogips/dotool/internal/app"
	"github.com/tacogips/dotool/internal/runfile"
)

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Work with file-based C# programs",
	Long: `Work with single-file C# programs.

Directives are only read from the top of the file, before the first line of
code. Comments and blank lines may appear between them.`,
}

var fileDirectivesCmd = &cobra.Command{
	Use:   "directives <file.cs>",
	Short: "List the directives of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFileDirectives,
}

var fileProjectCmd = &cobra.Command{
	Use:   "project <file.cs>",
	Short: "Print the project generated for a file",
	Long: `Print the project file generated from the directives of a file.

The default output is what "file convert" would write. With --virtual the
project used for in-place builds is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runFileProject,
}

var fileConvertCmd = &cobra.Command{
	Use:   "convert <file.cs>",
	Short: "Convert a file into a project directory",
	Long: `Convert a file-based program into a regular project directory.

The directory receives a copy of the source with its directives removed and
a project file generated from them. The directory must not exist.

Examples:
  dotool file convert app.cs
  dotool file convert app.cs -o ./src/App`,
	Args: cobra.ExactArgs(1),
	RunE: runFileConvert,
}

var fileBuildCmd = &cobra.Command{
	Use:   "build <file.cs>",
	Short: "Restore and build a file in place",
	Long: `Restore and build a file-based program without converting it.

The generated project is written below the artifacts directory of the file
and built with the configured dotnet executable. The exit code of the failing
step is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: runFileBuild,
}

// File command flags
var (
	fileVirtual   bool
	fileOutputDir string
	fileForce     bool
	fileNoRestore bool
	fileJSON      bool
)

// newBuildEngine creates the engine used by "file build". Tests replace it.
var newBuildEngine = func(dotnetPath string, timeout time.Duration) app.BuildEngine {
	engine := app.NewExecEngine(dotnetPath, timeout)
	engine.Stdout = stdout
	engine.Stderr = stderr
	return engine
}

func init() {
	fileDirectivesCmd.Flags().BoolVar(&fileJSON, FlagJSON, false, DescJSON)
	fileProjectCmd.Flags().BoolVar(&fileVirtual, "virtual", false, "Print the project used for in-place builds")
	fileConvertCmd.Flags().StringVarP(&fileOutputDir, FlagOutput, "o", "", DescOutput)
	fileConvertCmd.Flags().BoolVar(&fileForce, FlagForce, false, DescForce)
	fileBuildCmd.Flags().BoolVar(&fileNoRestore, "no-restore", false, "Skip the restore step")

	fileCmd.AddCommand(fileDirectivesCmd)
	fileCmd.AddCommand(fileProjectCmd)
	fileCmd.AddCommand(fileConvertCmd)
	fileCmd.AddCommand(fileBuildCmd)
}

// directiveView is the JSON form of a directive.
type directiveView struct {
	Kind    string `json:"kind"`
	Name    string `json:"name,omitempty"`
	Value   string `json:"value,omitempty"`
	Version string `json:"version,omitempty"`
	Text    string `json:"text,omitempty"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

func newDirectiveView(d runfile.Directive) directiveView {
	span := d.SourceSpan()
	v := directiveView{Kind: d.Kind(), Start: span.Start, End: span.End}
	switch d := d.(type) {
	case *runfile.Shebang:
		v.Text = d.Text
	case *runfile.SdkDirective:
		v.Name, v.Version = d.Name, d.Version
	case *runfile.PropertyDirective:
		v.Name, v.Value = d.Name, d.Value
	case *runfile.PackageDirective:
		v.Name, v.Version = d.Name, d.Version
	}
	return v
}

func (v directiveView) String() string {
	switch v.Kind {
	case runfile.KindShebang:
		return v.Text
	case runfile.KindProperty:
		return fmt.Sprintf("%s = %s", v.Name, v.Value)
	default:
		if v.Version != "" {
			return fmt.Sprintf("%s %s", v.Name, v.Version)
		}
		return v.Name
	}
}

func runFileDirectives(cmd *cobra.Command, args []string) error {
	directives, err := app.ListDirectives(cmd.Context(), app.FileOptions{Path: args[0]})
	if err != nil {
		return err
	}

	views := make([]directiveView, 0, len(directives))
	for _, d := range directives {
		views = append(views, newDirectiveView(d))
	}

	if fileJSON {
		return printJSON(views)
	}
	if len(views) == 0 {
		printInfo("No directives found.")
		return nil
	}
	for _, v := range views {
		printData("%-9s %s\n", v.Kind, v.String())
	}
	return nil
}

func runFileProject(cmd *cobra.Command, args []string) error {
	project, err := app.SynthesizeProject(cmd.Context(), app.SynthesizeOptions{
		FileOptions:     app.FileOptions{Path: args[0]},
		Virtual:         fileVirtual,
		ArtifactsRoot:   loadedConfig.RunFile.ArtifactsRoot,
		TargetFramework: loadedConfig.RunFile.TargetFramework,
	})
	if err != nil {
		return err
	}
	printData("%s", project)
	return nil
}

func runFileConvert(cmd *cobra.Command, args []string) error {
	printProgress(fmt.Sprintf("Converting %s", args[0]))

	result, err := app.ConvertFile(cmd.Context(), app.ConvertOptions{
		FileOptions:     app.FileOptions{Path: args[0]},
		OutputDir:       fileOutputDir,
		Force:           fileForce,
		TargetFramework: loadedConfig.RunFile.TargetFramework,
	})
	if err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("Converted into %s", result.OutputDir))
	printVerbose("source:  " + result.SourcePath)
	printVerbose("project: " + result.ProjectPath)
	return nil
}

func runFileBuild(cmd *cobra.Command, args []string) error {
	timeout := time.Duration(loadedConfig.Build.TimeoutSeconds) * time.Second
	engine := newBuildEngine(loadedConfig.Build.DotnetPath, timeout)

	printProgress(fmt.Sprintf("Building %s", args[0]))
	code := app.BuildFile(cmd.Context(), app.BuildFileOptions{
		FileOptions:     app.FileOptions{Path: args[0]},
		Engine:          engine,
		ArtifactsRoot:   loadedConfig.RunFile.ArtifactsRoot,
		TargetFramework: loadedConfig.RunFile.TargetFramework,
		NoRestore:       fileNoRestore,
		Stderr:          stderr,
	})
	if code != 0 {
		printErrorMsg(fmt.Sprintf("Build failed with exit code %d", code))
		return &ExitError{Code: code}
	}

	printSuccess("Build succeeded")
	return nil
}
