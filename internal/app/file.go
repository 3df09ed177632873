package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/tacogips/dotool/internal/debug"
	"github.com/tacogips/dotool/internal/runfile"
)

// FileOptions identifies a file-based program.
type FileOptions struct {
	// Path is the .cs entry point.
	Path string
	// Fs is the filesystem. Nil means the OS filesystem.
	Fs afero.Fs
}

func (o FileOptions) fs() afero.Fs {
	if o.Fs == nil {
		return afero.NewOsFs()
	}
	return o.Fs
}

func (o FileOptions) read() (runfile.SourceFile, error) {
	if strings.TrimSpace(o.Path) == "" {
		return runfile.SourceFile{}, NewValidationError("file path cannot be empty", nil)
	}
	file, err := runfile.ReadSourceFile(o.fs(), o.Path)
	if err != nil {
		return runfile.SourceFile{}, NewValidationError("invalid entry point", err)
	}
	return file, nil
}

func parseDirectives(file runfile.SourceFile, reportAllErrors bool) ([]runfile.Directive, error) {
	directives, err := runfile.ParseDirectives(file, reportAllErrors)
	if err != nil {
		return nil, NewDirectiveError("invalid directives", err)
	}
	return directives, nil
}

// ListDirectives returns the directives of a file-based program.
func ListDirectives(ctx context.Context, opts FileOptions) ([]runfile.Directive, error) {
	debug.DebugSection("[app] ListDirectives")

	file, err := opts.read()
	if err != nil {
		return nil, err
	}
	return parseDirectives(file, false)
}

// SynthesizeOptions holds options for generating a project.
type SynthesizeOptions struct {
	FileOptions
	// Virtual generates the in-memory form used for building.
	Virtual bool
	// ArtifactsRoot overrides the artifacts base directory (virtual only).
	ArtifactsRoot string
	// TargetFramework overrides the default target framework.
	TargetFramework string
}

// SynthesizeProject returns the project text for a file-based program.
func SynthesizeProject(ctx context.Context, opts SynthesizeOptions) (string, error) {
	debug.DebugSection("[app] SynthesizeProject")

	file, err := opts.read()
	if err != nil {
		return "", err
	}
	directives, err := parseDirectives(file, false)
	if err != nil {
		return "", err
	}

	projectOpts := runfile.ProjectOptions{
		Virtual:         opts.Virtual,
		EntryPointPath:  file.Path,
		TargetFramework: opts.TargetFramework,
	}
	if opts.Virtual {
		artifacts, err := runfile.ArtifactsPath(file.Path, opts.ArtifactsRoot)
		if err != nil {
			return "", NewAppError(ProjectSynthesisFailed, "failed to compute artifacts path", err)
		}
		projectOpts.ArtifactsPath = artifacts
	}

	var buf bytes.Buffer
	if err := runfile.WriteProject(&buf, directives, projectOpts); err != nil {
		return "", NewAppError(ProjectSynthesisFailed, "failed to synthesize project", err)
	}
	return buf.String(), nil
}

// ConvertOptions holds options for converting a file into a project directory.
type ConvertOptions struct {
	FileOptions
	// OutputDir is the new project directory. Empty means the file path
	// without its extension.
	OutputDir string
	// Force ignores directives that appear after code.
	Force bool
	// TargetFramework overrides the default target framework.
	TargetFramework string
}

// ConvertResult describes the files written by ConvertFile.
type ConvertResult struct {
	OutputDir   string
	ProjectPath string
	SourcePath  string
}

// ConvertFile writes a project directory holding the source file without its
// directives and a project file generated from them.
func ConvertFile(ctx context.Context, opts ConvertOptions) (*ConvertResult, error) {
	debug.DebugSection("[app] ConvertFile")

	file, err := opts.read()
	if err != nil {
		return nil, err
	}

	directives, err := parseDirectives(file, !opts.Force)
	if err != nil {
		return nil, err
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = strings.TrimSuffix(file.Path, filepath.Ext(file.Path))
	}
	outputDir, err = filepath.Abs(outputDir)
	if err != nil {
		return nil, NewConvertError("invalid output directory", err)
	}

	writer := runfile.NewFileWriter(opts.fs())
	if writer.Exists(outputDir) {
		return nil, NewConvertError("the target directory already exists: "+outputDir, nil)
	}

	source, err := runfile.RemoveDirectives(directives, file.Text)
	if err != nil {
		return nil, NewConvertError("failed to remove directives", err)
	}

	var project bytes.Buffer
	if err := runfile.WriteProject(&project, directives, runfile.ProjectOptions{
		EntryPointPath:  file.Path,
		TargetFramework: opts.TargetFramework,
	}); err != nil {
		return nil, NewAppError(ProjectSynthesisFailed, "failed to synthesize project", err)
	}

	base := filepath.Base(file.Path)
	result := &ConvertResult{
		OutputDir:   outputDir,
		SourcePath:  filepath.Join(outputDir, base),
		ProjectPath: filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".csproj"),
	}

	if err := writer.WriteFile(result.SourcePath, []byte(source)); err != nil {
		return nil, NewConvertError("failed to write source file", err)
	}
	if err := writer.WriteFile(result.ProjectPath, project.Bytes()); err != nil {
		return nil, NewConvertError("failed to write project file", err)
	}

	debug.Debug("[app] Converted %s into %s", file.Path, outputDir)
	return result, nil
}
