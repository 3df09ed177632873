package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/dotool/internal/debug"
	"github.com/tacogips/dotool/internal/runfile"
)

// BuildFileOptions holds options for building a file-based program.
type BuildFileOptions struct {
	FileOptions
	// Engine runs restore and build. Required.
	Engine BuildEngine
	// ArtifactsRoot overrides the artifacts base directory.
	ArtifactsRoot string
	// TargetFramework overrides the default target framework.
	TargetFramework string
	// NoRestore skips the restore step.
	NoRestore bool
	// Stderr receives failure messages. Nil means os.Stderr.
	Stderr io.Writer
}

// BuildFile restores and builds a file-based program and returns the process
// exit code. Errors and panics are printed to Stderr and reported as 1.
func BuildFile(ctx context.Context, opts BuildFileOptions) (exitCode int) {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	defer func() {
		if r := recover(); r != nil {
			debug.Debug("[app] BuildFile recovered: %v", r)
			fmt.Fprintln(stderr, r)
			exitCode = 1
		}
	}()

	code, err := buildFile(ctx, opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return code
}

func buildFile(ctx context.Context, opts BuildFileOptions) (int, error) {
	debug.DebugSection("[app] BuildFile")

	if opts.Engine == nil {
		return 1, NewBuildError("no build engine configured", nil)
	}

	file, err := opts.read()
	if err != nil {
		return 1, err
	}
	directives, err := parseDirectives(file, false)
	if err != nil {
		return 1, err
	}

	artifacts, err := runfile.ArtifactsPath(file.Path, opts.ArtifactsRoot)
	if err != nil {
		return 1, NewBuildError("failed to compute artifacts path", err)
	}

	var project bytes.Buffer
	if err := runfile.WriteProject(&project, directives, runfile.ProjectOptions{
		Virtual:         true,
		EntryPointPath:  file.Path,
		ArtifactsPath:   artifacts,
		TargetFramework: opts.TargetFramework,
	}); err != nil {
		return 1, NewAppError(ProjectSynthesisFailed, "failed to synthesize project", err)
	}

	base := filepath.Base(file.Path)
	req := BuildRequest{
		ProjectPath:    filepath.Join(artifacts, strings.TrimSuffix(base, filepath.Ext(base))+".csproj"),
		EntryPointPath: file.Path,
		ArtifactsPath:  artifacts,
	}
	if err := runfile.NewFileWriter(opts.fs()).WriteFile(req.ProjectPath, project.Bytes()); err != nil {
		return 1, NewBuildError("failed to write project", err)
	}
	debug.DebugValue("project", req.ProjectPath)

	if !opts.NoRestore {
		code, err := opts.Engine.Restore(ctx, req)
		if err != nil {
			return 1, NewBuildError("restore could not be run", err)
		}
		if code != 0 {
			debug.Debug("[app] Restore exited with %d", code)
			return code, nil
		}
	}

	code, err := opts.Engine.Build(ctx, req)
	if err != nil {
		return 1, NewBuildError("build could not be run", err)
	}
	debug.Debug("[app] Build exited with %d", code)
	return code, nil
}
