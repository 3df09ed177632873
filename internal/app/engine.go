package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/tacogips/dotool/internal/debug"
)

// BuildRequest describes one synthesized project to restore or build.
type BuildRequest struct {
	// ProjectPath is the project file written under ArtifactsPath.
	ProjectPath string
	// EntryPointPath is the source file being built.
	EntryPointPath string
	// ArtifactsPath is the output root for the build.
	ArtifactsPath string
}

// BuildEngine runs restore and build for a project. Both return the engine's
// exit code; an error means the engine could not be run at all.
type BuildEngine interface {
	Restore(ctx context.Context, req BuildRequest) (int, error)
	Build(ctx context.Context, req BuildRequest) (int, error)
}

// ExecEngine runs the dotnet CLI.
type ExecEngine struct {
	// DotnetPath is the dotnet executable.
	DotnetPath string
	// Timeout bounds each invocation. Zero means no timeout.
	Timeout time.Duration
	// Stdout and Stderr receive the engine's output. Nil means os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// waitDelay bounds how long a killed engine may hold its output pipes open.
const waitDelay = time.Second

// NewExecEngine creates an engine for the given dotnet executable.
func NewExecEngine(dotnetPath string, timeout time.Duration) *ExecEngine {
	return &ExecEngine{DotnetPath: dotnetPath, Timeout: timeout}
}

// Restore implements BuildEngine.
func (e *ExecEngine) Restore(ctx context.Context, req BuildRequest) (int, error) {
	return e.run(ctx, "restore", req.ProjectPath)
}

// Build implements BuildEngine.
func (e *ExecEngine) Build(ctx context.Context, req BuildRequest) (int, error) {
	return e.run(ctx, "build", req.ProjectPath, "--no-restore")
}

func (e *ExecEngine) run(ctx context.Context, args ...string) (int, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	debug.Debug("[engine] %s %v", e.DotnetPath, args)
	cmd := exec.CommandContext(ctx, e.DotnetPath, args...)
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) && e.Timeout > 0 {
			return 1, fmt.Errorf("%s %s timed out after %s: %w", e.DotnetPath, args[0], e.Timeout, ctxErr)
		}
		return 1, fmt.Errorf("%s %s was cancelled: %w", e.DotnetPath, args[0], ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 1, err
	}
	return 0, nil
}
