package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/tacogips/dotool/internal/debug"
	"github.com/tacogips/dotool/internal/toolmanifest"
)

// ListToolsOptions holds options for listing tools.
type ListToolsOptions struct {
	Workspace
	// ManifestPath reads only this manifest when set.
	ManifestPath string
}

// ListTools returns every tool visible from the workspace directory.
func ListTools(ctx context.Context, opts ListToolsOptions) ([]toolmanifest.Package, error) {
	debug.DebugSection("[app] ListTools")

	finder, err := opts.finder()
	if err != nil {
		return nil, err
	}
	debug.DebugValue("probeStart", finder.ProbeStart())

	packages, err := finder.FindAll(opts.ManifestPath)
	if err != nil {
		return nil, NewManifestError("failed to resolve tools", err)
	}
	return packages, nil
}

// WhichToolOptions holds options for resolving a command to its tool.
type WhichToolOptions struct {
	Workspace
	// Command is the tool command name.
	Command string
}

// WhichTool returns the tool package that provides a command.
func WhichTool(ctx context.Context, opts WhichToolOptions) (*toolmanifest.Package, error) {
	debug.DebugSection("[app] WhichTool")

	command := strings.TrimSpace(opts.Command)
	if command == "" {
		return nil, NewValidationError("command name cannot be empty", nil)
	}

	finder, err := opts.finder()
	if err != nil {
		return nil, err
	}

	pkg, found, err := finder.FindByCommandName(command)
	if err != nil {
		return nil, NewManifestError("failed to resolve tools", err)
	}
	if !found {
		return nil, NewToolNotFoundError(fmt.Sprintf("no tool manifest declares the command %q", command))
	}
	return &pkg, nil
}

// ShowToolOptions holds options for looking up a tool package.
type ShowToolOptions struct {
	Workspace
	// PackageID is the package identifier (case-insensitive).
	PackageID string
}

// ShowTool returns the closest declaration of a tool package.
func ShowTool(ctx context.Context, opts ShowToolOptions) (*toolmanifest.Package, error) {
	debug.DebugSection("[app] ShowTool")

	id := strings.TrimSpace(opts.PackageID)
	if id == "" {
		return nil, NewValidationError("package id cannot be empty", nil)
	}

	finder, err := opts.finder()
	if err != nil {
		return nil, err
	}

	pkg, found, err := finder.FindByPackageID(id)
	if err != nil {
		return nil, NewManifestError("failed to resolve tools", err)
	}
	if !found {
		return nil, NewToolNotFoundError(fmt.Sprintf("no tool manifest declares the package %q", id))
	}
	return &pkg, nil
}

// ManifestsForPackage lists the manifests in the current workspace that
// declare the package.
func ManifestsForPackage(ctx context.Context, opts ShowToolOptions) ([]string, error) {
	debug.DebugSection("[app] ManifestsForPackage")

	id := strings.TrimSpace(opts.PackageID)
	if id == "" {
		return nil, NewValidationError("package id cannot be empty", nil)
	}

	finder, err := opts.finder()
	if err != nil {
		return nil, err
	}

	paths, err := finder.FindAllPathsContainingPackage(id)
	if err != nil {
		return nil, NewManifestError("failed to resolve manifests", err)
	}
	return paths, nil
}
