package app

import (
	"context"
	"path/filepath"

	"github.com/tacogips/dotool/internal/debug"
	"github.com/tacogips/dotool/internal/toolmanifest"
)

// FindManifestOptions holds options for locating the closest manifest.
type FindManifestOptions struct {
	Workspace
	// Create writes an empty root manifest when none exists.
	Create bool
	// Confirm is asked before a manifest is created. Nil means yes.
	Confirm func(path string) (bool, error)
}

// FindManifestResult is the outcome of FindManifest.
type FindManifestResult struct {
	// Path is the manifest file.
	Path string
	// Created is true when the manifest was written by this call.
	Created bool
}

// FindManifest returns the closest manifest file, creating one on request.
func FindManifest(ctx context.Context, opts FindManifestOptions) (*FindManifestResult, error) {
	debug.DebugSection("[app] FindManifest")

	finder, err := opts.finder()
	if err != nil {
		return nil, err
	}

	path, err := finder.FindFirst(false)
	if err == nil {
		return &FindManifestResult{Path: path}, nil
	}
	if !toolmanifest.IsNotFound(err) || !opts.Create {
		return nil, NewManifestError("failed to find a manifest", err)
	}

	if opts.Confirm != nil {
		dir := toolmanifest.FindDirectoryForNewManifest(opts.fs(), finder.ProbeStart())
		target := filepath.Join(dir, toolmanifest.DotConfigDirName, toolmanifest.ManifestFileName)
		ok, err := opts.Confirm(target)
		if err != nil {
			return nil, NewAppError(Cancelled, "confirmation failed", err)
		}
		if !ok {
			return nil, NewAppError(Cancelled, "manifest creation cancelled", nil)
		}
	}

	path, err = finder.FindFirst(true)
	if err != nil {
		return nil, NewManifestError("failed to create a manifest", err)
	}
	return &FindManifestResult{Path: path, Created: true}, nil
}
