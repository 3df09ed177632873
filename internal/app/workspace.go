package app

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/tacogips/dotool/internal/toolmanifest"
)

// Workspace selects where manifest lookups start and which filesystem and
// environment they see. The zero value uses the working directory, the OS
// filesystem and os.Getenv.
type Workspace struct {
	// Dir is the probe start directory. Empty means the working directory.
	Dir string
	// Fs is the filesystem. Nil means the OS filesystem.
	Fs afero.Fs
	// Getenv looks up environment variables. Nil means os.Getenv.
	Getenv func(string) string
}

func (w Workspace) fs() afero.Fs {
	if w.Fs == nil {
		return afero.NewOsFs()
	}
	return w.Fs
}

func (w Workspace) finder() (*toolmanifest.Finder, error) {
	// Abs resolves both an empty and a relative Dir against the working directory.
	dir, err := filepath.Abs(w.Dir)
	if err != nil {
		return nil, NewValidationError("failed to resolve start directory "+w.Dir, err)
	}

	opts := []toolmanifest.Option{toolmanifest.WithFs(w.fs())}
	if w.Getenv != nil {
		opts = append(opts, toolmanifest.WithEnvLookup(w.Getenv))
	}
	return toolmanifest.NewFinder(dir, opts...), nil
}
