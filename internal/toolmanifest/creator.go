package toolmanifest

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/tacogips/dotool/internal/debug"
)

var solutionExtensions = []string{".sln", ".slnx"}

// FindDirectoryForNewManifest picks the directory that should hold a new
// manifest. Walking up from probeStart, a directory with a .git directory
// wins; otherwise one containing a solution file or a .git file. The probe
// start is the fallback.
func FindDirectoryForNewManifest(fs afero.Fs, probeStart string) string {
	dir := filepath.Clean(probeStart)
	for {
		if ok, _ := afero.DirExists(fs, filepath.Join(dir, GitDirName)); ok {
			debug.Debug("[toolmanifest] New manifest location (git directory): %s", dir)
			return dir
		}

		if entries, err := afero.ReadDir(fs, dir); err == nil {
			for _, entry := range entries {
				if isWorkspaceMarker(entry.Name(), entry.IsDir()) {
					debug.Debug("[toolmanifest] New manifest location (%s): %s", entry.Name(), dir)
					return dir
				}
			}
		}

		parent, ok := parentDir(dir)
		if !ok {
			break
		}
		dir = parent
	}

	debug.Debug("[toolmanifest] New manifest location (probe start): %s", probeStart)
	return filepath.Clean(probeStart)
}

func isWorkspaceMarker(name string, isDir bool) bool {
	if name == GitDirName && !isDir {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, solutionExt := range solutionExtensions {
		if ext == solutionExt {
			return true
		}
	}
	return false
}

// WriteEmptyManifest writes an empty root manifest to <dir>/.config and
// returns its path.
func WriteEmptyManifest(fs afero.Fs, dir string) (string, error) {
	configDir := filepath.Join(dir, DotConfigDirName)
	if err := fs.MkdirAll(configDir, 0o755); err != nil {
		return "", &ManifestError{Kind: ManifestWriteFailed, Message: "failed to create manifest directory", Path: configDir, Cause: err}
	}

	path := filepath.Join(configDir, ManifestFileName)
	if err := afero.WriteFile(fs, path, []byte(emptyManifestJSON), 0o644); err != nil {
		return "", &ManifestError{Kind: ManifestWriteFailed, Message: "failed to write manifest", Path: path, Cause: err}
	}

	debug.Debug("[toolmanifest] Created manifest: %s", path)
	return path, nil
}
