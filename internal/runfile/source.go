package runfile

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// EntryPointExtension is the only source extension accepted as an entry point.
const EntryPointExtension = ".cs"

// IsEntryPointPath reports whether path has the .cs extension (ignoring case).
func IsEntryPointPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), EntryPointExtension)
}

// ReadSourceFile validates that path names an existing .cs file and reads it.
// The returned SourceFile carries the absolute path.
func ReadSourceFile(fs afero.Fs, path string) (SourceFile, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return SourceFile{}, newFileError(FileReadFailed, "failed to resolve path", path, err)
	}

	info, err := fs.Stat(absPath)
	if err != nil || info.IsDir() {
		return SourceFile{}, newFileError(EntryPointNotFound, "file not found", absPath, nil)
	}
	if !IsEntryPointPath(absPath) {
		return SourceFile{}, newFileError(EntryPointInvalid,
			"the entry point must be a "+EntryPointExtension+" file", absPath, nil)
	}

	data, err := afero.ReadFile(fs, absPath)
	if err != nil {
		return SourceFile{}, newFileError(FileReadFailed, "failed to read file", absPath, err)
	}
	return SourceFile{Path: absPath, Text: string(data)}, nil
}
