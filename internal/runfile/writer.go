package runfile

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/tacogips/dotool/internal/debug"
)

// FileWriter writes files atomically through an afero filesystem.
type FileWriter struct {
	fs afero.Fs
}

// NewFileWriter creates a new FileWriter.
func NewFileWriter(fs afero.Fs) *FileWriter {
	return &FileWriter{fs: fs}
}

// WriteFile writes content to path with mode 0644.
// Creates parent directories if they don't exist.
// Writes atomically using a temporary file and rename.
func (w *FileWriter) WriteFile(path string, content []byte) error {
	debug.Debug("[runfile] Writing file: %s (size: %d bytes)", path, len(content))

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := w.CreateDir(dir); err != nil {
			return err
		}
	}

	tempFile := path + ".tmp"
	f, err := w.fs.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return newFileError(FileWriteFailed, "failed to create temporary file", path, err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = w.fs.Remove(tempFile)
		return newFileError(FileWriteFailed, "failed to write file content", path, err)
	}
	if closeErr != nil {
		_ = w.fs.Remove(tempFile)
		return newFileError(FileWriteFailed, "failed to close file", path, closeErr)
	}

	if err := w.fs.Rename(tempFile, path); err != nil {
		_ = w.fs.Remove(tempFile)
		return newFileError(FileWriteFailed, "failed to rename temporary file", path, err)
	}

	debug.Debug("[runfile] File written successfully: %s", path)
	return nil
}

// CreateDir creates a directory and any necessary parent directories.
func (w *FileWriter) CreateDir(path string) error {
	if err := w.fs.MkdirAll(path, 0o755); err != nil {
		return newFileError(FileWriteFailed, "failed to create directory", path, err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := w.fs.Stat(path)
	return err == nil
}
