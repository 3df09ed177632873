package runfile

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func TestReadSourceFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/work/app.cs", []byte("#:sdk A\n"), 0o644)
	_ = afero.WriteFile(fs, "/work/UPPER.CS", []byte("class C {}\n"), 0o644)
	_ = afero.WriteFile(fs, "/work/notes.txt", []byte("x"), 0o644)
	_ = fs.MkdirAll("/work/dir.cs", 0o755)

	tests := []struct {
		name     string
		path     string
		wantErr  bool
		wantType FileErrorType
	}{
		{name: "cs file", path: "/work/app.cs"},
		{name: "upper-case extension", path: "/work/UPPER.CS"},
		{name: "missing", path: "/work/missing.cs", wantErr: true, wantType: EntryPointNotFound},
		{name: "directory", path: "/work/dir.cs", wantErr: true, wantType: EntryPointNotFound},
		{name: "wrong extension", path: "/work/notes.txt", wantErr: true, wantType: EntryPointInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := ReadSourceFile(fs, tt.path)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("ReadSourceFile failed: %v", err)
				}
				if file.Path != tt.path || file.Text == "" {
					t.Errorf("file = %+v", file)
				}
				return
			}

			var fErr *FileError
			if !errors.As(err, &fErr) {
				t.Fatalf("expected *FileError, got %v", err)
			}
			if fErr.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", fErr.Type, tt.wantType)
			}
		})
	}
}

func TestFileWriter(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewFileWriter(fs)

	if err := w.WriteFile("/out/app/app.cs", []byte("first")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := w.WriteFile("/out/app/app.cs", []byte("second")); err != nil {
		t.Fatalf("WriteFile overwrite failed: %v", err)
	}

	data, err := afero.ReadFile(fs, "/out/app/app.cs")
	if err != nil || string(data) != "second" {
		t.Errorf("content = %q, err = %v", data, err)
	}
	if w.Exists("/out/app/app.cs.tmp") {
		t.Error("temporary file should be renamed away")
	}
	if !w.Exists("/out/app") {
		t.Error("parent directory should be created")
	}
}
