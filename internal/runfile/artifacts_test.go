package runfile

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestArtifactsPath(t *testing.T) {
	root := t.TempDir()

	path, err := ArtifactsPath("/work/hello.cs", root)
	if err != nil {
		t.Fatalf("ArtifactsPath failed: %v", err)
	}

	dir, name := filepath.Split(path)
	if filepath.Clean(dir) != filepath.Join(root, "dotnet", "runfile") {
		t.Errorf("parent directory = %s", dir)
	}
	if !regexp.MustCompile(`^hello-[0-9A-F]{64}$`).MatchString(name) {
		t.Errorf("directory name %q should be <stem>-<upper hex sha256>", name)
	}

	// Empty input hash is well known; the path is upper-cased before hashing.
	if got := hashPathIgnoringCase(""); got != strings.ToUpper("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855") {
		t.Errorf("hash of empty path = %s", got)
	}
}

func TestArtifactsPathIgnoresCase(t *testing.T) {
	root := t.TempDir()

	lower, _ := ArtifactsPath("/work/hello.cs", root)
	upper, _ := ArtifactsPath("/WORK/HELLO.cs", root)
	other, _ := ArtifactsPath("/other/hello.cs", root)

	lowerHash := lower[strings.LastIndex(lower, "-")+1:]
	upperHash := upper[strings.LastIndex(upper, "-")+1:]
	if lowerHash != upperHash {
		t.Errorf("hash should ignore case: %s vs %s", lowerHash, upperHash)
	}
	if lower == other {
		t.Error("different paths should produce different artifacts paths")
	}
}

func TestArtifactsPathDefaultRoot(t *testing.T) {
	path, err := ArtifactsPath("/work/hello.cs", "")
	if err != nil {
		t.Fatalf("ArtifactsPath failed: %v", err)
	}
	if !strings.HasPrefix(path, DefaultArtifactsRoot()) {
		t.Errorf("path %s should be under %s", path, DefaultArtifactsRoot())
	}
}
