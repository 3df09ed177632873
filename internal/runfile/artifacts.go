package runfile

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultArtifactsRoot returns the per-user base directory for artifacts:
// %LOCALAPPDATA% on Windows and the temp directory elsewhere.
func DefaultArtifactsRoot() string {
	if runtime.GOOS == "windows" {
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return dir
		}
	}
	return os.TempDir()
}

// ArtifactsPath returns <root>/dotnet/runfile/<stem>-<HASH> for an entry
// point, where HASH is the upper-case hex SHA-256 of the upper-cased full
// path. An empty root selects DefaultArtifactsRoot.
func ArtifactsPath(entryPointPath, root string) (string, error) {
	fullPath, err := filepath.Abs(entryPointPath)
	if err != nil {
		return "", err
	}
	if root == "" {
		root = DefaultArtifactsRoot()
	}

	base := filepath.Base(fullPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(root, "dotnet", "runfile", stem+"-"+hashPathIgnoringCase(fullPath)), nil
}

func hashPathIgnoringCase(path string) string {
	sum := sha256.Sum256([]byte(strings.ToUpper(path)))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
