// Package toolmanifest locates and reads local tool manifests (dotnet-tools.json).
//
// A manifest governs the directory it is found in and every descendant. The
// Finder walks from a probe start directory towards the filesystem root,
// probing <dir>/.config/dotnet-tools.json and then <dir>/dotnet-tools.json in
// each directory. Closer manifests take precedence over farther ones, and a
// manifest marked isRoot ends the walk.
package toolmanifest

import (
	"slices"
	"strings"
)

const (
	// ManifestFileName is the fixed manifest file name.
	ManifestFileName = "dotnet-tools.json"
	// DotConfigDirName is the hidden subdirectory probed before the directory itself.
	DotConfigDirName = ".config"
	// GitDirName is the version-control marker used by the creation heuristic.
	GitDirName = ".git"
	// AllowManifestInRootEnv permits reading a manifest at the filesystem root.
	AllowManifestInRootEnv = "DOTNET_TOOLS_ALLOW_MANIFEST_IN_ROOT"
	// SupportedManifestVersion is the highest manifest schema version understood.
	SupportedManifestVersion = 1
)

// emptyManifestJSON is written verbatim when a manifest is created on demand.
const emptyManifestJSON = `{"version":1,"isRoot":true,"tools":{}}`

// Package is one tool entry resolved from a manifest file.
type Package struct {
	// PackageID is the package identifier. Comparison is case-insensitive.
	PackageID string `json:"packageId"`
	// Version is the pinned package version.
	Version string `json:"version"`
	// CommandNames are the commands the package exposes, in manifest order.
	CommandNames []string `json:"commands"`
	// RollForward allows the tool to run on a newer runtime than it targets.
	RollForward bool `json:"rollForward,omitempty"`
	// ManifestPath is the manifest file the entry was read from.
	ManifestPath string `json:"manifestPath"`
	// FirstEffectDirectory is the directory whose scope the manifest governs.
	FirstEffectDirectory string `json:"firstEffectDirectory"`
}

// HasCommand reports whether the package exposes the given command name.
func (p Package) HasCommand(name string) bool {
	return slices.Contains(p.CommandNames, name)
}

// SamePackageID compares two package identifiers the way package feeds do (ignoring case).
func SamePackageID(a, b string) bool {
	return strings.EqualFold(a, b)
}
