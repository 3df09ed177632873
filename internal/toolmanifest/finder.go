package toolmanifest

import (
	"iter"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"

	"github.com/tacogips/dotool/internal/debug"
)

// probe is one candidate manifest location and the directory it governs.
type probe struct {
	ManifestPath   string
	ScopeDirectory string
}

// Finder resolves tools against the manifests above a probe start directory.
// Every call re-reads disk.
type Finder struct {
	probeStart string
	fs         afero.Fs
	getenv     func(string) string
	isWindows  bool
	reader     Reader
}

// Option configures a Finder.
type Option func(*Finder)

// WithFs sets the filesystem the finder probes and writes to.
func WithFs(fs afero.Fs) Option {
	return func(f *Finder) { f.fs = fs }
}

// WithEnvLookup replaces os.Getenv for the root-allowance check.
func WithEnvLookup(getenv func(string) string) Option {
	return func(f *Finder) { f.getenv = getenv }
}

// WithWindows overrides platform detection.
func WithWindows(isWindows bool) Option {
	return func(f *Finder) { f.isWindows = isWindows }
}

// WithReader replaces the manifest reader.
func WithReader(r Reader) Option {
	return func(f *Finder) { f.reader = r }
}

// NewFinder creates a Finder that starts probing at probeStart. A relative
// probeStart is resolved against the working directory so the walk reaches
// the real ancestors.
func NewFinder(probeStart string, opts ...Option) *Finder {
	if abs, err := filepath.Abs(probeStart); err == nil {
		probeStart = abs
	}
	f := &Finder{
		probeStart: filepath.Clean(probeStart),
		fs:         afero.NewOsFs(),
		getenv:     os.Getenv,
		isWindows:  runtime.GOOS == "windows",
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.reader == nil {
		f.reader = NewReader(f.fs)
	}
	return f
}

// ProbeStart returns the directory the walk starts from.
func (f *Finder) ProbeStart() string {
	return f.probeStart
}

// allowManifestInRoot evaluates the root-allowance policy.
func (f *Finder) allowManifestInRoot() bool {
	value := strings.TrimSpace(f.getenv(AllowManifestInRootEnv))
	if value == "" {
		return !f.isWindows
	}
	return strings.EqualFold(value, "true") || value == "1"
}

// parentDir returns the parent of dir, or false when dir is a filesystem root.
func parentDir(dir string) (string, bool) {
	parent := filepath.Dir(dir)
	if parent == dir {
		return "", false
	}
	return parent, true
}

// probes yields candidate manifest paths from the probe start upward.
func (f *Finder) probes() iter.Seq[probe] {
	allowRoot := f.allowManifestInRoot()
	return func(yield func(probe) bool) {
		dir := f.probeStart
		for {
			parent, hasParent := parentDir(dir)
			if !hasParent && !allowRoot {
				return
			}
			if !yield(probe{ManifestPath: filepath.Join(dir, DotConfigDirName, ManifestFileName), ScopeDirectory: dir}) {
				return
			}
			if !yield(probe{ManifestPath: filepath.Join(dir, ManifestFileName), ScopeDirectory: dir}) {
				return
			}
			if !hasParent {
				return
			}
			dir = parent
		}
	}
}

func (f *Finder) fileExists(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// FindAll returns every tool visible from the probe start. Closer manifests
// win on duplicate package ids and a root manifest ends the walk. When
// explicitPath is non-empty only that file is read.
func (f *Finder) FindAll(explicitPath string) ([]Package, error) {
	if explicitPath != "" {
		if !f.fileExists(explicitPath) {
			return nil, newNotFoundError([]string{explicitPath})
		}
		packages, _, err := f.reader.Read(explicitPath, filepath.Dir(explicitPath))
		return packages, err
	}

	var (
		result  []Package
		probed  []string
		found   bool
		seenIDs = make(map[string]struct{})
	)

	for p := range f.probes() {
		probed = append(probed, p.ManifestPath)
		if !f.fileExists(p.ManifestPath) {
			continue
		}
		found = true

		packages, isRoot, err := f.reader.Read(p.ManifestPath, p.ScopeDirectory)
		if err != nil {
			return nil, err
		}
		for _, pkg := range packages {
			key := strings.ToLower(pkg.PackageID)
			if _, dup := seenIDs[key]; dup {
				debug.Debug("[toolmanifest] %s in %s shadowed by a closer manifest", pkg.PackageID, p.ManifestPath)
				continue
			}
			seenIDs[key] = struct{}{}
			result = append(result, pkg)
		}
		if isRoot {
			debug.Debug("[toolmanifest] Root manifest reached: %s", p.ManifestPath)
			return result, nil
		}
	}

	if !found {
		return nil, newNotFoundError(probed)
	}
	return result, nil
}

// FindByCommandName returns the closest tool exposing the command.
func (f *Finder) FindByCommandName(name string) (Package, bool, error) {
	return f.findFirstMatch(func(p Package) bool { return p.HasCommand(name) })
}

// FindByPackageID returns the closest tool with the given package id.
func (f *Finder) FindByPackageID(id string) (Package, bool, error) {
	return f.findFirstMatch(func(p Package) bool { return SamePackageID(p.PackageID, id) })
}

func (f *Finder) findFirstMatch(match func(Package) bool) (Package, bool, error) {
	for p := range f.probes() {
		if !f.fileExists(p.ManifestPath) {
			continue
		}
		packages, isRoot, err := f.reader.Read(p.ManifestPath, p.ScopeDirectory)
		if err != nil {
			return Package{}, false, err
		}
		for _, pkg := range packages {
			if match(pkg) {
				return pkg, true, nil
			}
		}
		if isRoot {
			return Package{}, false, nil
		}
	}
	return Package{}, false, nil
}

// FindFirst returns the closest existing manifest path. When none exists and
// createIfNotFound is set, an empty root manifest is created in the directory
// chosen by FindDirectoryForNewManifest.
func (f *Finder) FindFirst(createIfNotFound bool) (string, error) {
	var probed []string
	for p := range f.probes() {
		probed = append(probed, p.ManifestPath)
		if f.fileExists(p.ManifestPath) {
			return p.ManifestPath, nil
		}
	}

	if !createIfNotFound {
		return "", newNotFoundError(probed)
	}

	dir := FindDirectoryForNewManifest(f.fs, f.probeStart)
	return WriteEmptyManifest(f.fs, dir)
}

// FindAllPathsContainingPackage lists every manifest in the current
// workspace that declares the package. Directories above the first root
// manifest's directory are not probed.
func (f *Finder) FindAllPathsContainingPackage(id string) ([]string, error) {
	var (
		paths    []string
		probed   []string
		found    bool
		rootPath string
	)

	for p := range f.probes() {
		if rootPath != "" && p.ScopeDirectory != rootPath {
			break
		}
		probed = append(probed, p.ManifestPath)
		if !f.fileExists(p.ManifestPath) {
			continue
		}
		found = true

		packages, isRoot, err := f.reader.Read(p.ManifestPath, p.ScopeDirectory)
		if err != nil {
			return nil, err
		}
		for _, pkg := range packages {
			if SamePackageID(pkg.PackageID, id) {
				paths = append(paths, p.ManifestPath)
				break
			}
		}
		if isRoot && rootPath == "" {
			rootPath = p.ScopeDirectory
		}
	}

	if !found {
		return nil, newNotFoundError(probed)
	}
	return paths, nil
}
