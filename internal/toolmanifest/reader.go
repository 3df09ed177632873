package toolmanifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/afero"
	"github.com/xeipuuv/gojsonschema"

	"github.com/tacogips/dotool/internal/debug"
)

//go:embed manifest.schema.json
var manifestSchemaJSON string

var manifestSchema = mustCompileSchema(manifestSchemaJSON)

// versionPattern accepts NuGet style versions: 1.2, 1.2.3, 1.2.3.4 with optional
// pre-release and build metadata suffixes.
var versionPattern = regexp.MustCompile(`^\d+(\.\d+){1,3}(-[0-9A-Za-z][0-9A-Za-z.-]*)?(\+[0-9A-Za-z][0-9A-Za-z.-]*)?$`)

func mustCompileSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("toolmanifest: invalid embedded schema: %v", err))
	}
	return schema
}

// Reader parses a manifest file into its package entries and root flag.
type Reader interface {
	// Read parses the manifest at path. scopeDir becomes each package's
	// FirstEffectDirectory.
	Read(path, scopeDir string) ([]Package, bool, error)
}

// JSONReader reads manifests from an afero filesystem.
type JSONReader struct {
	fs afero.Fs
}

// NewReader creates a reader over fs.
func NewReader(fs afero.Fs) *JSONReader {
	return &JSONReader{fs: fs}
}

// manifestDocument mirrors the on-disk JSON shape.
type manifestDocument struct {
	Version *int      `json:"version"`
	IsRoot  bool      `json:"isRoot"`
	Tools   toolTable `json:"tools"`
}

type toolBody struct {
	Version     string   `json:"version"`
	Commands    []string `json:"commands"`
	RollForward bool     `json:"rollForward"`
}

type toolEntry struct {
	ID string
	toolBody
}

// toolTable decodes the "tools" object keeping document order, which
// encoding/json maps would lose.
type toolTable []toolEntry

// UnmarshalJSON implements json.Unmarshaler.
func (t *toolTable) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("tools must be an object")
	}

	entries := toolTable{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in tools", keyTok)
		}
		var body toolBody
		if err := dec.Decode(&body); err != nil {
			return fmt.Errorf("tool %q: %w", key, err)
		}
		entries = append(entries, toolEntry{ID: key, toolBody: body})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*t = entries
	return nil
}

// Read implements Reader.
func (r *JSONReader) Read(path, scopeDir string) ([]Package, bool, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, &ManifestError{Kind: ManifestNotFound, Message: "manifest file not found", Path: path, Cause: err}
		}
		return nil, false, &ManifestError{Kind: ManifestReadFailed, Message: "failed to read manifest file", Path: path, Cause: err}
	}

	result, err := manifestSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, false, newInvalidError(path, nil, err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return nil, false, newInvalidError(path, problems, nil)
	}

	var doc manifestDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, newInvalidError(path, nil, err)
	}

	if problems := validateDocument(&doc); len(problems) > 0 {
		return nil, false, newInvalidError(path, problems, nil)
	}

	packages := make([]Package, 0, len(doc.Tools))
	for _, tool := range doc.Tools {
		packages = append(packages, Package{
			PackageID:            tool.ID,
			Version:              tool.Version,
			CommandNames:         tool.Commands,
			RollForward:          tool.RollForward,
			ManifestPath:         path,
			FirstEffectDirectory: scopeDir,
		})
	}

	debug.Debug("[toolmanifest] Read %s: %d tool(s), isRoot=%v", path, len(packages), doc.IsRoot)
	return packages, doc.IsRoot, nil
}

// validateDocument returns every semantic problem found, grouped per package.
func validateDocument(doc *manifestDocument) []string {
	var problems []string

	switch {
	case doc.Version == nil:
		problems = append(problems, "missing 'version' field")
	case *doc.Version == 0:
		problems = append(problems, "manifest version 0 is not supported")
	case *doc.Version > SupportedManifestVersion:
		problems = append(problems, fmt.Sprintf(
			"manifest version is %d, this tool supports up to manifest version %d",
			*doc.Version, SupportedManifestVersion))
	}

	seen := make(map[string]string, len(doc.Tools))
	for _, tool := range doc.Tools {
		var toolProblems []string

		if strings.TrimSpace(tool.ID) == "" {
			toolProblems = append(toolProblems, "package id is empty")
		}
		if prev, ok := seen[strings.ToLower(tool.ID)]; ok {
			toolProblems = append(toolProblems, fmt.Sprintf("duplicate package id (already declared as %q)", prev))
		} else {
			seen[strings.ToLower(tool.ID)] = tool.ID
		}

		switch {
		case tool.Version == "":
			toolProblems = append(toolProblems, "missing 'version' field")
		case !versionPattern.MatchString(tool.Version):
			toolProblems = append(toolProblems, fmt.Sprintf("version %s is invalid", tool.Version))
		}

		if len(tool.Commands) == 0 {
			toolProblems = append(toolProblems, "missing 'commands' field")
		}
		for _, cmd := range tool.Commands {
			if strings.TrimSpace(cmd) == "" {
				toolProblems = append(toolProblems, "command name is empty")
				break
			}
		}

		if len(toolProblems) > 0 {
			problems = append(problems, fmt.Sprintf("in package %s:\n\t\t%s", tool.ID, strings.Join(toolProblems, "\n\t\t")))
		}
	}

	return problems
}
