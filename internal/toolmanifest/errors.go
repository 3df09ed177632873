package toolmanifest

import (
	"fmt"
	"strings"
)

// ManifestErrorKind categorizes manifest errors.
type ManifestErrorKind int

const (
	// ManifestNotFound indicates no manifest file existed anywhere along the walk.
	ManifestNotFound ManifestErrorKind = iota
	// ManifestInvalid indicates a manifest file exists but is malformed.
	ManifestInvalid
	// ManifestReadFailed indicates a manifest file could not be read.
	ManifestReadFailed
	// ManifestWriteFailed indicates a new manifest could not be written.
	ManifestWriteFailed
)

// ManifestError represents a manifest resolution or parsing failure.
type ManifestError struct {
	// Kind categorizes the error.
	Kind ManifestErrorKind
	// Message is the error message.
	Message string
	// Path is the manifest file involved (empty for not-found errors).
	Path string
	// ProbedPaths lists every candidate path that was probed (not-found errors).
	ProbedPaths []string
	// Problems lists individual validation failures (invalid manifests).
	Problems []string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *ManifestError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Path != "" {
		fmt.Fprintf(&b, " (path: %s)", e.Path)
	}
	if len(e.ProbedPaths) > 0 {
		b.WriteString("\nthe list of searched paths:")
		for _, p := range e.ProbedPaths {
			b.WriteString("\n\t")
			b.WriteString(p)
		}
	}
	for _, p := range e.Problems {
		b.WriteString("\n\t")
		b.WriteString(p)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *ManifestError) Unwrap() error {
	return e.Cause
}

func newNotFoundError(probed []string) *ManifestError {
	return &ManifestError{
		Kind:        ManifestNotFound,
		Message:     "cannot find a manifest file",
		ProbedPaths: probed,
	}
}

func newInvalidError(path string, problems []string, cause error) *ManifestError {
	return &ManifestError{
		Kind:     ManifestInvalid,
		Message:  "invalid manifest file",
		Path:     path,
		Problems: problems,
		Cause:    cause,
	}
}

// IsNotFound reports whether err is a ManifestError of kind ManifestNotFound.
func IsNotFound(err error) bool {
	mErr, ok := err.(*ManifestError)
	return ok && mErr.Kind == ManifestNotFound
}
