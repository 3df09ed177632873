package runfile

import "fmt"

// DirectiveErrorType represents the type of directive error.
type DirectiveErrorType int

const (
	// UnrecognizedDirective indicates a `#:` kind other than sdk, property or package.
	UnrecognizedDirective DirectiveErrorType = iota
	// MissingDirectiveName indicates a directive with no name after its kind.
	MissingDirectiveName
	// PropertyMissingParts indicates a property directive without a value.
	PropertyMissingParts
	// PropertyInvalidName indicates a property name that is not a valid XML name.
	PropertyInvalidName
	// DirectiveAfterCode indicates a `#:` line after the first statement.
	DirectiveAfterCode
)

// String returns the string representation of the error type.
func (t DirectiveErrorType) String() string {
	switch t {
	case UnrecognizedDirective:
		return "UnrecognizedDirective"
	case MissingDirectiveName:
		return "MissingDirectiveName"
	case PropertyMissingParts:
		return "PropertyMissingParts"
	case PropertyInvalidName:
		return "PropertyInvalidName"
	case DirectiveAfterCode:
		return "DirectiveAfterCode"
	default:
		return "Unknown"
	}
}

// DirectiveError is a user-facing error in a source file's directives.
type DirectiveError struct {
	// Type is the error type.
	Type DirectiveErrorType
	// Message is the full error message, location included.
	Message string
	// Location is path:line (1-based line).
	Location string
	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DirectiveError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *DirectiveError) Unwrap() error {
	return e.Cause
}

func newDirectiveError(typ DirectiveErrorType, location, format string, args ...any) *DirectiveError {
	return &DirectiveError{
		Type:     typ,
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	}
}

// FileErrorType represents the type of file error.
type FileErrorType int

const (
	// EntryPointNotFound indicates the entry point file does not exist.
	EntryPointNotFound FileErrorType = iota
	// EntryPointInvalid indicates the entry point is not a .cs file.
	EntryPointInvalid
	// FileReadFailed indicates a source file could not be read.
	FileReadFailed
	// FileWriteFailed indicates an output file could not be written.
	FileWriteFailed
)

// FileError represents a failure reading or writing files.
type FileError struct {
	// Type is the error type.
	Type FileErrorType
	// Message is the error message.
	Message string
	// Path is the file path involved.
	Path string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *FileError) Unwrap() error {
	return e.Cause
}

func newFileError(typ FileErrorType, message, path string, cause error) *FileError {
	return &FileError{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}
