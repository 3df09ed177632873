package app

import (
	"errors"
	"fmt"
)

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ManifestResolveFailed indicates manifest lookup or parsing failed.
	ManifestResolveFailed AppErrorType = iota
	// ToolNotFound indicates no manifest declares the requested tool.
	ToolNotFound
	// DirectiveParseFailed indicates the source file's directives are invalid.
	DirectiveParseFailed
	// ProjectSynthesisFailed indicates the project could not be generated.
	ProjectSynthesisFailed
	// ConvertFailed indicates converting a file into a project failed.
	ConvertFailed
	// BuildFailed indicates restore or build could not be run.
	BuildFailed
	// ValidationFailed indicates invalid user input.
	ValidationFailed
	// Cancelled indicates the user declined a confirmation.
	Cancelled
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewManifestError creates a manifest resolution error.
func NewManifestError(message string, cause error) *AppError {
	return NewAppError(ManifestResolveFailed, message, cause)
}

// NewToolNotFoundError creates a tool-not-found error.
func NewToolNotFoundError(message string) *AppError {
	return NewAppError(ToolNotFound, message, nil)
}

// NewDirectiveError creates a directive parsing error.
func NewDirectiveError(message string, cause error) *AppError {
	return NewAppError(DirectiveParseFailed, message, cause)
}

// NewConvertError creates a convert error.
func NewConvertError(message string, cause error) *AppError {
	return NewAppError(ConvertFailed, message, cause)
}

// NewBuildError creates a build error.
func NewBuildError(message string, cause error) *AppError {
	return NewAppError(BuildFailed, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// IsType reports whether err is an *AppError of the given type.
func IsType(err error, errType AppErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == errType
}
