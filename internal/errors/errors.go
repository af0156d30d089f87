// Package errors defines the structured error type surfaced by the pystack
// CLI. Failures carry a category and remediation steps so the final report
// tells the user what to run next, not just what broke.
package errors

import "fmt"

// ErrorCategory classifies where in the bootstrap a failure originated.
type ErrorCategory int

const (
	// Configuration errors come from an invalid or unreadable run configuration.
	Configuration ErrorCategory = iota
	// Prerequisite errors mean a required external tool or repository is missing.
	Prerequisite
	// Runtime errors cover failed subprocesses and file writes.
	Runtime
)

// String returns the display name used in error headers.
func (c ErrorCategory) String() string {
	switch c {
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError pairs a failure message with the steps that resolve it.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Remediation []string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewPrerequisiteError creates a prerequisite error.
func NewPrerequisiteError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Prerequisite,
		Message:     message,
		Remediation: remediation,
	}
}

// NewRuntimeError creates a runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Runtime,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap converts an existing error into a CLIError, keeping its message.
// A nil error stays nil.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
	}
}

// WrapWithMessage wraps an error under a descriptive message.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
	}
}

// IsCLIError reports whether err is a CLIError.
func IsCLIError(err error) bool {
	_, ok := err.(*CLIError)
	return ok
}

// AsCLIError returns err as a CLIError, or nil when it is some other type.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}
