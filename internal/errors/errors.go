// Package errors provides categorized CLI errors with remediation hints.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Runtime errors occur while a solver runs.
	Runtime ErrorCategory = iota
	// Input errors are caused by malformed puzzle input.
	Input
	// Argument errors are caused by invalid or missing command arguments.
	Argument
	// Configuration errors are caused by an invalid config file or environment.
	Configuration
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Input:
		return "Input Error"
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Remediation []string
	// Usage shows the correct command syntax (argument errors only).
	Usage string

	cause error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e *CLIError) Unwrap() error {
	return e.cause
}

// NewArgumentError creates an argument error with usage and remediation steps.
func NewArgumentError(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// Wrap wraps err into a CLIError of the given category.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}

	return &CLIError{Category: category, Message: err.Error(), Remediation: remediation, cause: err}
}

// WrapWithMessage wraps err with a custom message prefix.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}

	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
		cause:       err,
	}
}

// AsCLIError finds a CLIError in err's chain, or returns nil.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}

	return nil
}
