package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeFileRead     ErrorCode = "CONFIG-001"
	ErrCodeFileParse    ErrorCode = "CONFIG-002"
	ErrCodeMissingField ErrorCode = "CONFIG-003"

	// Templating errors (TEMPLATE-001 to TEMPLATE-099)
	ErrCodeUnbalancedBraces ErrorCode = "TEMPLATE-001"
	ErrCodeUndefinedVar     ErrorCode = "TEMPLATE-002"

	// Execution errors (EXEC-001 to EXEC-099)
	ErrCodeOutputDecode ErrorCode = "EXEC-001"

	// Report errors (REPORT-001 to REPORT-099)
	ErrCodeReportWrite ErrorCode = "REPORT-001"
)

// Error represents an enhanced error with a code, suggestions, and a cause
type Error struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new Error wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *Error) WithSuggestions(suggestions ...string) *Error {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors for frequently used errors

// NewFileReadError creates a NansiFile read error
func NewFileReadError(path string, cause error) *Error {
	return Wrap(ErrCodeFileRead, path, cause).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Run 'nansi init' to create a new NansiFile")
}

// NewFileParseError creates a malformed-NansiFile error
func NewFileParseError(path string, cause error) *Error {
	return Wrap(ErrCodeFileParse, path, cause).
		WithSuggestion("Check the document syntax").
		WithSuggestion("Run 'nansi validate " + path + "' to inspect the file")
}

// NewMissingExecListError creates a malformed-document error for a
// NansiFile without an exec_list
func NewMissingExecListError(path string) *Error {
	return New(ErrCodeMissingField,
		fmt.Sprintf("%s: missing required field %q", path, "exec_list")).
		WithSuggestion("Add an \"exec_list\" array of items to run")
}

// NewMissingFieldError creates a missing-required-field error
func NewMissingFieldError(path string, position int, field string) *Error {
	return New(ErrCodeMissingField,
		fmt.Sprintf("%s: item %d: missing required field %q", path, position, field)).
		WithSuggestion(fmt.Sprintf("Add %q to the item or remove the item", field))
}

// NewUnbalancedBracesError creates a malformed-template error
func NewUnbalancedBracesError(arg string) *Error {
	return New(ErrCodeUnbalancedBraces,
		fmt.Sprintf("incorrect number of { in argument %q", arg)).
		WithSuggestion("Escape a literal { with \\{ or precede it with $")
}

// NewUndefinedVarError creates an undefined-variable error
func NewUndefinedVarError(name, arg string) *Error {
	return New(ErrCodeUndefinedVar,
		fmt.Sprintf("environment variable %q referenced by argument %q is not defined", name, arg)).
		WithSuggestion(fmt.Sprintf("Define the variable: export %s=<value>", name)).
		WithSuggestion("Escape a literal { with \\{ if no substitution was intended")
}

// NewOutputDecodeError creates a process-output decoding error
func NewOutputDecodeError(ref string) *Error {
	return New(ErrCodeOutputDecode,
		fmt.Sprintf("output of item %s is not valid UTF-8", ref))
}

// NewReportWriteError creates a run-report write error
func NewReportWriteError(dir string, cause error) *Error {
	return Wrap(ErrCodeReportWrite, fmt.Sprintf("failed to write run report to %s", dir), cause).
		WithSuggestion("Check that the report directory is writable")
}
