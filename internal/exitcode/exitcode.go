package exitcode

import (
	goerrors "errors"
	"os"
	"strings"

	"github.com/0x4ndy/nansi/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution. Individual task failures do not
	// affect the process exit code.
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// ConfigError indicates an unreadable or malformed NansiFile
	ConfigError = 3

	// TemplateError indicates an argument templating failure
	TemplateError = 4

	// ReportError indicates a run-report write failure
	ReportError = 5

	// Interrupted indicates the run was cancelled by a signal
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var nerr *errors.Error
	if goerrors.As(err, &nerr) {
		switch {
		case strings.HasPrefix(string(nerr.Code), "CONFIG-"):
			return ConfigError
		case strings.HasPrefix(string(nerr.Code), "TEMPLATE-"):
			return TemplateError
		case strings.HasPrefix(string(nerr.Code), "REPORT-"):
			return ReportError
		}
		return GeneralError
	}

	// Cobra reports its own flag and argument errors as plain errors.
	msg := err.Error()
	if strings.Contains(msg, "unknown flag") || strings.Contains(msg, "unknown command") ||
		strings.Contains(msg, "accepts 1 arg") || strings.Contains(msg, "required flag") {
		return UsageError
	}

	return GeneralError
}
