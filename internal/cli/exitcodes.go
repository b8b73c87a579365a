package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors or anything that doesn't fit below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, reset without --force.
	ExitUsage = 2

	// ExitNotFound indicates a requested task id does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: unparseable task ids, unreadable stdin.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty titles, invalid priority values, reset outside dev mode.
	ExitValidation = 5
)

// CommandError carries the process exit code for a failed command. Commands
// return it instead of calling os.Exit so they stay testable.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &CommandError{Code: code, Err: err}
}

// Exitf builds a CommandError from a format string
func Exitf(code int, format string, args ...any) error {
	return &CommandError{Code: code, Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
