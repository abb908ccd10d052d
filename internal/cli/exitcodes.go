package cli

import "errors"

// Exit codes for matchcheck
const (
	// ExitSuccess indicates all assertions passed
	ExitSuccess = 0

	// ExitAssertionFailure indicates one or more assertions failed
	ExitAssertionFailure = 1

	// ExitParseError indicates an invalid suite or input document
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitIOError indicates a file could not be read or written
	ExitIOError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitError carries the process exit code for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// CodeOf maps err to an exit code. Errors without one are usage
// errors raised by flag or argument parsing.
func CodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return ExitUsageError
}
