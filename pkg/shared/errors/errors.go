package errors

import (
	"errors"
)

// Exit codes returned by the envlint binary.
const (
	ExitOK       = 0
	ExitProblems = 1
	ExitFailure  = 2
)

// CommandError carries the exit code a failed command should terminate with.
type CommandError struct {
	ExitCode    int
	CommonError string
	err         error
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.err
}

// NewCommandError wraps err with the exit code the process should use.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
		err:         err,
	}
}

// ExitCode extracts the exit code from err: ExitOK for nil, the carried code for
// a CommandError anywhere in the chain, ExitFailure otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return ExitFailure
}
