package errors

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
)

// Process exit codes.
const (
	ExitCodeSuccess = 0
	ExitCodeFailure = 1
	// ExitCodeInterrupted follows the shell convention of 128 + SIGINT.
	ExitCodeInterrupted = 130
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// exitCoder carries an explicit exit code through the error chain.
type exitCoder struct {
	cause error
	code  int
}

func (e *exitCoder) Error() string { return e.cause.Error() }

func (e *exitCoder) Cause() error { return e.cause }

func (e *exitCoder) Unwrap() error { return e.cause }

// ExitCode returns the exit code.
func (e *exitCoder) ExitCode() int { return e.code }

// WithExitCode attaches an exit code to an error.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitCoder{cause: err, code: code}
}

// GetExitCode extracts the process exit code from an error chain.
// An attached code wins. Interrupts and aborted prompts map to ExitCodeInterrupted,
// anything else to ExitCodeFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var ec *exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	if IsInterrupt(err) {
		return ExitCodeInterrupted
	}
	return ExitCodeFailure
}

// IsInterrupt reports whether err stems from Ctrl-C, either during a prompt or
// while waiting on a completion.
func IsInterrupt(err error) bool {
	return errors.Is(err, ErrInterrupted) ||
		errors.Is(err, ErrUserAborted) ||
		errors.Is(err, context.Canceled)
}
