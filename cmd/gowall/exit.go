package main

import (
	"errors"
	"fmt"
)

// Exit codes
const (
	exitFailure      = 1 // runtime failure (I/O, rendering, persistence)
	exitCommandError = 2 // invalid flags, settings or paths
)

// exitError carries the process exit code for an error
type exitError struct {
	code    int
	message string
	err     error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

func (e *exitError) Unwrap() error {
	return e.err
}

func newExitError(code int, message string) *exitError {
	return &exitError{code: code, message: message}
}

func wrapExitError(code int, message string, err error) *exitError {
	return &exitError{code: code, message: message, err: err}
}

// exitCode returns the code carried by err, or exitFailure
func exitCode(err error) int {
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return exitFailure
}
