package cmd

import "errors"

// Exit codes: 0 success, 2 query-syntax error, 3 capability/runtime failure
// during filtering. Other failures (wordlist IO etc.) exit 1.
const (
	exitBadQuery = 2
	exitRuntime  = 3
)

// exitError carries a specific process exit code alongside the cause.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }
func (e exitError) Unwrap() error { return e.err }

// ExitCode extracts the exit code from an exitError.
// Returns -1 if the error carries none.
func ExitCode(err error) int {
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return -1
}
