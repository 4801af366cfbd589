package cli

import "fmt"

// ExitError represents a command failure with a specific exit code.
//
// Commands return ExitError from RunE instead of calling os.Exit directly,
// which keeps command behavior testable: tests assert on the code without
// terminating the process. [Execute] performs the actual os.Exit.
type ExitError struct {
	// Code is the exit code to return to the shell.
	Code int
}

// Error returns "exit status N", matching the os/exec convention.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError creates an [ExitError] with the given exit code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// IsExitError reports whether err is an [ExitError], returning its code.
func IsExitError(err error) (int, bool) {
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code, true
	}
	return 0, false
}
