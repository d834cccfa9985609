package cli

import (
	"errors"
	"fmt"
)

// ExitError carries a process exit code up through cobra's RunE chain.
//
// Commands return it instead of calling os.Exit so the failure path stays
// testable: [RunWithArgs] extracts the code into an [ExecuteResult] and
// [Execute] performs the actual process termination. The message format
// matches os/exec's exit errors for consistency with subprocess failures.
type ExitError struct {
	// Code is the exit code to return to the shell. Zero is success by
	// convention; commands only construct ExitError for failures.
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError creates an [ExitError] with the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// IsExitError reports whether err is an [*ExitError] and extracts its code.
func IsExitError(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
