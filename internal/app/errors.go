// Where: internal/app/errors.go
// What: Error taxonomy for the refresh run.
// Why: Distinguish operator mistakes from failing pipeline steps.
package app

import "fmt"

// UsageError reports a malformed invocation: unknown flag, extra
// positional, invalid flag combination, or a missing prerequisite.
// It maps to exit code 2 and is never retried.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// StepError reports a fail-fast step returning non-zero. Its status
// becomes the process exit code.
type StepError struct {
	Step   string
	Status int
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed with status %d", e.Step, e.Status)
}
