// Where: internal/runner/runner.go
// What: External command execution primitives.
// Why: Provide a minimal, testable interface for invoking collaborator tools.
package runner

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// CommandRunner defines the interface for executing external commands.
// Implementations run git, ddev, and drush invocations in the project directory.
type CommandRunner interface {
	// Run executes a command with inherited stdout/stderr.
	Run(ctx context.Context, dir, name string, args ...string) error
	// RunOutput executes a command and returns its combined output.
	RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

// Run executes a command with inherited stdout/stderr.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// RunOutput executes a command and returns its combined stdout and stderr.
func (ExecRunner) RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// ExitStatus extracts the exit status from a command error.
// Returns 0 for nil, the child's own status for exec.ExitError,
// and 1 for anything else (e.g. the binary was not found).
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
