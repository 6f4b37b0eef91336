// Where: internal/runner/runner_test.go
// What: Tests for command execution and exit-status extraction.
package runner

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestExitStatusNil(t *testing.T) {
	if got := ExitStatus(nil); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestExitStatusPlainError(t *testing.T) {
	if got := ExitStatus(errors.New("command not found")); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestExitStatusFromChild(t *testing.T) {
	err := exec.Command("sh", "-c", "exit 7").Run()
	if err == nil {
		t.Fatalf("expected child failure")
	}
	if got := ExitStatus(err); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestExecRunnerRunOutput(t *testing.T) {
	out, err := ExecRunner{}.RunOutput(context.Background(), t.TempDir(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(string(out)) != "hello" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestExecRunnerRunsInDir(t *testing.T) {
	dir := t.TempDir()
	out, err := ExecRunner{}.RunOutput(context.Background(), dir, "pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(strings.TrimSpace(string(out)), dir[strings.LastIndex(dir, "/")+1:]) {
		t.Fatalf("command did not run in %s: %q", dir, out)
	}
}

func TestExecRunnerFailure(t *testing.T) {
	err := ExecRunner{}.Run(context.Background(), t.TempDir(), "sh", "-c", "exit 3")
	if ExitStatus(err) != 3 {
		t.Fatalf("expected status 3, got %v", err)
	}
}
