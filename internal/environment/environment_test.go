// Where: internal/environment/environment_test.go
// What: Tests for live-state queries.
// Why: Ensure probes treat failure leniently and never cache results.
package environment

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docker/docker/api/types/container"
)

type fakeRunner struct {
	calls  [][]string
	output []byte
	err    error
}

func (r *fakeRunner) Run(_ context.Context, _, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

func (r *fakeRunner) RunOutput(_ context.Context, _, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.output, r.err
}

func TestUpstreamExists(t *testing.T) {
	rn := &fakeRunner{output: []byte("origin/main\n")}
	q := Queries{Runner: rn, Git: "git"}
	if !q.UpstreamExists(context.Background(), "main") {
		t.Fatalf("expected upstream to exist")
	}
	if len(rn.calls) != 1 || rn.calls[0][0] != "git" {
		t.Fatalf("unexpected calls: %v", rn.calls)
	}
	if got := rn.calls[0][len(rn.calls[0])-1]; got != "main@{upstream}" {
		t.Fatalf("unexpected ref argument: %s", got)
	}
}

func TestUpstreamProbeFailureMeansNoUpstream(t *testing.T) {
	var out bytes.Buffer
	rn := &fakeRunner{output: []byte("fatal: no upstream configured\n"), err: errors.New("exit status 128")}
	q := Queries{Runner: rn, Git: "git", Verbosity: 2, Out: &out}
	if q.UpstreamExists(context.Background(), "orphan") {
		t.Fatalf("expected probe failure to mean no upstream")
	}
	if !strings.Contains(out.String(), "no upstream configured") {
		t.Fatalf("expected probe output at high verbosity, got %q", out.String())
	}
}

func TestDumpExists(t *testing.T) {
	dir := t.TempDir()
	q := Queries{Dir: dir}

	rel := filepath.Join(".ddev", ".downloads", "db.sql.gz")
	if q.DumpExists(rel) {
		t.Fatalf("expected missing dump")
	}

	full := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte("-- dump"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !q.DumpExists(rel) {
		t.Fatalf("expected dump to be found")
	}
}

func TestConfigDrift(t *testing.T) {
	rn := &fakeRunner{output: []byte("system.site\nnode.settings\n")}
	q := Queries{Runner: rn, DDEV: "ddev"}

	drift, err := q.ConfigDrift(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if drift != "system.site\nnode.settings" {
		t.Fatalf("unexpected drift: %q", drift)
	}
}

func TestConfigDriftInspectorFailure(t *testing.T) {
	rn := &fakeRunner{output: []byte("sql error"), err: errors.New("exit status 1")}
	q := Queries{Runner: rn, DDEV: "ddev"}

	if _, err := q.ConfigDrift(context.Background()); err == nil {
		t.Fatalf("expected inspector failure to propagate")
	}
}

type fakeDocker struct {
	containers []container.Summary
	err        error
}

func (f fakeDocker) ContainerList(context.Context, container.ListOptions) ([]container.Summary, error) {
	return f.containers, f.err
}

func TestStackInspectorRunning(t *testing.T) {
	inspector := StackInspector{
		Project: "mysite",
		Client: fakeDocker{containers: []container.Summary{
			{Names: []string{"/ddev-mysite-web"}, Labels: map[string]string{siteNameLabel: "mysite"}},
			{Names: []string{"/ddev-other-web"}, Labels: map[string]string{siteNameLabel: "other"}},
		}},
	}

	names, err := inspector.RunningContainers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "/ddev-mysite-web" {
		t.Fatalf("unexpected names: %v", names)
	}

	running, err := inspector.Running(context.Background())
	if err != nil || !running {
		t.Fatalf("expected running stack, got %v %v", running, err)
	}
}

func TestStackInspectorError(t *testing.T) {
	inspector := StackInspector{Project: "mysite", Client: fakeDocker{err: errors.New("daemon down")}}
	if _, err := inspector.Running(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
