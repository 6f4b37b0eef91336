// Where: internal/app/steps_test.go
// What: Tests for the fixed outer step list.
package app

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/hawkeyetwolf/ddev-refresh/internal/config"
	"github.com/hawkeyetwolf/ddev-refresh/internal/dump"
	"github.com/hawkeyetwolf/ddev-refresh/internal/environment"
)

func buildTestSteps(t *testing.T, opts Options, cfg config.Config) ([]Step, *fakeRunner) {
	t.Helper()
	rn := newFakeRunner()
	var out bytes.Buffer
	pipeline := newPipeline(rn, &out, opts.Verbosity)
	env := environment.Queries{Runner: rn, Git: cfg.Git, DDEV: cfg.DDEV}
	downloader := dump.CommandDownloader{Runner: rn, Argv: cfg.DownloadCommand}
	return buildSteps(opts, cfg, env, pipeline, downloader, "/project/db.sql.gz"), rn
}

func TestBuildStepsFixedOrder(t *testing.T) {
	steps, _ := buildTestSteps(t, Options{Branch: "main"}, config.Default())

	var names []string
	for _, step := range steps {
		names = append(names, step.Name)
	}
	want := []string{
		"fetch remote refs",
		"switch branch",
		"pull updates",
		"restart stack",
		"install dependencies",
		"build assets",
		"download database dump",
		"import database",
		"run updates",
		"generate login link",
	}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("unexpected order:\n got %v\nwant %v", names, want)
	}
}

func TestBuildStepsBranchGates(t *testing.T) {
	ctx := context.Background()

	steps, rn := buildTestSteps(t, Options{}, config.Default())
	for _, step := range steps[:3] {
		if step.Gate(ctx) {
			t.Fatalf("%s admitted without a branch", step.Name)
		}
	}
	if len(rn.queryCalls) != 0 {
		t.Fatalf("no branch means no upstream probe, got %v", rn.queryCalls)
	}

	steps, _ = buildTestSteps(t, Options{Branch: "main"}, config.Default())
	if got := strings.Join(steps[1].Argv, " "); got != "git checkout main" {
		t.Fatalf("unexpected checkout command: %s", got)
	}
}

func TestBuildStepsDownloadAndImportGates(t *testing.T) {
	ctx := context.Background()

	steps, _ := buildTestSteps(t, Options{ImportDB: true}, config.Default())
	download, importStep := steps[6], steps[7]
	if !download.Gate(ctx) || !importStep.Gate(ctx) {
		t.Fatalf("import requested: both dump steps must be admitted")
	}
	if got := strings.Join(importStep.Argv, " "); got != "ddev import-db --file=/project/db.sql.gz" {
		t.Fatalf("unexpected import command: %s", got)
	}

	steps, _ = buildTestSteps(t, Options{ImportDB: true, UseExistingSQL: true}, config.Default())
	if steps[6].Gate(ctx) {
		t.Fatalf("existing dump requested: download must be gated off")
	}
	if !steps[7].Gate(ctx) {
		t.Fatalf("existing dump requested: import must still run")
	}

	steps, _ = buildTestSteps(t, Options{}, config.Default())
	if steps[6].Gate(ctx) || steps[7].Gate(ctx) {
		t.Fatalf("no import requested: dump steps must be gated off")
	}
}

func TestBuildStepsHonorConfiguredCommands(t *testing.T) {
	cfg := config.Default()
	cfg.AssetBuild = []string{"ddev", "exec", "yarn", "build"}
	cfg.DependencyInstall = []string{"ddev", "composer", "install", "--no-dev"}

	steps, _ := buildTestSteps(t, Options{Branch: "main"}, cfg)
	if got := strings.Join(steps[5].Argv, " "); got != "ddev exec yarn build" {
		t.Fatalf("unexpected asset command: %s", got)
	}
	if got := strings.Join(steps[4].Argv, " "); got != "ddev composer install --no-dev" {
		t.Fatalf("unexpected dependency command: %s", got)
	}
}
