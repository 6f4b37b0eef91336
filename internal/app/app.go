// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Parse the invocation, admit steps, and drive the refresh pipeline.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/hawkeyetwolf/ddev-refresh/internal/config"
	"github.com/hawkeyetwolf/ddev-refresh/internal/dump"
	"github.com/hawkeyetwolf/ddev-refresh/internal/environment"
	"github.com/hawkeyetwolf/ddev-refresh/internal/interaction"
	"github.com/hawkeyetwolf/ddev-refresh/internal/runner"
	"github.com/hawkeyetwolf/ddev-refresh/internal/state"
	"github.com/hawkeyetwolf/ddev-refresh/internal/ui"
	"github.com/hawkeyetwolf/ddev-refresh/internal/version"
)

// Exit codes. A failing fail-fast step exits with the step's own status.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// CLI is the declarative flag table parsed by kong. Combined short
// flags (-AU), --name=value, and the -- terminator come for free.
type CLI struct {
	Branch string `arg:"" optional:"" help:"Branch to switch the environment to."`

	Verbose     int  `short:"v" type:"counter" help:"Increase verbosity (repeatable, passed through to drush)."`
	Yes         bool `short:"y" help:"Answer yes to every confirmation."`
	ImportDB    bool `name:"import-db" short:"i" help:"Import a fresh database dump."`
	ExistingSQL bool `name:"existing-sql" short:"e" help:"Reuse the previously downloaded dump (requires --import-db)."`
	NoGitPull   bool `name:"no-git-pull" short:"G" help:"Skip pulling branch updates."`
	NoRestart   bool `name:"no-restart" short:"R" help:"Skip restarting the stack."`
	NoComposer  bool `name:"no-composer" short:"C" help:"Skip installing dependencies."`
	NoAssets    bool `name:"no-assets" short:"A" help:"Skip building assets."`
	NoUpdate    bool `name:"no-update" short:"U" help:"Skip database and configuration updates."`
	NoLogin     bool `name:"no-login" short:"L" help:"Skip generating a one-time login link."`
	Version     bool `name:"version" help:"Print version and exit."`
}

// Dependencies holds the injected collaborators for a refresh run.
// Zero values fall back to production implementations.
type Dependencies struct {
	ProjectDir string
	Out        io.Writer
	Runner     runner.CommandRunner
	Confirmer  interaction.Confirmer
	Stack      StackInspector
	Downloader dump.Downloader
	Now        func() time.Time
}

// Run parses args, performs preflight validation and confirmations,
// and executes the refresh pipeline. The return value is the process
// exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	console := ui.New(out)

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("refresh"),
		kong.Description("Rebuild the local dev environment onto a branch."))
	if err != nil {
		fmt.Fprintln(out, err)
		return exitError
	}
	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintln(out, err)
		return exitUsage
	}

	if cli.Version {
		fmt.Fprintln(out, version.GetVersion())
		return exitOK
	}

	if deps.Runner == nil {
		deps.Runner = runner.ExecRunner{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	loadDotenv(deps.ProjectDir, console)

	cfg, err := config.Load(deps.ProjectDir)
	if err != nil {
		fmt.Fprintln(out, err)
		return exitUsage
	}

	opts := optionsFromCLI(cli)
	env := environment.Queries{
		Runner:    deps.Runner,
		Dir:       deps.ProjectDir,
		Git:       cfg.Git,
		DDEV:      cfg.DDEV,
		Verbosity: opts.Verbosity,
		Out:       out,
	}

	if err := validateOptions(opts, env, cfg.DumpPath); err != nil {
		fmt.Fprintln(out, err)
		return exitUsage
	}

	if opts.Verbosity > 0 {
		if record, err := state.Load(deps.ProjectDir); err == nil && !record.FinishedAt.IsZero() {
			console.Info(fmt.Sprintf("last refreshed to %q at %s",
				record.Branch, record.FinishedAt.Format(time.RFC3339)))
		}
	}

	ctx := context.Background()

	if err := checkStack(ctx, opts, deps.Stack, console); err != nil {
		fmt.Fprintln(out, err)
		return exitUsage
	}

	confirmer := deps.Confirmer
	if opts.SkipPrompts {
		confirmer = interaction.Auto{}
	} else if confirmer == nil {
		confirmer = interaction.Terminal{}
	}

	if err := confirmDestructive(ctx, opts, env, confirmer, out); err != nil {
		var declined *userDeclined
		if errors.As(err, &declined) {
			if declined.guidance != "" {
				console.Info(declined.guidance)
			}
			return exitOK
		}
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(out, usageErr)
			return exitUsage
		}
		fmt.Fprintln(out, err)
		return exitError
	}

	dumpDest := cfg.DumpPath
	if !filepath.IsAbs(dumpDest) {
		dumpDest = filepath.Join(deps.ProjectDir, dumpDest)
	}
	if opts.Verbosity > 0 && canImportDB(opts) && canUseExistingDump(opts) {
		console.Info(fmt.Sprintf("reusing existing dump at %s", dumpDest))
	}

	downloader := deps.Downloader
	if downloader == nil {
		downloader = newDownloader(cfg, deps)
	}

	pipeline := &Pipeline{
		Runner:    deps.Runner,
		Console:   console,
		Dir:       deps.ProjectDir,
		Verbosity: opts.Verbosity,
	}

	if err := pipeline.Execute(ctx, buildSteps(opts, cfg, env, pipeline, downloader, dumpDest)); err != nil {
		fmt.Fprintln(out, err)
		var stepErr *StepError
		if errors.As(err, &stepErr) {
			return stepErr.Status
		}
		return exitError
	}

	if err := state.Save(deps.ProjectDir, state.Record{Branch: opts.Branch, FinishedAt: deps.Now()}); err != nil {
		if opts.Verbosity > 0 {
			console.Warn(fmt.Sprintf("cannot record refresh state: %v", err))
		}
	}

	console.Success("environment refreshed")
	return exitOK
}

// newDownloader picks the dump source: S3 when configured, otherwise
// the project's external download command.
func newDownloader(cfg config.Config, deps Dependencies) dump.Downloader {
	if cfg.Dump != nil {
		return dump.NewS3Downloader(cfg.Dump.Bucket, cfg.Dump.KeyTemplate, cfg.Dump.Region, cfg.Dump.Endpoint)
	}
	return dump.CommandDownloader{Runner: deps.Runner, Dir: deps.ProjectDir, Argv: cfg.DownloadCommand}
}

// loadDotenv loads the project's .env when present, warning-only.
func loadDotenv(projectDir string, console *ui.Console) {
	path := filepath.Join(projectDir, ".env")
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		console.Warn(fmt.Sprintf("failed to load .env: %v", err))
	}
}
