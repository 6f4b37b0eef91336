// Where: internal/app/steps.go
// What: The fixed ordered step list for a refresh run.
// Why: Declare the whole sequence in one place; gates do the per-run pruning.
package app

import (
	"context"

	"github.com/hawkeyetwolf/ddev-refresh/internal/config"
	"github.com/hawkeyetwolf/ddev-refresh/internal/dump"
	"github.com/hawkeyetwolf/ddev-refresh/internal/environment"
)

// buildSteps assembles the outer pipeline. The order is static; only
// the gates vary per invocation. dumpDest is the absolute dump path
// handed to the downloader and the import command.
func buildSteps(
	opts Options,
	cfg config.Config,
	env environment.Queries,
	pipeline *Pipeline,
	downloader dump.Downloader,
	dumpDest string,
) []Step {
	branchGate := func(context.Context) bool { return canChangeBranch(opts) }

	return []Step{
		{
			Name: "fetch remote refs",
			Gate: branchGate,
			Argv: []string{cfg.Git, "fetch"},
		},
		{
			Name: "switch branch",
			Gate: branchGate,
			Argv: []string{cfg.Git, "checkout", opts.Branch},
		},
		{
			Name: "pull updates",
			Gate: func(ctx context.Context) bool {
				return canChangeBranch(opts) && canPullUpdates(ctx, opts, env)
			},
			Argv: []string{cfg.Git, "pull"},
		},
		{
			Name: "restart stack",
			Gate: func(context.Context) bool { return canRestart(opts) },
			Argv: []string{cfg.DDEV, "restart"},
		},
		{
			Name: "install dependencies",
			Gate: func(context.Context) bool { return canBuildDependencies(opts) },
			Argv: cfg.DependencyInstall,
		},
		{
			Name: "build assets",
			Gate: func(context.Context) bool { return canBuildAssets(opts) },
			Argv: cfg.AssetBuild,
		},
		{
			Name: "download database dump",
			Gate: func(context.Context) bool { return canImportDB(opts) && canDownloadDB(opts) },
			Run: func(ctx context.Context) error {
				return downloader.Download(ctx, opts.Branch, dumpDest)
			},
		},
		{
			Name: "import database",
			Gate: func(context.Context) bool { return canImportDB(opts) },
			Argv: []string{cfg.DDEV, "import-db", "--file=" + dumpDest},
		},
		{
			Name: "run updates",
			Gate: func(context.Context) bool { return canRunUpdate(opts) },
			Run: func(ctx context.Context) error {
				return pipeline.Execute(ctx, updateSteps(cfg, opts.Verbosity))
			},
		},
		{
			Name: "generate login link",
			Gate: func(context.Context) bool { return canLogin(opts) },
			Argv: drushArgv(cfg, opts.Verbosity, "user:login"),
		},
	}
}
