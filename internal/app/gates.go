// Where: internal/app/gates.go
// What: Admission predicates for pipeline steps.
// Why: Keep every step's "may this run" decision locally readable and testable.
package app

import "context"

// UpstreamProber answers whether a branch has a remote-tracking
// counterpart. It is the only environment read a gate performs,
// and it is never cached.
type UpstreamProber interface {
	UpstreamExists(ctx context.Context, branch string) bool
}

func canChangeBranch(opts Options) bool {
	return opts.Branch != ""
}

// canPullUpdates short-circuits on the flag so --no-git-pull never
// triggers the upstream probe.
func canPullUpdates(ctx context.Context, opts Options, prober UpstreamProber) bool {
	return !opts.SkipGitPull && prober.UpstreamExists(ctx, opts.Branch)
}

func canRestart(opts Options) bool {
	return !opts.SkipRestart
}

func canBuildDependencies(opts Options) bool {
	return !opts.SkipComposer
}

func canBuildAssets(opts Options) bool {
	return !opts.SkipAssets
}

func canImportDB(opts Options) bool {
	return opts.ImportDB
}

func canDownloadDB(opts Options) bool {
	return !opts.UseExistingSQL
}

func canUseExistingDump(opts Options) bool {
	return opts.UseExistingSQL
}

func canRunUpdate(opts Options) bool {
	return !opts.SkipUpdate
}

func canLogin(opts Options) bool {
	return !opts.SkipLogin
}
