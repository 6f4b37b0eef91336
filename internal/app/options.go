// Where: internal/app/options.go
// What: The immutable per-invocation configuration record.
// Why: Collect all flag state into one value passed explicitly to gates and steps.
package app

import "github.com/hawkeyetwolf/ddev-refresh/internal/environment"

// Options is built once from the parsed command line and never mutated.
type Options struct {
	Branch         string
	Verbosity      int
	SkipPrompts    bool
	ImportDB       bool
	UseExistingSQL bool
	SkipGitPull    bool
	SkipRestart    bool
	SkipComposer   bool
	SkipAssets     bool
	SkipUpdate     bool
	SkipLogin      bool
}

func optionsFromCLI(cli CLI) Options {
	return Options{
		Branch:         cli.Branch,
		Verbosity:      cli.Verbose,
		SkipPrompts:    cli.Yes,
		ImportDB:       cli.ImportDB,
		UseExistingSQL: cli.ExistingSQL,
		SkipGitPull:    cli.NoGitPull,
		SkipRestart:    cli.NoRestart,
		SkipComposer:   cli.NoComposer,
		SkipAssets:     cli.NoAssets,
		SkipUpdate:     cli.NoUpdate,
		SkipLogin:      cli.NoLogin,
	}
}

// validateOptions enforces flag-combination invariants after parsing.
// Flag combinations are checked here, not during parsing, so kong's
// flag table stays purely declarative.
func validateOptions(opts Options, env environment.Queries, dumpPath string) error {
	if opts.UseExistingSQL && !opts.ImportDB {
		return usageErrorf("--existing-sql requires --import-db")
	}
	if opts.ImportDB && opts.UseExistingSQL && !env.DumpExists(dumpPath) {
		return usageErrorf("--existing-sql: no previously downloaded dump at %s", dumpPath)
	}
	return nil
}
