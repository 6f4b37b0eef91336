// Where: internal/app/update.go
// What: The nested CMS maintenance sequence.
// Why: Declare the double config-import as per-step policy, not control flow.
package app

import (
	"strings"

	"github.com/hawkeyetwolf/ddev-refresh/internal/config"
)

// verbosityFlag renders the repeated-letter verbosity argument passed
// to drush child commands, e.g. level 2 -> "-vv". Capped at three.
func verbosityFlag(level int) string {
	if level <= 0 {
		return ""
	}
	if level > 3 {
		level = 3
	}
	return "-" + strings.Repeat("v", level)
}

// drushArgv builds a drush invocation through ddev, carrying verbosity.
func drushArgv(cfg config.Config, verbosity int, args ...string) []string {
	argv := append([]string{cfg.DDEV, "drush"}, args...)
	if flag := verbosityFlag(verbosity); flag != "" {
		argv = append(argv, flag)
	}
	return argv
}

// updateSteps is the fixed inner sequence run as one gated outer step.
//
// Config import runs twice: dependency-declaration gaps between config
// entities can make a single pass under-apply, and a second pass is
// idempotent. The first pass tolerates failure; the second is the
// authoritative one. Database updates then run again with post-update
// hooks included, with no cache clear in between.
func updateSteps(cfg config.Config, verbosity int) []Step {
	return []Step{
		{
			Name: "clear cache bin",
			Argv: drushArgv(cfg, verbosity, "cache:clear", "bin", cfg.CacheBin),
		},
		{
			Name: "apply database updates",
			Argv: drushArgv(cfg, verbosity, "updatedb", "--no-post-updates", "-y"),
		},
		{
			Name:   "import configuration (first pass)",
			Argv:   drushArgv(cfg, verbosity, "config:import", "-y"),
			Policy: BestEffort,
		},
		{
			Name: "import configuration",
			Argv: drushArgv(cfg, verbosity, "config:import", "-y"),
		},
		{
			Name: "apply post-update hooks",
			Argv: drushArgv(cfg, verbosity, "updatedb", "-y"),
		},
		{
			Name: "rebuild caches",
			Argv: drushArgv(cfg, verbosity, "cache:rebuild"),
		},
	}
}
