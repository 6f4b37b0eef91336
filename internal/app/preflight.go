// Where: internal/app/preflight.go
// What: Pre-pipeline validation and confirmation gates.
// Why: Every destructive decision happens before the first step runs.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/hawkeyetwolf/ddev-refresh/internal/environment"
	"github.com/hawkeyetwolf/ddev-refresh/internal/interaction"
	"github.com/hawkeyetwolf/ddev-refresh/internal/ui"
)

// StackInspector reports whether the project's containers are up.
type StackInspector interface {
	Running(ctx context.Context) (bool, error)
}

// userDeclined marks an explicit operator opt-out. It ends the run
// with a zero exit status.
type userDeclined struct {
	guidance string
}

func (e *userDeclined) Error() string { return "aborted by operator" }

// checkStack aborts when the operator asked to skip the restart but no
// project container is running: every subsequent stack command would
// fail anyway. An unreachable docker daemon only degrades to a verbose
// warning, since the stack may be managed by other means.
func checkStack(ctx context.Context, opts Options, stack StackInspector, console *ui.Console) error {
	if stack == nil || !opts.SkipRestart {
		return nil
	}
	running, err := stack.Running(ctx)
	if err != nil {
		if opts.Verbosity > 0 {
			console.Warn(fmt.Sprintf("cannot inspect stack containers: %v", err))
		}
		return nil
	}
	if !running {
		return usageErrorf("the stack is not running; re-run without --no-restart")
	}
	return nil
}

// confirmDestructive walks the confirmation decision points in order.
// Each fires at most once, and only when its preconditions hold.
func confirmDestructive(
	ctx context.Context,
	opts Options,
	env environment.Queries,
	confirmer interaction.Confirmer,
	out io.Writer,
) error {
	// Updating against a drifted configuration discards the drift; with
	// --import-db the import supersedes it, so no question is needed.
	if canRunUpdate(opts) && !opts.ImportDB {
		drift, err := env.ConfigDrift(ctx)
		if err != nil {
			// A failing inspector means code and database no longer
			// match; that is unrecoverable without --import-db.
			return usageErrorf("%v\nthe code and database appear incompatible; try --import-db", err)
		}
		if drift != "" {
			fmt.Fprintln(out, "The live configuration differs from the configuration in code:")
			fmt.Fprintln(out, drift)
			ok, err := confirmer.Confirm("Discard these configuration changes?")
			if err != nil {
				return err
			}
			if !ok {
				return &userDeclined{guidance: "Export the changes first (drush config:export), then re-run."}
			}
		}
	}

	if opts.ImportDB {
		ok, err := confirmer.Confirm("Importing the database will discard local content changes. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			return &userDeclined{guidance: "Re-run without --import-db to keep the local database."}
		}
	}

	return nil
}
