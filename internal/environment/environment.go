// Where: internal/environment/environment.go
// What: Live dev-stack fact queries.
// Why: Gates need fresh environment state, fetched exactly when asked for.
package environment

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hawkeyetwolf/ddev-refresh/internal/runner"
)

// Queries answers questions about the live environment. Nothing is
// cached: each call re-reads the underlying state.
type Queries struct {
	Runner    runner.CommandRunner
	Dir       string
	Git       string
	DDEV      string
	Verbosity int
	Out       io.Writer
}

// UpstreamExists reports whether the branch has a remote-tracking
// counterpart. Any probe failure (no upstream, detached HEAD, network
// trouble) counts as "no upstream"; the raw output is surfaced at
// verbosity >= 2 so an operator can tell the causes apart.
func (q Queries) UpstreamExists(ctx context.Context, branch string) bool {
	out, err := q.Runner.RunOutput(ctx, q.Dir, q.Git,
		"rev-parse", "--abbrev-ref", "--symbolic-full-name", branch+"@{upstream}")
	if err != nil {
		if q.Verbosity >= 2 && q.Out != nil {
			fmt.Fprintf(q.Out, "upstream probe for %q failed: %s\n", branch, strings.TrimSpace(string(out)))
		}
		return false
	}
	return true
}

// DumpExists reports whether a previously downloaded dump is present
// at path (resolved against the project directory when relative).
func (q Queries) DumpExists(path string) bool {
	if !filepath.IsAbs(path) {
		path = filepath.Join(q.Dir, path)
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ConfigDrift returns the list of configuration entities that diverge
// between the live site and the code, one per line. An empty string
// means no drift. A failing inspector command is returned as an error
// with its output attached.
func (q Queries) ConfigDrift(ctx context.Context) (string, error) {
	out, err := q.Runner.RunOutput(ctx, q.Dir, q.DDEV, "drush", "config:status", "--format=list")
	if err != nil {
		return "", fmt.Errorf("inspect configuration drift: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}
