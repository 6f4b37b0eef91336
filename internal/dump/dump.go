// Where: internal/dump/dump.go
// What: Database dump acquisition.
// Why: Implement the opaque "database download" collaborator behind one interface.
package dump

import (
	"context"
	"fmt"

	"github.com/hawkeyetwolf/ddev-refresh/internal/runner"
)

// Downloader fetches a database dump for the given branch into dest.
// The pipeline only observes success or failure.
type Downloader interface {
	Download(ctx context.Context, branch, dest string) error
}

// CommandDownloader delegates to an external command (e.g. ddev pull),
// which is expected to place the dump at the fixed path itself.
type CommandDownloader struct {
	Runner runner.CommandRunner
	Dir    string
	Argv   []string
}

// Download runs the configured external command.
func (d CommandDownloader) Download(ctx context.Context, _, _ string) error {
	if len(d.Argv) == 0 {
		return fmt.Errorf("no download command configured")
	}
	return d.Runner.Run(ctx, d.Dir, d.Argv[0], d.Argv[1:]...)
}
