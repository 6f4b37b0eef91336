// Where: cmd/refresh/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"path/filepath"

	"github.com/hawkeyetwolf/ddev-refresh/internal/app"
	"github.com/hawkeyetwolf/ddev-refresh/internal/environment"
	"github.com/hawkeyetwolf/ddev-refresh/internal/interaction"
	"github.com/hawkeyetwolf/ddev-refresh/internal/runner"
)

var (
	getwd           = os.Getwd
	newDockerClient = environment.NewDockerClient
)

// buildDependencies constructs the runtime collaborators for a refresh
// run in the current working directory.
func buildDependencies() (app.Dependencies, error) {
	projectDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	deps := app.Dependencies{
		ProjectDir: projectDir,
		Out:        os.Stdout,
		Runner:     runner.ExecRunner{},
		Confirmer:  interaction.Terminal{},
	}

	// ddev names the site after the project directory unless overridden.
	if client, err := newDockerClient(); err == nil {
		deps.Stack = environment.StackInspector{
			Client:  client,
			Project: filepath.Base(projectDir),
		}
	}

	return deps, nil
}
