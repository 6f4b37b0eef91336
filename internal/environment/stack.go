// Where: internal/environment/stack.go
// What: Docker-based stack liveness inspection.
// Why: Detect a stopped ddev project before the pipeline assumes a running one.
package environment

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
)

// ddev labels every project container with the site name.
const siteNameLabel = "com.ddev.site-name"

// DockerClient defines the subset of Docker SDK methods used here.
// The interface enables mocking the Docker client in tests.
type DockerClient interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
}

// NewDockerClient constructs a Docker SDK client using environment defaults.
func NewDockerClient() (DockerClient, error) {
	return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
}

// StackInspector reports on the project's running containers.
type StackInspector struct {
	Client  DockerClient
	Project string
}

// Running reports whether at least one container of the project is up.
func (s StackInspector) Running(ctx context.Context) (bool, error) {
	containers, err := s.RunningContainers(ctx)
	if err != nil {
		return false, err
	}
	return len(containers) > 0, nil
}

// RunningContainers returns the names of the project's running containers.
func (s StackInspector) RunningContainers(ctx context.Context) ([]string, error) {
	labelFilter := filters.NewArgs()
	labelFilter.Add("label", fmt.Sprintf("%s=%s", siteNameLabel, s.Project))

	containers, err := s.Client.ContainerList(ctx, container.ListOptions{Filters: labelFilter})
	if err != nil {
		return nil, fmt.Errorf("list project containers: %w", err)
	}

	names := make([]string, 0, len(containers))
	for _, ctr := range containers {
		if ctr.Labels == nil || ctr.Labels[siteNameLabel] != s.Project {
			continue
		}
		if len(ctr.Names) > 0 {
			names = append(names, ctr.Names[0])
		}
	}
	return names, nil
}
