// Where: internal/config/config.go
// What: Project-level refresh configuration (.refresh.yaml).
// Why: Let projects override tool commands without patching the binary.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project configuration file.
const FileName = ".refresh.yaml"

// Config captures per-project command overrides. Every field has a
// working default; an absent file yields Default().
type Config struct {
	Git               string      `yaml:"git" json:"git,omitempty"`
	DDEV              string      `yaml:"ddev" json:"ddev,omitempty"`
	CacheBin          string      `yaml:"cacheBin" json:"cacheBin,omitempty"`
	DumpPath          string      `yaml:"dumpPath" json:"dumpPath,omitempty"`
	AssetBuild        []string    `yaml:"assetBuild" json:"assetBuild,omitempty"`
	DependencyInstall []string    `yaml:"dependencyInstall" json:"dependencyInstall,omitempty"`
	DownloadCommand   []string    `yaml:"downloadCommand" json:"downloadCommand,omitempty"`
	Dump              *DumpSource `yaml:"dump" json:"dump,omitempty"`
}

// DumpSource configures S3-backed dump retrieval. When absent, the
// download step falls back to DownloadCommand.
type DumpSource struct {
	Bucket      string `yaml:"bucket" json:"bucket"`
	Region      string `yaml:"region" json:"region,omitempty"`
	KeyTemplate string `yaml:"keyTemplate" json:"keyTemplate,omitempty"`
	Endpoint    string `yaml:"endpoint" json:"endpoint,omitempty"`
}

// Default returns the configuration used when no .refresh.yaml exists.
func Default() Config {
	return Config{
		Git:               "git",
		DDEV:              "ddev",
		CacheBin:          "default",
		DumpPath:          filepath.Join(".ddev", ".downloads", "db.sql.gz"),
		AssetBuild:        []string{"ddev", "exec", "npm", "run", "build"},
		DependencyInstall: []string{"ddev", "composer", "install"},
		DownloadCommand:   []string{"ddev", "pull", "upstream", "--skip-import", "-y"},
	}
}

// Load reads and validates the project configuration from dir.
// A missing file is not an error; a malformed one is.
func Load(dir string) (Config, error) {
	path := filepath.Join(dir, FileName)
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read %s: %w", FileName, err)
	}

	if err := validate(payload); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", FileName, err)
	}
	return cfg, nil
}
