// Where: internal/state/state.go
// What: Last-refresh state persistence.
// Why: Remember what the environment was last refreshed to.
package state

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

const fileName = ".refresh-state.json"

// Record captures the outcome of the last fully successful refresh.
type Record struct {
	Branch     string    `json:"branch,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
}

func statePath(projectDir string) string {
	return filepath.Join(projectDir, ".ddev", fileName)
}

// Load reads the record for the project. A missing file yields a zero
// Record and no error.
func Load(projectDir string) (Record, error) {
	payload, err := os.ReadFile(statePath(projectDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, nil
		}
		return Record{}, err
	}
	var record Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return Record{}, err
	}
	return record, nil
}

// Save writes the record, creating the .ddev directory if needed.
func Save(projectDir string, record Record) error {
	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	path := statePath(projectDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}
