// Package meta records the resolved configuration of a scaffolded project
// in a machine-readable file at the project root, for later automation.
package meta

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spinup-cli/spinup/internal/config"
	"github.com/spinup-cli/spinup/internal/fsutil"
)

// SchemaVersion identifies the field layout of project_meta.json. External
// automation relies on the field set staying stable; bump this whenever it
// changes.
const SchemaVersion = "2.0"

// FileName is the metadata file written at the project root.
const FileName = "project_meta.json"

// Record is the JSON document persisted to project_meta.json.
type Record struct {
	ProjectName     string `json:"project_name"`
	ProjectCNName   string `json:"project_cn_name"`
	ProjectType     string `json:"project_type"`
	Template        string `json:"template"`
	DurationWeeks   string `json:"duration_weeks"`
	HoursPerWeek    string `json:"hours_per_week"`
	CreatedAt       string `json:"created_at"`
	ScaffoldVersion string `json:"scaffold_version"`
}

// Write serialises cfg plus a creation timestamp to project_meta.json at
// root, replacing any previous file. Unlike the other generated files, this
// one is always overwritten so it reflects the most recent scaffold run.
func Write(root string, cfg config.ProjectConfig, now time.Time) error {
	rec := Record{
		ProjectName:     cfg.Name,
		ProjectCNName:   cfg.DisplayName,
		ProjectType:     string(cfg.Type),
		Template:        string(cfg.Template),
		DurationWeeks:   cfg.DurationWeeks,
		HoursPerWeek:    cfg.HoursPerWeek,
		CreatedAt:       now.Format(time.RFC3339),
		ScaffoldVersion: SchemaVersion,
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project metadata: %w", err)
	}

	return fsutil.WriteFile(filepath.Join(root, FileName), string(data)+"\n", true)
}

// Load reads the metadata file from a project root.
func Load(root string) (*Record, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &rec, nil
}
