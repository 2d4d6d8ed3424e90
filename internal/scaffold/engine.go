package scaffold

import (
	"fmt"
	"os"
	"time"

	"github.com/spinup-cli/spinup/internal/config"
	"github.com/spinup-cli/spinup/internal/meta"
	"github.com/spinup-cli/spinup/internal/template"
)

// Options carries run knobs that are not part of the resolved project
// configuration.
type Options struct {
	// LicenseHolder is interpolated into the generated LICENSE placeholder.
	// May be empty.
	LicenseHolder string

	// Now is the timestamp used for dated content and metadata.
	// Zero means time.Now().
	Now time.Time
}

// Result reports what a scaffold run produced.
type Result struct {
	// Root is the project root directory that was scaffolded.
	Root string

	// Dirs is the relative directory plan that was applied.
	Dirs []string
}

// Run creates the complete project tree for cfg: directories, root files,
// documentation, template additions, and the metadata record. The
// configuration must already be validated; Run performs no prompting and no
// version-control work.
func Run(cfg config.ProjectConfig, opts Options) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	root := cfg.Root()
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create project root %s: %w", root, err)
	}

	if err := CreateDirectories(root, cfg.Type); err != nil {
		return nil, err
	}
	if err := WriteRootFiles(root, cfg, opts.LicenseHolder, opts.Now); err != nil {
		return nil, err
	}
	if err := WriteDocs(root, cfg, opts.Now); err != nil {
		return nil, err
	}
	if err := template.Apply(root, cfg); err != nil {
		return nil, err
	}
	if err := meta.Write(root, cfg, opts.Now); err != nil {
		return nil, err
	}

	return &Result{
		Root: root,
		Dirs: PlanDirectories(cfg.Type),
	}, nil
}
