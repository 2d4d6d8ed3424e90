package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Defaults represents optional per-user defaults loaded from the spinup
// configuration file. Every field is optional; empty fields fall back to
// the built-in defaults.
type Defaults struct {
	// DefaultType pre-selects the project type prompt.
	DefaultType string `toml:"default_type"`

	// DefaultTemplate pre-selects the template prompt.
	DefaultTemplate string `toml:"default_template"`

	// BaseDir is used instead of the current working directory.
	BaseDir string `toml:"base_dir"`

	// DurationWeeks and HoursPerWeek pre-fill the effort prompts.
	DurationWeeks string `toml:"duration_weeks"`
	HoursPerWeek  string `toml:"hours_per_week"`

	// LicenseHolder is interpolated into the generated LICENSE placeholder.
	LicenseHolder string `toml:"license_holder"`
}

// DefaultsPath returns the default location of the configuration file,
// <user config dir>/spinup/config.toml.
func DefaultsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "spinup", "config.toml"), nil
}

// LoadDefaults reads the defaults file from its default location.
// Returns nil if the file doesn't exist (not an error).
func LoadDefaults() (*Defaults, error) {
	path, err := DefaultsPath()
	if err != nil {
		return nil, err
	}
	return LoadDefaultsFrom(path)
}

// LoadDefaultsFrom reads a defaults file from a specific path.
// Returns nil if the file doesn't exist (not an error).
func LoadDefaultsFrom(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var d Defaults
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid defaults in %s: %w", path, err)
	}

	return &d, nil
}

// Validate checks that any enumerated defaults are members of their sets.
func (d *Defaults) Validate() error {
	if d.DefaultType != "" && !IsValidType(d.DefaultType) {
		return fmt.Errorf("invalid default_type %q, valid options: %s",
			d.DefaultType, strings.Join(TypeNames(), ", "))
	}
	if d.DefaultTemplate != "" && !IsValidTemplate(d.DefaultTemplate) {
		return fmt.Errorf("invalid default_template %q, valid options: %s",
			d.DefaultTemplate, strings.Join(TemplateNames(), ", "))
	}
	return nil
}
