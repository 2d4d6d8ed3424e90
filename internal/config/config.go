// Package config provides the resolved project configuration for spinup.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ProjectConfig is the fully resolved configuration for one scaffold run.
// It is built once, before any file is written, and not mutated afterwards.
type ProjectConfig struct {
	// Name is the machine-readable project identifier, used as a path segment.
	Name string

	// DisplayName is the human-readable project name. Defaults to Name.
	DisplayName string

	// Type determines the shape of the src/ subtree.
	Type ProjectType

	// Template is the named bundle of additions applied on top of the base layout.
	Template Template

	// DurationWeeks and HoursPerWeek are free-form strings captured for the
	// project brief. They are deliberately not validated as numbers.
	DurationWeeks string
	HoursPerWeek  string

	// BaseDir is the directory under which the project root is created.
	BaseDir string
}

// Validate checks that the configuration is complete and every enumerated
// field is a member of its allowed set.
func (c *ProjectConfig) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if !IsValidType(string(c.Type)) {
		return fmt.Errorf("invalid project type %q, valid options: %s",
			c.Type, strings.Join(TypeNames(), ", "))
	}
	if !IsValidTemplate(string(c.Template)) {
		return fmt.Errorf("invalid template %q, valid options: %s",
			c.Template, strings.Join(TemplateNames(), ", "))
	}
	if strings.TrimSpace(c.BaseDir) == "" {
		return fmt.Errorf("base directory cannot be empty")
	}
	return nil
}

// Root returns the project root directory, BaseDir/Name.
func (c *ProjectConfig) Root() string {
	return filepath.Join(c.BaseDir, c.Name)
}
