package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spinup-cli/spinup/internal/config"
	"github.com/spinup-cli/spinup/internal/picker"
	"github.com/spinup-cli/spinup/internal/prompt"
)

// flagValues carries the raw command-line inputs into resolution.
type flagValues struct {
	name        string
	displayName string
	projectType string
	template    string
	baseDir     string
	duration    string
	hours       string
	configFile  string
}

var typeHints = map[string]string{
	"web-app":     "frontend + backend + shared",
	"service-api": "app + core + adapters",
	"tool-script": "cli + core",
}

var templateHints = map[string]string{
	"default":      "base layout only",
	"fintech-dapp": "fintech dirs, compose example, business notes",
}

// resolveConfig merges flags, the optional defaults file, and interactive
// prompts into a validated ProjectConfig. Resolution completes before any
// file is written, so a cancelled prompt never leaves a partial project.
// The second return value is the licence holder from the defaults file.
func resolveConfig(flags flagValues, p *prompt.Prompter, interactive bool) (*config.ProjectConfig, string, error) {
	defaults, err := loadDefaults(flags.configFile)
	if err != nil {
		return nil, "", err
	}

	name := flags.name
	if name == "" {
		name, err = p.Ask("Project name (machine readable, e.g. fintech-x-app)", "")
		if err != nil {
			return nil, "", err
		}
	}

	display := flags.displayName
	if display == "" {
		display, err = p.Ask("Display name", name)
		if err != nil {
			return nil, "", err
		}
	}

	projectType := flags.projectType
	if projectType == "" {
		projectType, err = chooseEnum(p, interactive, "Project type", config.TypeNames(), defaults.DefaultType, typeHints)
		if err != nil {
			return nil, "", err
		}
	} else if !config.IsValidType(projectType) {
		return nil, "", fmt.Errorf("invalid project type %q, valid options: %s",
			projectType, strings.Join(config.TypeNames(), ", "))
	}

	templateName := flags.template
	if templateName == "" {
		def := defaults.DefaultTemplate
		if def == "" {
			def = string(config.DefaultTemplate)
		}
		templateName, err = chooseEnum(p, interactive, "Template", config.TemplateNames(), def, templateHints)
		if err != nil {
			return nil, "", err
		}
	} else if !config.IsValidTemplate(templateName) {
		return nil, "", fmt.Errorf("invalid template %q, valid options: %s",
			templateName, strings.Join(config.TemplateNames(), ", "))
	}

	base := flags.baseDir
	if base == "" {
		base = defaults.BaseDir
	}
	if base == "" {
		base, err = os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("failed to determine working directory: %w", err)
		}
	}

	duration := flags.duration
	if duration == "" {
		def := defaults.DurationWeeks
		if def == "" {
			def = "4"
		}
		duration, err = p.Ask("Estimated duration (weeks)", def)
		if err != nil {
			return nil, "", err
		}
	}

	hours := flags.hours
	if hours == "" {
		def := defaults.HoursPerWeek
		if def == "" {
			def = "20"
		}
		hours, err = p.Ask("Available hours per week", def)
		if err != nil {
			return nil, "", err
		}
	}

	cfg := &config.ProjectConfig{
		Name:          name,
		DisplayName:   display,
		Type:          config.ProjectType(projectType),
		Template:      config.Template(templateName),
		DurationWeeks: duration,
		HoursPerWeek:  hours,
		BaseDir:       base,
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, defaults.LicenseHolder, nil
}

// loadDefaults reads the defaults file. An explicit --config path must
// exist; the default location is optional.
func loadDefaults(path string) (*config.Defaults, error) {
	if path != "" {
		d, err := config.LoadDefaultsFrom(path)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, fmt.Errorf("defaults file not found: %s", path)
		}
		return d, nil
	}

	d, err := config.LoadDefaults()
	if err != nil {
		return nil, err
	}
	if d == nil {
		d = &config.Defaults{}
	}
	return d, nil
}

// chooseEnum asks for one member of choices, using the picker on
// interactive terminals and the line prompter otherwise.
func chooseEnum(p *prompt.Prompter, interactive bool, title string, choices []string, def string, hints map[string]string) (string, error) {
	if interactive {
		options := make([]picker.Option, len(choices))
		for i, c := range choices {
			options[i] = picker.Option{Value: c, Hint: hints[c]}
		}
		return picker.Run(title, options, def)
	}
	return p.AskChoice(title, choices, def)
}
