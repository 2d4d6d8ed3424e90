package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spinup-cli/spinup/internal/config"
	"github.com/spinup-cli/spinup/internal/fsutil"
)

// dateFormat is the date layout used in generated documents.
const dateFormat = "2006-01-02"

// WriteRootFiles writes README.md, .env.example, LICENSE, and CHANGELOG.md
// at the project root. Existing files are left untouched.
func WriteRootFiles(root string, cfg config.ProjectConfig, licenseHolder string, now time.Time) error {
	files := map[string]string{
		"README.md":    renderReadme(cfg),
		".env.example": renderEnvExample(),
		"LICENSE":      renderLicense(licenseHolder, now),
		"CHANGELOG.md": renderChangelog(now),
	}
	for name, content := range files {
		if err := fsutil.WriteFile(filepath.Join(root, name), content, false); err != nil {
			return err
		}
	}
	return nil
}

// WriteDocs writes the four documentation templates under docs/.
// Existing files are left untouched.
func WriteDocs(root string, cfg config.ProjectConfig, now time.Time) error {
	docsRoot := filepath.Join(root, "docs")
	files := map[string]string{
		"project-brief.md": renderBrief(cfg),
		"roadmap.md":       renderRoadmap(),
		"dev-log.md":       renderDevLog(now),
		"decisions.md":     renderDecisions(),
	}
	for name, content := range files {
		if err := fsutil.WriteFile(filepath.Join(docsRoot, name), content, false); err != nil {
			return err
		}
	}
	return nil
}

func renderReadme(cfg config.ProjectConfig) string {
	return fmt.Sprintf(`# %s (%s)

Project type: **%s**
Template: **%s**

## Overview

> Describe in two or three sentences what this project solves, and for whom.

## Quick start

`+"```bash"+`
# TODO: fill in setup and run commands
`+"```"+`

## Layout

- `+"`docs/`"+`: project documentation (brief, roadmap, decision log)
- `+"`src/`"+`: source code
- `+"`tests/`"+`: tests
- `+"`scripts/`"+`: scripts and automation
- `+"`infra/`"+`: deployment and operations configuration
`, cfg.DisplayName, cfg.Name, cfg.Type, cfg.Template)
}

func renderEnvExample() string {
	return `# Environment variable examples (extend as the project needs)

# APP_ENV=development
# APP_DEBUG=true
`
}

func renderLicense(holder string, now time.Time) string {
	copyright := fmt.Sprintf("Copyright (c) %d", now.Year())
	if strings.TrimSpace(holder) != "" {
		copyright += " " + strings.TrimSpace(holder)
	}
	return fmt.Sprintf(`MIT License (placeholder, replace with the full licence text as needed)

%s
`, copyright)
}

func renderChangelog(now time.Time) string {
	return fmt.Sprintf(`# Changelog

## %s
- Project initialised from the spinup scaffold.
`, now.Format(dateFormat))
}

func renderBrief(cfg config.ProjectConfig) string {
	return fmt.Sprintf(`# Project Brief - %s (%s)

## 1. One-line pitch
> One or two sentences on the core problem this project solves.

## 2. The ONE success metric
- Example: 30 real users trying it within 30 days / 10 real transactions / 100 records captured

## 3. Target user
- Region:
- Age range:
- Occupation / role:
- Usage context:

## 4. Non-goals
- Scope explicitly excluded from this iteration, to keep the project from sprawling.

## 5. Core hypotheses the MVP must test
1.
2.

## 6. Estimated schedule & effort
- Estimated duration: %s weeks
- Available time per week: %s hours

## 7. Risk list (top 3)
1.
2.
3.
`, cfg.DisplayName, cfg.Name, cfg.DurationWeeks, cfg.HoursPerWeek)
}

func renderRoadmap() string {
	return `# Roadmap

> Plan only up to the MVP; extend based on feedback.

## Milestones

- M1: clickable demo (estimated 1-2 weeks)
- M2: first real-user test (estimated 2-4 weeks)
- M3: public launch & iteration (optional)

---

## M1 - Clickable demo

### 1. Core flow
- [ ]

### 2. Data & configuration
- [ ]

### 3. Operations & basic analytics
- [ ]

---

## M2 - Real-user testing

### 1. User entry & sign-up / login (if needed)
- [ ]

### 2. Key behaviour loop
- [ ]

### 3. Feedback collection
- [ ]

---

## M3 - Launch / iteration (optional)

- [ ]
`
}

func renderDevLog(now time.Time) string {
	return fmt.Sprintf(`# Dev Log

> Three lines a day keeps the retrospective easy.

## %s
- Done today:
  - Project initialised (scaffold created directories and docs)
- Problems hit:
  - None yet
- Most important thing tomorrow:
  - Get a minimal running environment / hello world
`, now.Format(dateFormat))
}

func renderDecisions() string {
	return `# Decisions Log

> Record significant architecture, technology, and product decisions for later review.

## YYYY-MM-DD - [Example decision title]
- Context:
- Options:
- Decision:
- Rationale:
- Consequences:
`
}
