// Package output provides formatted terminal output for spinup.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"

	"github.com/spinup-cli/spinup/internal/config"
	"github.com/spinup-cli/spinup/internal/scaffold"
	"github.com/spinup-cli/spinup/internal/vcs"
)

// bannerWidth is the inner width of the banner box.
const bannerWidth = 63

// Formatter handles formatted output for spinup.
type Formatter struct {
	quiet   bool
	noColor bool
	writer  io.Writer
}

// NewFormatter creates a new Formatter writing to w.
// It checks the NO_COLOR environment variable to determine if colour output
// should be disabled.
func NewFormatter(quiet bool, w io.Writer) *Formatter {
	noColor := os.Getenv("NO_COLOR") != ""

	if noColor {
		color.NoColor = true
	}

	return &Formatter{
		quiet:   quiet,
		noColor: noColor,
		writer:  w,
	}
}

// PrintBanner prints the run header with the resolved configuration.
func (f *Formatter) PrintBanner(cfg config.ProjectConfig) {
	if f.quiet {
		return
	}

	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite)

	_, _ = cyan.Fprintln(f.writer, "╔"+strings.Repeat("═", bannerWidth)+"╗")
	_, _ = cyan.Fprintln(f.writer, boxLine("spinup - project scaffold"))
	_, _ = cyan.Fprintln(f.writer, "╚"+strings.Repeat("═", bannerWidth)+"╝")
	_, _ = fmt.Fprintln(f.writer, "")

	_, _ = white.Fprintf(f.writer, "  Project:     %s\n", cfg.Name)
	if cfg.DisplayName != cfg.Name {
		_, _ = white.Fprintf(f.writer, "  Display:     %s\n", cfg.DisplayName)
	}
	_, _ = white.Fprintf(f.writer, "  Type:        %s\n", cfg.Type)
	_, _ = white.Fprintf(f.writer, "  Template:    %s\n", cfg.Template)
	_, _ = white.Fprintf(f.writer, "  Base dir:    %s\n", cfg.BaseDir)
	_, _ = white.Fprintf(f.writer, "  Effort:      %s weeks, %s hours/week\n", cfg.DurationWeeks, cfg.HoursPerWeek)
	_, _ = fmt.Fprintln(f.writer, "")
}

// boxLine centres text within the banner box. The padding is computed from
// the rendered cell width, not the byte length, so styled or wide text
// still lines up.
func boxLine(text string) string {
	width := ansi.StringWidth(text)
	if width > bannerWidth {
		return "║" + text + "║"
	}
	left := (bannerWidth - width) / 2
	right := bannerWidth - width - left
	return "║" + strings.Repeat(" ", left) + text + strings.Repeat(" ", right) + "║"
}

// PrintVCSResult reports the outcome of repository initialisation.
func (f *Formatter) PrintVCSResult(res vcs.Result) {
	switch res.Status {
	case vcs.StatusInitialized:
		f.Successf("Initialised git repository with an initial commit")
	case vcs.StatusExistingRepo:
		f.Infof("Directory is already a git repository, skipping git init")
	case vcs.StatusNoGit, vcs.StatusFailed:
		f.Warnf("%s", res.Warning)
	}
}

// PrintSummary prints the result of a completed scaffold run and suggests
// next steps.
func (f *Formatter) PrintSummary(res *scaffold.Result, cfg config.ProjectConfig) {
	if f.quiet {
		return
	}

	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite)

	_, _ = fmt.Fprintln(f.writer, "")
	_, _ = cyan.Fprintln(f.writer, "Project scaffolded:")
	_, _ = white.Fprintf(f.writer, "  Location:  %s\n", res.Root)
	_, _ = white.Fprintf(f.writer, "  Type:      %s\n", cfg.Type)
	_, _ = white.Fprintf(f.writer, "  Template:  %s\n", cfg.Template)
	_, _ = fmt.Fprintln(f.writer, "")

	_, _ = cyan.Fprintln(f.writer, "Next steps:")
	_, _ = white.Fprintln(f.writer, "  1. Fill in docs/project-brief.md")
	if cfg.Template == config.TemplateFintechDapp {
		_, _ = white.Fprintln(f.writer, "  2. Review docs/fintech-notes.md and pin down the business model")
	} else {
		_, _ = white.Fprintln(f.writer, "  2. Write the concrete M1 items in docs/roadmap.md")
	}
	_, _ = white.Fprintln(f.writer, "  3. Pick the stack and get a hello-world running")
	_, _ = fmt.Fprintln(f.writer, "")
}

// Warnf prints a warning message. Warnings are shown even in quiet mode.
func (f *Formatter) Warnf(format string, args ...any) {
	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintf(f.writer, "Warning: "+format+"\n", args...)
}

// Infof prints an informational message, suppressed in quiet mode.
func (f *Formatter) Infof(format string, args ...any) {
	if f.quiet {
		return
	}
	_, _ = fmt.Fprintf(f.writer, format+"\n", args...)
}

// Successf prints a success message, suppressed in quiet mode.
func (f *Formatter) Successf(format string, args ...any) {
	if f.quiet {
		return
	}
	green := color.New(color.FgGreen)
	_, _ = green.Fprintf(f.writer, format+"\n", args...)
}
