package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"

	"github.com/spinup-cli/spinup/internal/config"
	"github.com/spinup-cli/spinup/internal/scaffold"
	"github.com/spinup-cli/spinup/internal/vcs"
)

func testConfig() config.ProjectConfig {
	return config.ProjectConfig{
		Name:          "demo-app",
		DisplayName:   "Demo App",
		Type:          config.TypeServiceAPI,
		Template:      config.TemplateDefault,
		DurationWeeks: "4",
		HoursPerWeek:  "20",
		BaseDir:       "/tmp/x",
	}
}

// newTestFormatter disables colour so assertions can match plain text.
func newTestFormatter(quiet bool) (*Formatter, *bytes.Buffer) {
	color.NoColor = true
	var buf bytes.Buffer
	f := NewFormatter(quiet, &buf)
	return f, &buf
}

func TestPrintBanner_ShowsConfiguration(t *testing.T) {
	f, buf := newTestFormatter(false)

	f.PrintBanner(testConfig())

	out := buf.String()
	for _, want := range []string{"spinup", "demo-app", "Demo App", "service-api", "default", "/tmp/x", "4 weeks, 20 hours/week"} {
		if !strings.Contains(out, want) {
			t.Errorf("banner should contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintBanner_OmitsDisplayNameWhenEqual(t *testing.T) {
	f, buf := newTestFormatter(false)
	cfg := testConfig()
	cfg.DisplayName = cfg.Name

	f.PrintBanner(cfg)

	if strings.Contains(buf.String(), "Display:") {
		t.Error("banner should omit the display line when it matches the project name")
	}
}

func TestPrintBanner_QuietSuppresses(t *testing.T) {
	f, buf := newTestFormatter(true)

	f.PrintBanner(testConfig())

	if buf.Len() != 0 {
		t.Errorf("quiet banner output = %q; want none", buf.String())
	}
}

func TestBoxLine_PadsToBannerWidth(t *testing.T) {
	line := boxLine("spinup")
	if got := ansi.StringWidth(line); got != bannerWidth+2 {
		t.Errorf("boxLine width = %d; want %d", got, bannerWidth+2)
	}
	if !strings.HasPrefix(line, "║") || !strings.HasSuffix(line, "║") {
		t.Errorf("boxLine %q should be framed", line)
	}
}

func TestPrintSummary_DefaultTemplateHintsRoadmap(t *testing.T) {
	f, buf := newTestFormatter(false)

	f.PrintSummary(&scaffold.Result{Root: "/tmp/x/demo-app"}, testConfig())

	out := buf.String()
	if !strings.Contains(out, "/tmp/x/demo-app") {
		t.Error("summary should contain the project location")
	}
	if !strings.Contains(out, "docs/roadmap.md") {
		t.Error("summary should hint at the roadmap for the default template")
	}
	if strings.Contains(out, "fintech-notes") {
		t.Error("summary should not mention fintech notes for the default template")
	}
}

func TestPrintSummary_FintechTemplateHintsNotes(t *testing.T) {
	f, buf := newTestFormatter(false)
	cfg := testConfig()
	cfg.Template = config.TemplateFintechDapp

	f.PrintSummary(&scaffold.Result{Root: "/tmp/x/demo-app"}, cfg)

	if !strings.Contains(buf.String(), "docs/fintech-notes.md") {
		t.Error("summary should hint at the fintech notes")
	}
}

func TestPrintSummary_QuietSuppresses(t *testing.T) {
	f, buf := newTestFormatter(true)

	f.PrintSummary(&scaffold.Result{Root: "/tmp/x/demo-app"}, testConfig())

	if buf.Len() != 0 {
		t.Errorf("quiet summary output = %q; want none", buf.String())
	}
}

func TestPrintVCSResult(t *testing.T) {
	tests := []struct {
		name string
		res  vcs.Result
		want string
	}{
		{"initialized", vcs.Result{Status: vcs.StatusInitialized}, "Initialised git repository"},
		{"existing", vcs.Result{Status: vcs.StatusExistingRepo}, "already a git repository"},
		{"no git", vcs.Result{Status: vcs.StatusNoGit, Warning: "git not found on PATH"}, "git not found"},
		{"failed", vcs.Result{Status: vcs.StatusFailed, Warning: "git commit failed"}, "git commit failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, buf := newTestFormatter(false)
			f.PrintVCSResult(tt.res)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q should contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWarnf_ShownEvenWhenQuiet(t *testing.T) {
	f, buf := newTestFormatter(true)

	f.Warnf("something went %s", "sideways")

	if !strings.Contains(buf.String(), "Warning: something went sideways") {
		t.Errorf("Warnf output = %q", buf.String())
	}
}

func TestInfof_SuppressedWhenQuiet(t *testing.T) {
	f, buf := newTestFormatter(true)

	f.Infof("details")

	if buf.Len() != 0 {
		t.Errorf("quiet Infof output = %q; want none", buf.String())
	}
}
