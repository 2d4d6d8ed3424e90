package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	spinerrors "github.com/spinup-cli/spinup/internal/errors"
	"github.com/spinup-cli/spinup/internal/meta"
	"github.com/spinup-cli/spinup/internal/testhelpers"
)

// execute runs the root command with args and scripted stdin, resetting
// the package-level flag state afterwards.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags() {
	typeFlag = ""
	displayName = ""
	templateFlag = ""
	baseDir = ""
	durationFlag = ""
	hoursFlag = ""
	configFile = ""
	noGit = false
	quiet = false
}

func TestRootCommand_ScaffoldsWithFlags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir, root := testhelpers.ProjectDir(t, "demo-app")

	out, err := execute(t, "",
		"demo-app",
		"--type", "service-api",
		"--template", "default",
		"--base-dir", dir,
		"--duration", "4",
		"--hours", "20",
		"--no-git",
	)
	if err != nil {
		t.Fatalf("Execute() error = %v\noutput:\n%s", err, out)
	}

	for _, path := range []string{
		"README.md", "project_meta.json", "docs/project-brief.md", "src/app",
	} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(path))); err != nil {
			t.Errorf("expected %s: %v", path, err)
		}
	}

	rec, err := meta.Load(root)
	if err != nil {
		t.Fatalf("meta.Load() error = %v", err)
	}
	if rec.ProjectType != "service-api" {
		t.Errorf("recorded type = %q", rec.ProjectType)
	}

	if !strings.Contains(out, "demo-app") {
		t.Errorf("output should mention the project, got:\n%s", out)
	}
}

func TestRootCommand_QuietSuppressesBanner(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir, _ := testhelpers.ProjectDir(t, "demo-app")

	out, err := execute(t, "",
		"demo-app",
		"-t", "tool-script",
		"--template", "default",
		"-d", dir,
		"--duration", "4",
		"--hours", "20",
		"--no-git",
		"-q",
	)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Contains(out, "╔") {
		t.Errorf("quiet run should not print the banner, got:\n%s", out)
	}
}

func TestRootCommand_NonEmptyTargetDeclined(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir, root := testhelpers.ProjectDir(t, "demo-app")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create root: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "keep.txt"), []byte("mine\n"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	_, err := execute(t, "n\n",
		"demo-app",
		"-t", "service-api",
		"--template", "default",
		"-d", dir,
		"--duration", "4",
		"--hours", "20",
		"--no-git",
	)
	if !errors.Is(err, spinerrors.ErrCancelled) {
		t.Fatalf("Execute() error = %v; want ErrCancelled", err)
	}

	// Declining must leave the directory untouched.
	if _, err := os.Stat(filepath.Join(root, "project_meta.json")); !os.IsNotExist(err) {
		t.Error("declined run must not write project_meta.json")
	}
}

func TestRootCommand_NonEmptyTargetConfirmed(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir, root := testhelpers.ProjectDir(t, "demo-app")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create root: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "keep.txt"), []byte("mine\n"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	out, err := execute(t, "y\n",
		"demo-app",
		"-t", "service-api",
		"--template", "default",
		"-d", dir,
		"--duration", "4",
		"--hours", "20",
		"--no-git",
	)
	if err != nil {
		t.Fatalf("Execute() error = %v\noutput:\n%s", err, out)
	}

	if _, err := os.Stat(filepath.Join(root, "project_meta.json")); err != nil {
		t.Errorf("confirmed run should scaffold: %v", err)
	}
	if data, err := os.ReadFile(filepath.Join(root, "keep.txt")); err != nil || string(data) != "mine\n" {
		t.Errorf("existing files must survive: %v %q", err, data)
	}
}

func TestRootCommand_RejectsExtraArgs(t *testing.T) {
	_, err := execute(t, "", "one", "two")
	if err == nil {
		t.Error("Execute() = nil error for two positional arguments")
	}
}
