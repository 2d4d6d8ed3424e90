// Package vcs provides best-effort git initialisation for scaffolded
// projects. Every outcome is reported through a Result rather than an
// error: the generated file tree is the deliverable, version control is
// optional on top of it.
package vcs

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// gitCommandTimeout is the maximum time a git command can run before being killed.
const gitCommandTimeout = 30 * time.Second

// CommitMessage is the fixed message used for the scaffold's initial commit.
const CommitMessage = "chore: init project from spinup scaffold"

// Status describes the outcome of repository initialisation.
type Status int

const (
	// StatusInitialized means a repository was created with an initial commit.
	StatusInitialized Status = iota

	// StatusNoGit means no git binary was found on PATH.
	StatusNoGit

	// StatusExistingRepo means the project root already contains a repository.
	StatusExistingRepo

	// StatusFailed means a git command failed after the repository check.
	StatusFailed
)

// Result carries the initialisation outcome. Warning is set for the
// non-fatal failure statuses and is meant to be shown to the user.
type Result struct {
	Status  Status
	Warning string
}

// runGitCommand runs a git command in dir with a timeout.
// Returns the combined stdout/stderr output and any error.
func runGitCommand(dir string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gitCommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)
	output, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return output, fmt.Errorf("git command timed out after %v: git %s", gitCommandTimeout, strings.Join(args, " "))
	}
	return output, err
}

// Init initialises a repository at root, stages the generated tree, and
// creates one commit. Missing git tooling and pre-existing repositories are
// skips, not failures; a failing git command (for example, no configured
// commit identity) produces a warning and leaves the generated tree as is.
func Init(root string) Result {
	if _, err := exec.LookPath("git"); err != nil {
		return Result{
			Status:  StatusNoGit,
			Warning: "git not found on PATH, skipping repository initialisation",
		}
	}

	if _, err := os.Stat(filepath.Join(root, ".git")); err == nil {
		return Result{Status: StatusExistingRepo}
	}

	steps := [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", CommitMessage},
	}
	for _, args := range steps {
		output, err := runGitCommand(root, args...)
		if err != nil {
			return Result{
				Status: StatusFailed,
				Warning: fmt.Sprintf("git %s failed: %v (%s)",
					strings.Join(args, " "), err, strings.TrimSpace(string(output))),
			}
		}
	}

	return Result{Status: StatusInitialized}
}
