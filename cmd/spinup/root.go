package main

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	spinerrors "github.com/spinup-cli/spinup/internal/errors"
	"github.com/spinup-cli/spinup/internal/fsutil"
	"github.com/spinup-cli/spinup/internal/output"
	"github.com/spinup-cli/spinup/internal/prompt"
	"github.com/spinup-cli/spinup/internal/scaffold"
	"github.com/spinup-cli/spinup/internal/vcs"
)

var (
	// Flag variables
	typeFlag     string
	displayName  string
	templateFlag string
	baseDir      string
	durationFlag string
	hoursFlag    string
	configFile   string
	noGit        bool
	quiet        bool
)

var rootCmd = &cobra.Command{
	Use:   "spinup [project-name]",
	Short: "Scaffold a new project directory",
	Long: `Spinup scaffolds a new project: a directory tree matching the chosen
project type, boilerplate docs and configuration files, an optional
domain template on top, a project_meta.json record of the choices, and
a best-effort initial git commit.

Any configuration not supplied through flags is collected interactively.
Re-running against an existing project is safe: generated files that
already exist are left untouched, only project_meta.json is refreshed.

PROJECT TYPES

  web-app      frontend + backend + shared source split
  service-api  app + core + adapters service layout
  tool-script  cli + core layout for command-line tools

TEMPLATES

  default       base layout only
  fintech-dapp  fintech directories, an example compose file, and a
                business-notes document

DEFAULTS FILE

Per-user defaults (project type, template, base directory, licence
holder) can be set in a TOML file. By default spinup looks for
<user config dir>/spinup/config.toml; use --config for a different path.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       "2.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScaffold,
}

func init() {
	rootCmd.Flags().StringVarP(&typeFlag, "type", "t", "", "Project type: web-app, service-api, tool-script")
	rootCmd.Flags().StringVar(&displayName, "display-name", "", "Human-readable project name (defaults to the project name)")
	rootCmd.Flags().StringVar(&templateFlag, "template", "", "Scaffold template: default, fintech-dapp")
	rootCmd.Flags().StringVarP(&baseDir, "base-dir", "d", "", "Directory to create the project under (default: current directory)")
	rootCmd.Flags().StringVar(&durationFlag, "duration", "", "Estimated project duration in weeks")
	rootCmd.Flags().StringVar(&hoursFlag, "hours", "", "Available hours per week")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to defaults file (default: <user config dir>/spinup/config.toml)")
	rootCmd.Flags().BoolVar(&noGit, "no-git", false, "Skip git repository initialisation")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
}

func runScaffold(cmd *cobra.Command, args []string) error {
	formatter := output.NewFormatter(quiet, cmd.OutOrStdout())
	prompter := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

	flags := flagValues{
		displayName: displayName,
		projectType: typeFlag,
		template:    templateFlag,
		baseDir:     baseDir,
		duration:    durationFlag,
		hours:       hoursFlag,
		configFile:  configFile,
	}
	if len(args) > 0 {
		flags.name = args[0]
	}

	cfg, licenseHolder, err := resolveConfig(flags, prompter, usePicker())
	if err != nil {
		return err
	}

	// Confirmation gate: a non-empty target means generation would skip
	// existing files and refresh the metadata record.
	root := cfg.Root()
	nonEmpty, err := fsutil.DirNonEmpty(root)
	if err != nil {
		return err
	}
	if nonEmpty {
		formatter.Warnf("target directory already exists and is not empty: %s", root)
		ok, err := prompter.Confirm("Continuing may overwrite project_meta.json. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			return spinerrors.ErrCancelled
		}
	}

	formatter.PrintBanner(*cfg)

	res, err := scaffold.Run(*cfg, scaffold.Options{LicenseHolder: licenseHolder})
	if err != nil {
		return err
	}

	if !noGit {
		formatter.PrintVCSResult(initRepo(root))
	}

	formatter.PrintSummary(res, *cfg)
	return nil
}

// initRepo runs git initialisation, with a spinner on interactive terminals.
func initRepo(root string) vcs.Result {
	if !quiet && term.IsTerminal(int(os.Stdout.Fd())) {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Initialising git repository..."
		s.Start()
		defer s.Stop()
	}
	return vcs.Init(root)
}

// usePicker reports whether the enumerated prompts should use the
// full-screen picker instead of plain line input.
func usePicker() bool {
	if quiet {
		return false
	}

	// CI environment disables the picker
	if os.Getenv("CI") != "" {
		return false
	}

	// Non-interactive terminals disable the picker
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}

	return true
}
