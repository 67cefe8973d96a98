// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the mkmod CLI.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"mkmod/internal/config"
	"mkmod/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded tool configuration (nil when loading failed).
	cfg *config.Config

	dirModule bool
	noTest    bool
	noAdd     bool
	superMain bool
	private   bool

	// rootCmd is the single mkmod command; there are no subcommands.
	rootCmd = &cobra.Command{
		Use:   "mkmod <path>",
		Short: "Scaffold a new module in a Rust crate",
		Long: TitleStyle.Render("mkmod") + SubtitleStyle.Render(" - add modules to a Rust crate") + `

mkmod creates a new module at the given path (without extension) and
registers it in the enclosing super module: lib.rs or main.rs at the crate
root, mod.rs inside a directory module. The declaration is inserted right
after the file's use/mod preamble, or after the header comment when there
is no preamble.

` + SubtitleStyle.Render("Examples:") + `
  mkmod src/parser             Create src/parser.rs and register it in lib.rs
  mkmod src/parser --dir       Create src/parser/mod.rs instead
  mkmod src/parser --no-test   Skip the companion test file
  mkmod src/parser --private   Register as 'mod' instead of 'pub mod'`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <user-config-dir>/mkmod/config.toml)")

	rootCmd.Flags().BoolVar(&dirModule, "dir", false, "create the module as a directory")
	rootCmd.Flags().BoolVar(&noTest, "no-test", false, "do not create a companion test file")
	rootCmd.Flags().BoolVar(&noAdd, "no-add", false, "do not register the module in its super module")
	rootCmd.Flags().BoolVar(&superMain, "main", false, "register in main.rs instead of lib.rs at the crate root")
	rootCmd.Flags().BoolVar(&private, "private", false, "register the module as private")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. Called by main.main().
func Execute() {
	// fang.Execute provides styled help, errors, and version output.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file and applies ambient settings.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
