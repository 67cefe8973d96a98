// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mkmod/internal/issue"
	"mkmod/pkg/crate"
	"mkmod/pkg/scaffold"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runCreate is the RunE for the root command.
func runCreate(cmd *cobra.Command, args []string) error {
	path := args[0]

	opts := scaffold.Options{
		Dir:        dirModule,
		WithTest:   !noTest,
		AddToSuper: !noAdd,
		SuperMain:  superMain,
		Public:     !private,
	}
	applyConfigDefaults(cmd, &opts)

	log.Debug("creating module",
		"path", path, "dir", opts.Dir, "test", opts.WithTest,
		"register", opts.AddToSuper, "public", opts.Public)

	modPath, err := scaffold.Create(path, opts)
	if err != nil {
		return presentError(err)
	}

	if opts.AddToSuper {
		logCrate(modPath)
	}
	return nil
}

// applyConfigDefaults lets the config file change flag defaults without
// overriding flags the user set explicitly.
func applyConfigDefaults(cmd *cobra.Command, opts *scaffold.Options) {
	if cfg == nil {
		return
	}
	if !cmd.Flags().Changed("no-test") {
		opts.WithTest = cfg.Defaults.WithTest
	}
	if !cmd.Flags().Changed("no-add") {
		opts.AddToSuper = cfg.Defaults.AddToSuper
	}
	if !cmd.Flags().Changed("private") {
		opts.Public = cfg.Defaults.Public
	}
}

// presentError maps domain errors to user-facing output. Only "module
// already exists" gets a quiet one-liner and a clean exit; everything else
// is rendered with classifyCreateError and turns into a non-zero exit.
func presentError(err error) error {
	if errors.Is(err, scaffold.ErrExists) {
		fmt.Println("a file of that name already exists")
		return nil
	}

	fmt.Fprint(os.Stderr, classifyCreateError(err, verbose))
	return &ExitError{Code: 1}
}

// classifyCreateError wraps known failure kinds with suggestions and
// returns a styled message for CLI rendering. Verbose mode includes the
// full error chain.
func classifyCreateError(err error, verboseMode bool) string {
	switch {
	case errors.Is(err, crate.ErrSuperNotFound):
		err = issue.WrapWithOperation(err, "register module").
			WithSuggestion("Create the parent module first").
			WithSuggestion("Pass --no-add to skip registration")
	case errors.Is(err, crate.ErrInvalidName):
		err = issue.WrapWithOperation(err, "derive module name").
			WithSuggestion("Module names must be valid Rust identifiers")
	case errors.Is(err, crate.ErrInvalidPath):
		err = issue.WrapWithOperation(err, "resolve module path").
			WithSuggestion("Create modules inside a crate's src directory")
	}

	return fmt.Sprintf("\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verboseMode))
}

// logCrate reports which crate the module landed in (debug output only).
func logCrate(modPath string) {
	root, err := crate.FindRoot(filepath.Dir(modPath))
	if err != nil {
		log.Debug("crate root not found", "path", modPath)
		return
	}
	m, err := crate.LoadManifest(root)
	if err != nil {
		log.Debug("manifest unreadable", "root", root, "err", err)
		return
	}
	log.Debug("module registered", "crate", m.Package.Name, "version", m.Package.Version)
}
