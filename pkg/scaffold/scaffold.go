// SPDX-License-Identifier: MPL-2.0

// Package scaffold creates new modules on disk and registers them in their
// super module.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mkmod/pkg/crate"
	"mkmod/pkg/srcfile"

	"github.com/charmbracelet/log"
)

// ErrExists is returned when the target module path is already occupied.
var ErrExists = errors.New("module already exists")

// Options control how a module is created.
type Options struct {
	// Dir creates the module as a directory with a mod.rs entry file.
	Dir bool
	// WithTest creates a companion _test file linked from the module file.
	WithTest bool
	// AddToSuper registers the module in its super file.
	AddToSuper bool
	// SuperMain targets main.rs instead of lib.rs when registering at the
	// crate root. Only meaningful together with AddToSuper.
	SuperMain bool
	// Public registers the module as `pub mod` instead of `mod`.
	Public bool
}

// Create scaffolds a new module at path (given without extension) and
// returns the path of what was created: the directory for a directory
// module, the source file for a file module.
//
// Creation is not transactional: files created before a later failure, for
// example a failed super-file registration, stay on disk.
func Create(path string, opts Options) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrExists, path)
	}
	if err := crate.ValidateName(moduleName(path)); err != nil {
		return "", err
	}

	var (
		modPath string
		err     error
	)
	if opts.Dir {
		modPath, err = createDir(path, opts.WithTest)
	} else {
		modPath, err = createFile(path, opts.WithTest)
	}
	if err != nil {
		return "", err
	}
	log.Debug("module created", "path", modPath, "dir", opts.Dir, "test", opts.WithTest)

	if opts.AddToSuper {
		if err := addToSuper(modPath, opts.SuperMain, opts.Public); err != nil {
			return "", err
		}
	}
	return modPath, nil
}

// createFile makes a single-file module and returns the source file path.
func createFile(path string, withTest bool) (string, error) {
	name := moduleName(path)
	if name == "" {
		return "", fmt.Errorf("%w: cannot derive a module name from %q", crate.ErrInvalidName, path)
	}

	srcPath := path + crate.SourceExt
	file, err := os.OpenFile(srcPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrExists, srcPath)
		}
		return "", fmt.Errorf("create %s: %w", srcPath, err)
	}
	defer file.Close()

	if withTest {
		// The test file itself starts empty; the module file links it.
		testPath := path + "_test" + crate.SourceExt
		if err := os.WriteFile(testPath, nil, 0o644); err != nil {
			return "", fmt.Errorf("create %s: %w", testPath, err)
		}
		if _, err := file.WriteString(testTemplate(name)); err != nil {
			return "", fmt.Errorf("write %s: %w", srcPath, err)
		}
	}
	return srcPath, nil
}

// createDir makes a directory module with a mod.rs entry file inside and
// returns the directory path.
func createDir(path string, withTest bool) (string, error) {
	if err := os.Mkdir(path, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := createFile(filepath.Join(path, "mod"), withTest); err != nil {
		return "", err
	}
	return path, nil
}

// addToSuper registers the module created at modPath in its super file.
func addToSuper(modPath string, superMain, public bool) error {
	super, err := crate.SuperPath(modPath, superMain)
	if err != nil {
		return err
	}

	name := moduleName(strings.TrimSuffix(modPath, crate.SourceExt))
	if name == "" {
		return fmt.Errorf("%w: cannot derive a module name from %q", crate.ErrInvalidName, modPath)
	}

	cls, err := srcfile.Scan(super)
	if err != nil {
		return err
	}
	at := cls.InsertionPoint()
	log.Debug("registering module", "super", super, "module", name, "line", at)

	return srcfile.Insert(super, srcfile.Decl{Name: name, Public: public}, at)
}

// moduleName derives a module name from the final path segment.
func moduleName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}
