// SPDX-License-Identifier: MPL-2.0

// Package crate resolves the filesystem conventions of Rust crates: where
// the crate root is, which file declares the modules of a given scope, and
// what counts as a valid module name.
package crate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Filesystem conventions of the Rust ecosystem. These are constants of the
// dialect, not configuration.
const (
	// ManifestFile marks the directory above a crate's source root.
	ManifestFile = "Cargo.toml"
	// LibFile is the library entry file at the crate root.
	LibFile = "lib.rs"
	// MainFile is the binary entry file at the crate root.
	MainFile = "main.rs"
	// ModFile is the entry file of a directory module.
	ModFile = "mod.rs"
	// SourceExt is the extension of Rust source files.
	SourceExt = ".rs"
)

var (
	// ErrInvalidPath is returned when a module path has no usable parent or
	// grandparent directory.
	ErrInvalidPath = errors.New("invalid module path")
	// ErrSuperNotFound is returned when the resolved super file does not
	// exist. Parent modules are never created implicitly.
	ErrSuperNotFound = errors.New("super module does not exist")
	// ErrInvalidName is returned when a module name cannot be derived or is
	// not a valid Rust identifier.
	ErrInvalidName = errors.New("invalid module name")
)

// SuperPath returns the path of the file that declares submodules for the
// scope containing modPath.
//
// When the module's parent directory is the crate-root source directory
// (detected by a Cargo.toml in the grandparent), the super file is main.rs
// if superMain is set, otherwise lib.rs, falling back to main.rs when no
// lib.rs exists. For a module nested inside a directory module the super
// file is that directory's mod.rs.
//
// SuperPath only queries the filesystem; it never creates anything.
func SuperPath(modPath string, superMain bool) (string, error) {
	abs, err := filepath.Abs(modPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	parent := filepath.Dir(abs)
	if parent == abs {
		return "", fmt.Errorf("%w: %s has no parent directory", ErrInvalidPath, modPath)
	}
	grandparent := filepath.Dir(parent)
	if grandparent == parent {
		return "", fmt.Errorf("%w: %s has no grandparent directory", ErrInvalidPath, modPath)
	}

	super := filepath.Join(parent, ModFile)
	if fileExists(filepath.Join(grandparent, ManifestFile)) {
		// The parent is the crate-root source directory.
		switch {
		case superMain:
			super = filepath.Join(parent, MainFile)
		case fileExists(filepath.Join(parent, LibFile)):
			super = filepath.Join(parent, LibFile)
		default:
			super = filepath.Join(parent, MainFile)
		}
	}

	if !fileExists(super) {
		return "", fmt.Errorf("%w: %s", ErrSuperNotFound, super)
	}
	return super, nil
}

// FindRoot walks upward from start to the nearest directory containing a
// Cargo.toml and returns it. Used for diagnostics; super-file resolution
// never searches beyond the grandparent.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	for {
		if fileExists(filepath.Join(dir, ManifestFile)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s above %s: %w", ManifestFile, start, os.ErrNotExist)
		}
		dir = parent
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
