// SPDX-License-Identifier: MPL-2.0

package crate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Manifest is the subset of a Cargo.toml this tool reads.
type Manifest struct {
	Package Package `toml:"package"`

	// Dir is the directory containing the manifest (set at load time).
	Dir string `toml:"-"`
}

// Package contains crate metadata.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}

// LoadManifest parses the Cargo.toml in dir.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	m.Dir = dir
	return &m, nil
}
