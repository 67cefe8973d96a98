// SPDX-License-Identifier: MPL-2.0

package crate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := `[package]
name = "widget"
version = "0.3.1"
edition = "2021"

[dependencies]
serde = "1"
`
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if m.Package.Name != "widget" {
		t.Errorf("Package.Name = %q, want %q", m.Package.Name, "widget")
	}
	if m.Package.Version != "0.3.1" {
		t.Errorf("Package.Version = %q, want %q", m.Package.Version, "0.3.1")
	}
	if m.Package.Edition != "2021" {
		t.Errorf("Package.Edition = %q, want %q", m.Package.Edition, "2021")
	}
	if m.Dir != dir {
		t.Errorf("Dir = %q, want %q", m.Dir, dir)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	t.Parallel()

	if _, err := LoadManifest(t.TempDir()); err == nil {
		t.Error("LoadManifest() without a Cargo.toml should fail")
	}
}

func TestLoadManifestMalformed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), []byte("[package\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := LoadManifest(dir); err == nil {
		t.Error("LoadManifest() on malformed TOML should fail")
	}
}
