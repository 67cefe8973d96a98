// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests to override the config directory, since
// os.UserConfigDir() does not reliably respect env overrides on all
// platforms.
var configDirOverride string

// configFilePathOverride pins loading to an explicit config file (--config).
var configFilePathOverride string

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
}

// SetConfigDirOverride sets a custom config directory path. Primarily for
// tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride pins configuration loading to the given file.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}
