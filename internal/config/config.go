// SPDX-License-Identifier: MPL-2.0

// Package config loads tool-level configuration for mkmod. The config file
// only supplies defaults for CLI flags; explicitly set flags always win.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"mkmod/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "mkmod"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// Config holds the tool's behavior defaults.
type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DefaultsConfig supplies defaults for the module-creation flags.
type DefaultsConfig struct {
	// Public registers new modules as `pub mod` (--private flips it).
	Public bool `mapstructure:"public"`
	// WithTest creates a companion test file (--no-test flips it).
	WithTest bool `mapstructure:"with_test"`
	// AddToSuper registers new modules in their super file (--no-add flips it).
	AddToSuper bool `mapstructure:"add_to_super"`
}

// UIConfig controls output behavior.
type UIConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults, matching the CLI defaults.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Public:     true,
			WithTest:   true,
			AddToSuper: true,
		},
	}
}

// ConfigDir returns the mkmod configuration directory, following the
// platform's user config directory convention.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// Load reads the config file (if any) and environment overrides, returning
// the built-in defaults when no file exists.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("defaults.public", defaults.Defaults.Public)
	v.SetDefault("defaults.with_test", defaults.Defaults.WithTest)
	v.SetDefault("defaults.add_to_super", defaults.Defaults.AddToSuper)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFilePathOverride != "" {
		if !fileExists(configFilePathOverride) {
			return nil, issue.WrapWithContext(os.ErrNotExist, "load configuration", configFilePathOverride).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable")
		}
		v.SetConfigFile(configFilePathOverride)
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		v.AddConfigPath(dir)
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, issue.WrapWithContext(err, "load configuration", v.ConfigFileUsed()).
				WithSuggestion("Check the TOML syntax of the config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, issue.WrapWithContext(err, "parse configuration", v.ConfigFileUsed())
	}
	return &cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
