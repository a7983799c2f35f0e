// Package config loads robots' configuration in layers: embedded
// defaults, then an optional XDG config file, then ROBOTS_* environment
// variables. Later layers win.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/isker/robots/pkg/errors"
)

// envPrefix namespaces the environment variable layer (ROBOTS_USER_AGENT,
// ROBOTS_COLOR, ...).
const envPrefix = "ROBOTS_"

//go:embed defaults.toml
var defaultConfig []byte

// Config is the resolved CLI configuration. The core library takes no
// configuration at all; everything here shapes the command-line surface.
type Config struct {
	// UserAgent is the user agent queries are evaluated for when the
	// --agent flag is not given.
	UserAgent string `koanf:"user_agent" toml:"user_agent"`

	// Color controls styled output: auto, always, or never.
	Color string `koanf:"color" toml:"color"`

	// Verbosity is the default logging verbosity (overridden by -v).
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	k := koanf.New(".")
	// The embedded defaults are compiled in and well-formed.
	_ = k.Load(rawbytes.Provider(defaultConfig), toml.Parser())
	_ = k.Unmarshal("", cfg)
	return cfg
}

// Load resolves configuration from all layers.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. User config file, if present
	if path := ConfigFilePath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
			}
		}
	}

	// 3. Environment variables
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return cfg, nil
}

// ConfigFilePath returns the XDG location of the user config file
// (~/.config/robots/config.toml by default).
func ConfigFilePath() string {
	return filepath.Join(xdg.ConfigHome, "robots", "config.toml")
}
