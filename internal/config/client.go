// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the client and server.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CLIENT CONFIG
// =============================================================================

// ClientConfig is the TUI configuration, loaded from
// ~/.gemini-tui/config.toml with environment overrides on top.
type ClientConfig struct {
	// Server holds backend connection settings.
	Server ServerTarget `toml:"server"`

	// UI holds display settings.
	UI UIConfig `toml:"ui"`
}

// ServerTarget describes how to reach the backend.
type ServerTarget struct {
	// URL is the backend base URL.
	URL string `toml:"url"`

	// TimeoutSecs bounds each prompt request (0 = default 60s).
	TimeoutSecs int `toml:"timeout_secs"`

	// ProbeIntervalSecs is the connectivity probe cadence while the
	// backend is unreachable (0 = default 2s).
	ProbeIntervalSecs int `toml:"probe_interval_secs"`
}

// UIConfig contains display settings.
type UIConfig struct {
	// Typewriter animates bot replies character by character.
	Typewriter bool `toml:"typewriter"`

	// Theme selects the color theme: "dark" (default) or "light".
	Theme string `toml:"theme"`
}

// DefaultClientConfig returns the built-in defaults.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Server: ServerTarget{
			URL:               "http://127.0.0.1:5000",
			TimeoutSecs:       60,
			ProbeIntervalSecs: 2,
		},
		UI: UIConfig{
			Typewriter: true,
			Theme:      "dark",
		},
	}
}

// ClientConfigPath returns the config file location.
func ClientConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".gemini-tui", "config.toml"), nil
}

// LoadClient loads the client config: defaults, then the TOML file if it
// exists, then environment overrides. A missing file is not an error; a
// malformed file is.
func LoadClient() (*ClientConfig, error) {
	path, err := ClientConfigPath()
	if err != nil {
		// No home directory; run on defaults plus env.
		cfg := DefaultClientConfig()
		cfg.applyEnvOverrides()
		return cfg, cfg.validate()
	}
	return LoadClientFromPath(path)
}

// LoadClientFromPath loads the client config from a specific file.
func LoadClientFromPath(path string) (*ClientConfig, error) {
	cfg := DefaultClientConfig()

	if _, statErr := os.Stat(path); statErr == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variables over file values.
func (c *ClientConfig) applyEnvOverrides() {
	if server := os.Getenv("GEMINI_TUI_SERVER"); server != "" {
		c.Server.URL = server
	}
	if theme := os.Getenv("GEMINI_TUI_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// setDefaults fills zero values left by a partial file.
func (c *ClientConfig) setDefaults() {
	def := DefaultClientConfig()
	if c.Server.URL == "" {
		c.Server.URL = def.Server.URL
	}
	if c.Server.TimeoutSecs <= 0 {
		c.Server.TimeoutSecs = def.Server.TimeoutSecs
	}
	if c.Server.ProbeIntervalSecs <= 0 {
		c.Server.ProbeIntervalSecs = def.Server.ProbeIntervalSecs
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
}

// validate rejects configs the client cannot act on.
func (c *ClientConfig) validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server url %q", c.Server.URL)
	}
	if c.UI.Theme != "dark" && c.UI.Theme != "light" {
		return fmt.Errorf("invalid theme %q (want \"dark\" or \"light\")", c.UI.Theme)
	}
	return nil
}

// Timeout returns the per-request timeout as a duration.
func (c *ClientConfig) Timeout() time.Duration {
	return time.Duration(c.Server.TimeoutSecs) * time.Second
}

// ProbeInterval returns the connectivity probe cadence as a duration.
func (c *ClientConfig) ProbeInterval() time.Duration {
	return time.Duration(c.Server.ProbeIntervalSecs) * time.Second
}
