// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDefaults(t *testing.T) {
	cfg, err := LoadClientFromPath(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:5000", cfg.Server.URL)
	assert.Equal(t, 60*time.Second, cfg.Timeout())
	assert.Equal(t, 2*time.Second, cfg.ProbeInterval())
	assert.True(t, cfg.UI.Typewriter)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestClientPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
url = "http://10.0.0.2:8080"

[ui]
typewriter = false
`), 0644))

	cfg, err := LoadClientFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.2:8080", cfg.Server.URL)
	assert.False(t, cfg.UI.Typewriter)
	// Unset fields keep defaults.
	assert.Equal(t, 2*time.Second, cfg.ProbeInterval())
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestClientEnvOverride(t *testing.T) {
	t.Setenv("GEMINI_TUI_SERVER", "http://example.com:9000")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
url = "http://10.0.0.2:8080"
`), 0644))

	cfg, err := LoadClientFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com:9000", cfg.Server.URL)
}

func TestClientMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nnope"), 0644))

	_, err := LoadClientFromPath(path)
	assert.Error(t, err)
}

func TestClientInvalidURL(t *testing.T) {
	t.Setenv("GEMINI_TUI_SERVER", "not a url")

	_, err := LoadClientFromPath(filepath.Join(t.TempDir(), "config.toml"))
	assert.Error(t, err)
}

func TestClientInvalidTheme(t *testing.T) {
	t.Setenv("GEMINI_TUI_THEME", "solarized")

	_, err := LoadClientFromPath(filepath.Join(t.TempDir(), "config.toml"))
	assert.Error(t, err)
}

func TestServerRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := LoadServer()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestServerDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "")

	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
}

func TestServerPortOverride(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "8123")

	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, ":8123", cfg.Addr())
}
