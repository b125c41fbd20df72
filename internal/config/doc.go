// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the client and server.
//
// # Client
//
// The TUI reads ~/.gemini-tui/config.toml (all fields optional) and then
// applies environment overrides:
//
//	GEMINI_TUI_SERVER  backend base URL
//	GEMINI_TUI_THEME   "dark" or "light"
//
// # Server
//
// The backend is configured purely through the environment, with a .env
// file loaded first in development:
//
//	GEMINI_API_KEY   required; the server refuses to start without it
//	PORT             listen port (default: 5000)
//	GEMINI_BASE_URL  endpoint override, used by tests
package config
