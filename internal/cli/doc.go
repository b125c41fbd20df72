// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli handles command-line parsing and the non-TUI commands.
//
// # Commands
//
//	(none)    start the chat TUI
//	ask       one-shot prompt, reply printed to stdout
//	version   build information
//	help      usage text
//
// The ask command renders markdown replies with glamour when stdout is a
// terminal and prints plain text when piped.
package cli
