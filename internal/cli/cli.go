// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli handles command-line parsing and the non-TUI commands.
package cli

import (
	"fmt"
	"strings"
)

// =============================================================================
// VERSION INFO
// =============================================================================

// Version information, overridable at build time with -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// COMMANDS
// =============================================================================

// Command identifies which top-level command was requested.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdVersion
	CmdHelp
	CmdUnknown
)

// Args holds the parsed arguments for a command.
type Args struct {
	// Query is the prompt for the ask command.
	Query string

	// Raw is everything after the command name.
	Raw []string

	// Unknown holds the unrecognized command name, for the error message.
	Unknown string
}

// Parse parses a command line (without the program name) and returns the
// command and its arguments. No arguments means the TUI.
func Parse(argv []string) (Command, Args) {
	if len(argv) == 0 {
		return CmdTUI, Args{}
	}

	cmd := strings.ToLower(argv[0])
	remaining := argv[1:]
	args := Args{Raw: remaining}

	switch cmd {
	case "tui":
		return CmdTUI, args

	case "ask":
		args.Query = strings.TrimSpace(strings.Join(remaining, " "))
		return CmdAsk, args

	case "version", "-v", "--version":
		return CmdVersion, args

	case "help", "-h", "--help":
		return CmdHelp, args

	default:
		args.Unknown = argv[0]
		return CmdUnknown, args
	}
}

// =============================================================================
// HELP OUTPUT
// =============================================================================

const usageText = `gemini-tui - chat with Gemini from your terminal

Usage:
  gemini-tui                 Start the chat TUI (default)
  gemini-tui ask "question"  Ask a single question and print the reply
  gemini-tui version         Show version information
  gemini-tui help            Show this help

The TUI talks to the gemini-server backend; start it first:
  GEMINI_API_KEY=... gemini-server

Configuration is read from ~/.gemini-tui/config.toml. The backend URL can
be overridden with the GEMINI_TUI_SERVER environment variable.

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("gemini-tui version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}
