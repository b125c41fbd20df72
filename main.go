// gemini-tui - A terminal chat client for the Gemini API.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vedant159357/gemini-tui/internal/api"
	"github.com/Vedant159357/gemini-tui/internal/cli"
	"github.com/Vedant159357/gemini-tui/internal/config"
	"github.com/Vedant159357/gemini-tui/internal/session"
	"github.com/Vedant159357/gemini-tui/internal/storage"
	"github.com/Vedant159357/gemini-tui/internal/ui/chat"
	"github.com/Vedant159357/gemini-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	switch cmd {
	case cli.CmdTUI:
		runTUI()

	case cli.CmdAsk:
		if err := cli.RunAsk(context.Background(), args.Query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case cli.CmdVersion:
		cli.PrintVersion()

	case cli.CmdHelp:
		cli.PrintUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args.Unknown)
		cli.PrintUsage()
		os.Exit(1)
	}
}

// runTUI wires the dependencies and runs the Bubble Tea program.
func runTUI() {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	backend, err := storage.NewConversationStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open conversation storage: %v\n", err)
		os.Exit(1)
	}
	store := session.NewStore(backend)

	client := api.NewClient(api.ClientConfig{
		BaseURL:      cfg.Server.URL,
		Timeout:      cfg.Timeout(),
		ProbeTimeout: cfg.ProbeInterval(),
	})

	model := chat.New(store, client, cfg, styles.NewTheme(cfg.UI.Theme))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
