// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single query command for the gemini-tui CLI.
//
// Sends one prompt through the backend and prints the reply, with markdown
// rendering when stdout is a terminal.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/Vedant159357/gemini-tui/internal/api"
	"github.com/Vedant159357/gemini-tui/internal/config"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// renderMarkdown renders a reply for terminal display. Returns the input
// unchanged if the renderer cannot be built or fails.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayReply prints a reply, rendering markdown only when stdout is a
// TTY so piped output stays clean.
func displayReply(reply string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(renderMarkdown(reply))
		return
	}
	fmt.Println(reply)
}

// =============================================================================
// ASK COMMAND
// =============================================================================

// RunAsk executes the ask command: one prompt, one printed reply.
// Returns a non-nil error for the caller to report and exit non-zero on.
func RunAsk(ctx context.Context, query string) error {
	if query == "" {
		return fmt.Errorf("usage: gemini-tui ask \"question\"")
	}

	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	client := api.NewClient(api.ClientConfig{
		BaseURL: cfg.Server.URL,
		Timeout: cfg.Timeout(),
	})

	if err := client.TestConnection(ctx); err != nil {
		return fmt.Errorf("backend is not reachable at %s (start gemini-server first)", cfg.Server.URL)
	}

	reply, err := client.SendPrompt(ctx, query)
	if err != nil {
		return err
	}

	displayReply(reply)
	return nil
}
