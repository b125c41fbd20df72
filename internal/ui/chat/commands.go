// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file holds the tea.Cmd constructors. Commands do I/O off the update
// loop and report back with the message types in messages.go.
package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vedant159357/gemini-tui/internal/api"
)

// typewriterInterval is the reveal animation cadence.
const typewriterInterval = 25 * time.Millisecond

// ProbeCmd checks backend connectivity once.
func ProbeCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return ConnectivityMsg{Err: client.TestConnection(ctx)}
	}
}

// ProbeTickCmd schedules the next probe after the retry interval.
func ProbeTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return ProbeTickMsg{}
	})
}

// SendPromptCmd submits a prompt for the given conversation. The ID is
// captured here, at submission time, so the reply lands in the right
// conversation no matter what the user does while waiting.
func SendPromptCmd(client *api.Client, convID, prompt string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		reply, err := client.SendPrompt(ctx, prompt)
		return ReplyMsg{ConvID: convID, Prompt: prompt, Reply: reply, Err: err}
	}
}

// TypewriterTickCmd schedules the next animation step.
func TypewriterTickCmd() tea.Cmd {
	return tea.Tick(typewriterInterval, func(time.Time) tea.Msg {
		return TypewriterTickMsg{}
	})
}
