// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// # Architecture
//
// The package follows the Bubble Tea model-update-view split:
//
//   - model.go: the Model struct and states (Connecting, Ready, Waiting,
//     ConfirmClear)
//   - update.go: the update loop, including the prompt submission flow
//   - view.go: rendering (header, sidebar, bubbles, input, status bar)
//   - commands.go: tea.Cmd constructors for backend I/O
//   - messages.go: the message types those commands emit
//
// The Model is the single owner of all chat state. Commands never mutate
// it; they do I/O on their own goroutines and report back with messages.
//
// # Submission Flow
//
// A prompt submission appends the user message immediately, enters the
// Waiting state, and sends the request pinned to the conversation ID that
// was active at submission time. The reply (or error) lands in that same
// conversation even if the user switched away; a reply for a deleted
// conversation is dropped. Only one submission can be in flight.
package chat
