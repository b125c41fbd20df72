// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines all Bubble Tea message types used by the chat interface.
// Messages fall into three groups:
//   - Connectivity: probe results and the retry cadence tick
//   - Replies: backend responses pinned to the conversation that asked
//   - Typewriter: the cosmetic reveal animation tick
package chat

// =============================================================================
// CONNECTIVITY MESSAGES
// =============================================================================

// ConnectivityMsg carries the result of a backend probe. A nil Err means
// the backend answered its banner.
type ConnectivityMsg struct {
	Err error
}

// ProbeTickMsg fires on the retry cadence while the backend is unreachable.
type ProbeTickMsg struct{}

// =============================================================================
// REPLY MESSAGES
// =============================================================================

// ReplyMsg carries the outcome of a prompt submission. ConvID is the
// conversation that was active at submission time; the reply is appended
// there even if the user has since switched or deleted conversations.
type ReplyMsg struct {
	ConvID string
	Prompt string
	Reply  string
	Err    error
}

// =============================================================================
// TYPEWRITER MESSAGES
// =============================================================================

// TypewriterTickMsg advances the reveal animation by one step.
type TypewriterTickMsg struct{}
