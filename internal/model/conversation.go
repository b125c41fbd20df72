// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Vedant159357/gemini-tui/internal/util"
)

// =============================================================================
// DERIVATION RULES
// =============================================================================

const (
	// DefaultTitle is the placeholder for conversations without a derived or
	// user-chosen title. Auto-derivation only applies while the title still
	// equals this placeholder; a manual rename therefore wins permanently.
	DefaultTitle = "New Conversation"

	// DefaultPreview is shown in the sidebar before any message exists.
	DefaultPreview = "Start a new conversation"

	// TitleLimit is the rune budget for titles derived from the first prompt.
	TitleLimit = 30

	// PreviewLimit is the rune budget for previews derived from the latest
	// message.
	PreviewLimit = 50
)

// DeriveTitle shortens a first prompt into a sidebar title. Derived labels
// always end in "...", even when nothing was cut; only the placeholder and
// user-chosen titles go without it.
func DeriveTitle(prompt string) string {
	return util.Ellipsize(util.CollapseNewlines(prompt), TitleLimit)
}

// DerivePreview shortens a message body into a sidebar preview.
func DerivePreview(content string) string {
	return util.Ellipsize(util.CollapseNewlines(content), PreviewLimit)
}

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds one chat thread with its sidebar metadata.
//
// The message list is insertion-ordered and chronological. Messages are
// expected to alternate user -> bot|error, but that shape is produced by the
// submission flow rather than enforced here; a conversation loaded from disk
// is accepted as-is.
type Conversation struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Title     string    `json:"title"`
	Preview   string    `json:"preview"`
	Messages  []Message `json:"messages"`
}

// NewConversation creates an empty conversation with a generated ID and
// placeholder title/preview.
func NewConversation() *Conversation {
	return &Conversation{
		ID:        generateConversationID(),
		Timestamp: time.Now(),
		Title:     DefaultTitle,
		Preview:   DefaultPreview,
		Messages:  make([]Message, 0),
	}
}

// NewConversationFromPrompt creates a conversation seeded with derived title
// and preview, for the implicit create-on-first-prompt path. The derived
// fields are set immediately, before any reply arrives.
func NewConversationFromPrompt(prompt string) *Conversation {
	conv := NewConversation()
	conv.Title = DeriveTitle(prompt)
	conv.Preview = DerivePreview(prompt)
	return conv
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// SetMessages replaces the message list and recomputes the derived sidebar
// fields: preview from the last message, title from the first message while
// the title still equals the default placeholder.
func (c *Conversation) SetMessages(messages []Message) {
	c.Messages = messages
	if last, ok := c.LastMessage(); ok {
		c.Preview = DerivePreview(last.Content)
	} else {
		c.Preview = DefaultPreview
	}
	if c.Title == DefaultTitle {
		if first, ok := c.FirstUserMessage(); ok {
			c.Title = DeriveTitle(first.Content)
		}
	}
}

// Append adds messages to the end of the list, recomputing derived fields.
func (c *Conversation) Append(messages ...Message) {
	c.SetMessages(append(c.Messages, messages...))
}

// LastMessage returns the most recent message, if any.
func (c *Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// FirstUserMessage returns the earliest user message, if any.
func (c *Conversation) FirstUserMessage() (Message, bool) {
	for _, msg := range c.Messages {
		if msg.IsUser() {
			return msg, true
		}
	}
	return Message{}, false
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// =============================================================================
// TITLE MANAGEMENT
// =============================================================================

// Rename sets the title unconditionally. A renamed conversation is never
// touched by auto-derivation again unless the new title is itself the
// placeholder. Blank titles are the caller's problem; the store trims and
// rejects them before calling this.
func (c *Conversation) Rename(title string) {
	c.Title = title
}

// Clone creates a deep copy of the conversation.
func (c *Conversation) Clone() *Conversation {
	clone := *c
	clone.Messages = make([]Message, len(c.Messages))
	copy(clone.Messages, c.Messages)
	return &clone
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateConversationID creates a unique conversation ID. Uniqueness here
// guards sidebar selection, not security.
func generateConversationID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "conv_" + hex.EncodeToString(bytes)
}
