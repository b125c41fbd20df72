// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// MessageType tags the origin of a message, which drives rendering and the
// avatar shown next to it.
type MessageType string

const (
	TypeUser  MessageType = "user"
	TypeBot   MessageType = "bot"
	TypeError MessageType = "error"
)

// String returns the string representation of the message type.
func (t MessageType) String() string {
	return string(t)
}

// DisplayName returns a human-readable label for the message type.
func (t MessageType) DisplayName() string {
	switch t {
	case TypeUser:
		return "You"
	case TypeBot:
		return "Gemini"
	case TypeError:
		return "Error"
	default:
		return string(t)
	}
}

// Message represents a single message in a conversation.
type Message struct {
	Type    MessageType `json:"type"`
	Content string      `json:"content"`
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return Message{Type: TypeUser, Content: content}
}

// NewBotMessage creates a bot reply message.
func NewBotMessage(content string) Message {
	return Message{Type: TypeBot, Content: content}
}

// NewErrorMessage creates an error message rendered as a chat bubble.
func NewErrorMessage(content string) Message {
	return Message{Type: TypeError, Content: content}
}

// IsUser reports whether the message came from the user.
func (m Message) IsUser() bool {
	return m.Type == TypeUser
}
