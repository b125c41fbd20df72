// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// # Key Types
//
//   - Conversation: A chat thread with sidebar metadata (title, preview)
//   - Message: A single chat entry tagged user, bot, or error
//   - MessageType: The origin tag driving rendering and avatars
//
// # Derivation Rules
//
// Titles derive from the first user prompt (30 runes + ellipsis) but only
// while the title still equals the "New Conversation" placeholder, so a
// manual rename is never overwritten. Previews derive from the latest
// message (50 runes + ellipsis) on every mutation.
package model
