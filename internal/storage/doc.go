// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides conversation persistence for gemini-tui.
//
// # Key Types
//
//   - ConversationStore: Single-file JSON persistence for the collection
//
// # Usage
//
//	store, err := storage.NewConversationStore()
//	if err != nil {
//	    return err
//	}
//
//	convs := store.Load() // never fails; corrupt file -> empty collection
//	convs = append(convs, model.NewConversation())
//	if err := store.Save(convs); err != nil {
//	    return err
//	}
//
// # Storage Location
//
// Conversations are stored in ~/.gemini-tui/conversations.json as one JSON
// array. Writes are atomic (temp file + fsync + rename) so a crash mid-save
// leaves the previous collection intact.
package storage
