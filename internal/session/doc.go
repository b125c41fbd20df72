// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session manages the in-memory conversation collection.
//
// # Key Types
//
//   - Store: The conversation collection plus active selection
//
// # Usage
//
//	backend, err := storage.NewConversationStore()
//	if err != nil {
//	    return err
//	}
//	store := session.NewStore(backend)
//
//	conv, err := store.CreateFromPrompt("hello")
//	if err != nil {
//	    return err
//	}
//	err = store.AppendMessages(conv.ID,
//	    model.NewUserMessage("hello"),
//	    model.NewBotMessage("hi there"))
//
// # Write-Through
//
// Every mutation saves the whole collection before returning, so a crash
// loses at most the operation in flight. Reads return deep copies; the UI
// never holds a pointer into the store's internal state.
package session
