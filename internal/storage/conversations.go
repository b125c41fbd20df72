// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides conversation persistence for gemini-tui.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Vedant159357/gemini-tui/internal/model"
	"github.com/Vedant159357/gemini-tui/internal/util"
)

// =============================================================================
// CONVERSATION STORE
// =============================================================================

// ConversationStore persists the conversation collection as a single JSON
// file. The whole list is written on every save; collections here are small
// (dozens of conversations, not thousands) and a single file keeps the
// on-disk state trivially consistent.
type ConversationStore struct {
	// Path is the collection file.
	// Default: ~/.gemini-tui/conversations.json
	Path string
}

// NewConversationStore creates a store rooted in the user's home directory.
func NewConversationStore() (*ConversationStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Join(homeDir, ".gemini-tui")
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &ConversationStore{
		Path: filepath.Join(baseDir, "conversations.json"),
	}, nil
}

// NewConversationStoreWithPath creates a store backed by a custom file.
func NewConversationStoreWithPath(path string) (*ConversationStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return &ConversationStore{Path: path}, nil
}

// =============================================================================
// LOAD OPERATIONS
// =============================================================================

// Load reads the conversation collection from disk. A missing or corrupt
// file yields an empty collection rather than an error: the UI starts fresh
// and the next save overwrites whatever was there.
func (s *ConversationStore) Load() []*model.Conversation {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return []*model.Conversation{}
	}

	var convs []*model.Conversation
	if err := json.Unmarshal(data, &convs); err != nil {
		return []*model.Conversation{}
	}
	if convs == nil {
		convs = []*model.Conversation{}
	}
	return convs
}

// =============================================================================
// SAVE OPERATIONS
// =============================================================================

// Save writes the full conversation collection to disk.
func (s *ConversationStore) Save(convs []*model.Conversation) error {
	if convs == nil {
		convs = []*model.Conversation{}
	}

	data, err := json.MarshalIndent(convs, "", "  ")
	if err != nil {
		return err
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	return util.AtomicWriteFile(s.Path, data, 0644)
}

// Clear removes the collection file entirely.
func (s *ConversationStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
