// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session manages the in-memory conversation collection.
package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/Vedant159357/gemini-tui/internal/model"
	"github.com/Vedant159357/gemini-tui/internal/storage"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrConversationNotFound is returned when an ID is not in the collection.
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrBlankTitle is returned when a rename trims down to nothing.
	ErrBlankTitle = errors.New("title is blank")
)

// =============================================================================
// SESSION STORE
// =============================================================================

// Store owns the conversation collection and the active selection. Every
// mutation is written through to persistent storage immediately, so the
// in-memory collection and the file never drift apart for longer than one
// operation.
//
// The zero value is not usable; construct with NewStore.
type Store struct {
	mu       sync.Mutex
	backend  *storage.ConversationStore
	convs    []*model.Conversation
	activeID string
}

// NewStore creates a store over the given persistence backend and loads the
// existing collection. The most recent conversation (list head) becomes
// active; an empty collection leaves no active conversation.
func NewStore(backend *storage.ConversationStore) *Store {
	s := &Store{
		backend: backend,
		convs:   backend.Load(),
	}
	if len(s.convs) > 0 {
		s.activeID = s.convs[0].ID
	}
	return s
}

// save writes the collection through to disk. Callers hold s.mu.
func (s *Store) save() error {
	return s.backend.Save(s.convs)
}

// indexOf returns the position of id in the collection. Callers hold s.mu.
func (s *Store) indexOf(id string) int {
	for i, c := range s.convs {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// =============================================================================
// READ OPERATIONS
// =============================================================================

// Active returns the currently selected conversation, or nil when the
// collection is empty. The returned value is a deep copy; mutate through
// store operations, not on the copy.
func (s *Store) Active() *model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(s.activeID); i >= 0 {
		return s.convs[i].Clone()
	}
	return nil
}

// ActiveID returns the ID of the selected conversation, or "" when none.
func (s *Store) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// All returns deep copies of every conversation, newest first.
func (s *Store) All() []*model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Conversation, len(s.convs))
	for i, c := range s.convs {
		out[i] = c.Clone()
	}
	return out
}

// Count returns the number of conversations.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.convs)
}

// Get returns a deep copy of the conversation with the given ID.
func (s *Store) Get(id string) (*model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.convs[i].Clone(), nil
	}
	return nil, ErrConversationNotFound
}

// =============================================================================
// MUTATING OPERATIONS
// =============================================================================

// Create prepends an empty conversation, selects it, and persists.
func (s *Store) Create() (*model.Conversation, error) {
	return s.insert(model.NewConversation())
}

// CreateFromPrompt prepends a conversation seeded with a derived title and
// preview, selects it, and persists. Used on the submit-with-no-active path.
func (s *Store) CreateFromPrompt(prompt string) (*model.Conversation, error) {
	return s.insert(model.NewConversationFromPrompt(prompt))
}

func (s *Store) insert(conv *model.Conversation) (*model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.convs = append([]*model.Conversation{conv}, s.convs...)
	s.activeID = conv.ID
	if err := s.save(); err != nil {
		return nil, err
	}
	return conv.Clone(), nil
}

// Select makes the conversation with the given ID active.
func (s *Store) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return ErrConversationNotFound
	}
	s.activeID = id
	return nil
}

// Delete removes a conversation. Deleting the active conversation moves the
// selection to the first remaining one; deleting the last conversation
// leaves the collection empty with no selection.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrConversationNotFound
	}

	s.convs = append(s.convs[:i], s.convs[i+1:]...)
	if s.activeID == id {
		s.activeID = ""
		if len(s.convs) > 0 {
			s.activeID = s.convs[0].ID
		}
	}
	return s.save()
}

// ClearAll removes every conversation and clears the selection. The caller
// is responsible for confirming with the user first.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.convs = []*model.Conversation{}
	s.activeID = ""
	return s.save()
}

// Rename sets a conversation title. The title is trimmed first; a title
// that trims down to nothing is rejected and the conversation keeps its
// current name.
func (s *Store) Rename(id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrBlankTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrConversationNotFound
	}
	s.convs[i].Rename(title)
	return s.save()
}

// AppendMessages adds messages to a conversation by ID and persists. The
// target is addressed by ID rather than "the active conversation" so a
// reply that arrives after the user switched away still lands in the
// conversation that asked the question.
func (s *Store) AppendMessages(id string, messages ...model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrConversationNotFound
	}
	s.convs[i].Append(messages...)
	return s.save()
}
