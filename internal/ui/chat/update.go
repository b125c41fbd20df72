// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file implements the Bubble Tea update loop. The model is the single
// owner of all chat state; commands only do I/O and report back.
package chat

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vedant159357/gemini-tui/internal/api"
	"github.com/Vedant159357/gemini-tui/internal/model"
	"github.com/Vedant159357/gemini-tui/internal/session"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ConnectivityMsg:
		return m.handleConnectivity(msg)

	case ProbeTickMsg:
		if m.state == StateConnecting {
			return m, ProbeCmd(m.client)
		}
		return m, nil

	case ReplyMsg:
		return m.handleReply(msg)

	case TypewriterTickMsg:
		if m.typewriter.Advance() {
			m.refreshViewport()
			if m.typewriter.Active() {
				return m, TypewriterTickCmd()
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// =============================================================================
// CONNECTIVITY
// =============================================================================

func (m Model) handleConnectivity(msg ConnectivityMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// Keep probing on the cadence until the backend shows up.
		m.state = StateConnecting
		return m, ProbeTickCmd(m.cfg.ProbeInterval())
	}
	if m.state == StateConnecting {
		m.state = StateReady
		m.refreshViewport()
	}
	return m, nil
}

// =============================================================================
// SUBMISSION FLOW
// =============================================================================

// submit runs the prompt submission flow:
//
//  1. A blank prompt (after trimming) is ignored.
//  2. Submissions are rejected unless the state is Ready.
//  3. With no active conversation, one is created from the prompt.
//  4. The user message is appended before the request is sent.
//  5. The request is pinned to the submission-time conversation ID.
func (m Model) submit() (tea.Model, tea.Cmd) {
	prompt := strings.TrimSpace(m.input.Value())
	if prompt == "" {
		return m, nil
	}
	if m.state != StateReady {
		return m, nil
	}

	convID := m.store.ActiveID()
	if convID == "" {
		conv, err := m.store.CreateFromPrompt(prompt)
		if err != nil {
			m.statusMsg = "save failed: " + err.Error()
			return m, nil
		}
		convID = conv.ID
	}

	if err := m.store.AppendMessages(convID, model.NewUserMessage(prompt)); err != nil {
		m.statusMsg = "save failed: " + err.Error()
		return m, nil
	}

	m.input.Reset()
	m.state = StateWaiting
	m.statusMsg = ""
	m.typewriter.Stop()
	m.refreshViewport()

	return m, SendPromptCmd(m.client, convID, prompt, m.cfg.Timeout())
}

// handleReply lands a backend response in its pinned conversation. An error
// becomes an error-typed message in the same thread. A conversation deleted
// while waiting swallows the reply.
func (m Model) handleReply(msg ReplyMsg) (tea.Model, tea.Cmd) {
	m.state = StateReady

	var reply model.Message
	if msg.Err != nil {
		// Server-described errors verbatim; raw transport diagnostics never
		// reach the chat.
		reply = model.NewErrorMessage(api.UserText(msg.Err))
	} else {
		reply = model.NewBotMessage(msg.Reply)
	}

	if err := m.store.AppendMessages(msg.ConvID, reply); err != nil {
		if errors.Is(err, session.ErrConversationNotFound) {
			return m, nil
		}
		m.statusMsg = "save failed: " + err.Error()
		return m, nil
	}

	var cmd tea.Cmd
	if msg.Err == nil && m.cfg.UI.Typewriter && msg.ConvID == m.store.ActiveID() {
		m.typewriter.Start(msg.ConvID, msg.Reply)
		cmd = TypewriterTickCmd()
	}

	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, cmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal states capture all keys first.
	if m.renaming {
		return m.handleRenameKey(msg)
	}
	if m.state == StateConfirmClear {
		return m.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		return m.submit()

	case key.Matches(msg, m.keyMap.NewConv):
		if _, err := m.store.Create(); err != nil {
			m.statusMsg = "save failed: " + err.Error()
		}
		m.typewriter.Stop()
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.NextConv):
		m.selectAdjacent(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PrevConv):
		m.selectAdjacent(-1)
		return m, nil

	case key.Matches(msg, m.keyMap.Delete):
		if id := m.store.ActiveID(); id != "" {
			if err := m.store.Delete(id); err != nil {
				m.statusMsg = "delete failed: " + err.Error()
			}
			m.typewriter.Stop()
			m.refreshViewport()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Rename):
		if conv := m.store.Active(); conv != nil {
			m.renaming = true
			m.renameInput.SetValue(conv.Title)
			m.renameInput.CursorEnd()
			m.input.Blur()
			return m, m.renameInput.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.ClearAll):
		// Only from Ready: the confirm modal exits to Ready, which must not
		// unlock a Waiting submission or kill the Connecting probe loop.
		if m.state == StateReady && m.store.Count() > 0 {
			m.state = StateConfirmClear
		}
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleRenameKey drives the rename modal. Enter commits, escape cancels,
// and a title that trims to nothing cancels silently.
func (m Model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		title := m.renameInput.Value()
		if id := m.store.ActiveID(); id != "" {
			if err := m.store.Rename(id, title); err != nil && !errors.Is(err, session.ErrBlankTitle) {
				m.statusMsg = "rename failed: " + err.Error()
			}
		}
		m.closeRename()
		return m, nil

	case tea.KeyEsc, tea.KeyCtrlC:
		m.closeRename()
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

func (m *Model) closeRename() {
	m.renaming = false
	m.renameInput.Reset()
	m.renameInput.Blur()
	m.input.Focus()
	m.refreshViewport()
}

// handleConfirmKey drives the clear-all modal: y confirms, anything else
// cancels.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "y" || msg.String() == "Y" {
		if err := m.store.ClearAll(); err != nil {
			m.statusMsg = "clear failed: " + err.Error()
		}
		m.typewriter.Stop()
	}
	m.state = StateReady
	m.refreshViewport()
	return m, nil
}

// selectAdjacent moves the sidebar selection by delta, clamped at the ends.
func (m *Model) selectAdjacent(delta int) {
	all := m.store.All()
	if len(all) == 0 {
		return
	}

	idx := 0
	active := m.store.ActiveID()
	for i, c := range all {
		if c.ID == active {
			idx = i
			break
		}
	}

	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(all) {
		idx = len(all) - 1
	}

	if all[idx].ID != active {
		m.store.Select(all[idx].ID)
		m.typewriter.Stop()
		m.refreshViewport()
	}
}
