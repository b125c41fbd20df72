// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vedant159357/gemini-tui/internal/api"
	"github.com/Vedant159357/gemini-tui/internal/config"
	"github.com/Vedant159357/gemini-tui/internal/session"
	"github.com/Vedant159357/gemini-tui/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateConnecting   State = iota // Probing the backend on a cadence
	StateReady                     // Ready for input
	StateWaiting                   // A prompt is in flight
	StateConfirmClear              // Clear-all confirmation modal is up
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
//
// All state lives here and mutates only inside Update; the commands spawned
// for I/O return messages instead of touching the model.
type Model struct {
	// State
	state State

	// Dependencies
	store  *session.Store
	client *api.Client
	cfg    *config.ClientConfig
	theme  *styles.Theme

	// Dimensions
	width  int
	height int

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// Rename mode rides on top of the main state.
	renaming    bool
	renameInput textinput.Model

	// Typewriter animation for the latest bot reply
	typewriter Typewriter

	// Key bindings
	keyMap KeyMap

	// Transient status line text ("" = show shortcuts)
	statusMsg string
}

// New creates the chat model. The store is already loaded; the first
// connectivity probe is issued from Init.
func New(store *session.Store, client *api.Client, cfg *config.ClientConfig, theme *styles.Theme) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.StatusBusy

	m := Model{
		state:       StateConnecting,
		store:       store,
		client:      client,
		cfg:         cfg,
		theme:       theme,
		viewport:    viewport.New(0, 0),
		input:       newPromptInput(theme),
		renameInput: newRenameInput(theme),
		spinner:     sp,
		keyMap:      DefaultKeyMap(),
	}
	m.refreshViewport()
	return m
}

// Init starts the spinner and fires the first backend probe.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		textinput.Blink,
		ProbeCmd(m.client),
	)
}

// State returns the current chat state. Used by tests and the status bar.
func (m Model) State() State {
	return m.state
}
