// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Vedant159357/gemini-tui/internal/ui/styles"
)

// newPromptInput builds the main prompt field.
func newPromptInput(theme *styles.Theme) textinput.Model {
	in := textinput.New()
	in.Placeholder = "Ask Gemini anything..."
	in.Prompt = "> "
	in.PromptStyle = theme.InputPrompt
	in.PlaceholderStyle = theme.InputPlaceholder
	in.CharLimit = 0
	in.Focus()
	return in
}

// newRenameInput builds the rename field, focused on demand.
func newRenameInput(theme *styles.Theme) textinput.Model {
	in := textinput.New()
	in.Placeholder = "New title"
	in.Prompt = "Rename: "
	in.PromptStyle = theme.InputPrompt
	in.PlaceholderStyle = theme.InputPlaceholder
	in.CharLimit = 120
	return in
}
