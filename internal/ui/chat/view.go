// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file renders the model. Layout, top to bottom: header, sidebar plus
// chat viewport side by side, input box, status bar. The connecting screen
// and the clear-all modal replace the middle section.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Vedant159357/gemini-tui/internal/markup"
	"github.com/Vedant159357/gemini-tui/internal/model"
	"github.com/Vedant159357/gemini-tui/internal/util"
)

const (
	sidebarWidth = 28
	minChatWidth = 20
	chromeHeight = 5 // header + input + status bar + borders
)

// =============================================================================
// LAYOUT
// =============================================================================

// resize recomputes component dimensions after a terminal resize.
func (m *Model) resize() {
	chatWidth := m.width - sidebarWidth - 4
	if chatWidth < minChatWidth {
		chatWidth = minChatWidth
	}
	chatHeight := m.height - chromeHeight
	if chatHeight < 3 {
		chatHeight = 3
	}

	m.viewport.Width = chatWidth
	m.viewport.Height = chatHeight
	m.input.Width = m.width - 8
	m.renameInput.Width = m.width - 16
}

// View renders the whole chat screen.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	if m.state == StateConnecting {
		return m.viewConnecting()
	}

	header := m.viewHeader()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), m.viewport.View())
	if m.state == StateConfirmClear {
		body = m.viewConfirmClear()
	}
	input := m.viewInput()
	status := m.viewStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, input, status)
}

// =============================================================================
// SECTIONS
// =============================================================================

func (m Model) viewHeader() string {
	title := m.theme.Header.Render("Gemini")
	tag := m.theme.HeaderTag.Render("terminal chat")
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", tag)
}

func (m Model) viewConnecting() string {
	box := m.theme.ConnectBox.Render(
		m.spinner.View() + " Connecting to backend...\n\n" +
			m.theme.HeaderTag.Render("retrying every "+m.cfg.ProbeInterval().String()))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewConfirmClear() string {
	box := m.theme.ConfirmBox.Render(
		m.theme.ConfirmWarn.Render("Delete ALL conversations?") +
			"\n\nThis cannot be undone.\n\n" +
			"y: delete    any other key: cancel")
	height := m.height - chromeHeight
	if height < 3 {
		height = 3
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

// viewSidebar lists conversations newest first, active one highlighted.
func (m Model) viewSidebar() string {
	var b strings.Builder
	b.WriteString(m.theme.SidebarTitle.Render("Conversations"))
	b.WriteString("\n\n")

	all := m.store.All()
	if len(all) == 0 {
		b.WriteString(m.theme.SidebarEmpty.Render("No conversations yet"))
	}

	active := m.store.ActiveID()
	innerWidth := sidebarWidth - 4
	for _, conv := range all {
		title := runewidth.Truncate(conv.Title, innerWidth, "...")
		preview := runewidth.Truncate(conv.Preview, innerWidth, "...")

		if conv.ID == active {
			b.WriteString(m.theme.SidebarItemSelected.Render(title))
		} else {
			b.WriteString(m.theme.SidebarItem.Render(title))
		}
		b.WriteString("\n")
		b.WriteString(m.theme.SidebarPreview.Render(preview))
		b.WriteString("\n\n")
	}

	return m.theme.Sidebar.
		Width(sidebarWidth).
		Height(m.viewport.Height).
		Render(b.String())
}

func (m Model) viewInput() string {
	if m.renaming {
		return m.theme.InputContainer.Width(m.width - 2).Render(m.renameInput.View())
	}
	return m.theme.InputContainer.Width(m.width - 2).Render(m.input.View())
}

func (m Model) viewStatusBar() string {
	var status string
	switch m.state {
	case StateWaiting:
		status = m.theme.StatusBusy.Render(m.spinner.View() + "thinking")
	case StateConnecting:
		status = m.theme.StatusDown.Render("offline")
	default:
		status = m.theme.StatusOK.Render("connected")
	}

	right := m.statusMsg
	if right == "" {
		var parts []string
		for _, b := range m.keyMap.ShortHelp() {
			parts = append(parts,
				m.theme.ShortcutKey.Render(b.Help().Key)+" "+
					m.theme.ShortcutDesc.Render(b.Help().Desc))
		}
		right = strings.Join(parts, "  ")
	}

	return m.theme.StatusBar.Width(m.width).Render(status + "  " + right)
}

// =============================================================================
// CONVERSATION RENDERING
// =============================================================================

// refreshViewport re-renders the active conversation into the viewport.
func (m *Model) refreshViewport() {
	conv := m.store.Active()
	if conv == nil {
		m.viewport.SetContent(m.theme.SidebarEmpty.Render("Start typing to begin a new conversation."))
		return
	}
	m.viewport.SetContent(m.renderConversation(conv))
}

// renderConversation renders every message as a labeled bubble. The last
// bot message may be mid-typewriter, in which case only the revealed prefix
// is shown, unstyled.
func (m *Model) renderConversation(conv *model.Conversation) string {
	width := m.viewport.Width
	if width <= 0 {
		width = 72
	}

	var b strings.Builder
	for i, msg := range conv.Messages {
		label := m.theme.BubbleLabel.Render(msg.Type.DisplayName())

		content := msg.Content
		animating := false
		if i == len(conv.Messages)-1 && msg.Type == model.TypeBot {
			if prefix, ok := m.typewriter.Visible(conv.ID); ok {
				content = prefix
				animating = true
			}
		}

		var bubble string
		switch msg.Type {
		case model.TypeUser:
			bubble = m.theme.UserBubble.MaxWidth(width).Render(util.StripControl(content))
		case model.TypeError:
			bubble = m.theme.ErrorBubble.MaxWidth(width).Render(util.StripControl(content))
		default:
			body := markup.Render(content, m.theme.Markup)
			if animating {
				body = markup.Plain(content)
			}
			bubble = m.theme.BotBubble.MaxWidth(width).Render(body)
		}

		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(bubble)
		b.WriteString("\n\n")
	}

	return b.String()
}
