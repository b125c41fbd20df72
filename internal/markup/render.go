// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markup

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Vedant159357/gemini-tui/internal/util"
)

// =============================================================================
// RENDER STYLES
// =============================================================================

// Styles holds the lipgloss styles applied to each node kind.
type Styles struct {
	Bold lipgloss.Style
	Code lipgloss.Style
	Link lipgloss.Style
}

// DefaultStyles returns a reasonable styling for dark terminals.
func DefaultStyles() Styles {
	return Styles{
		Bold: lipgloss.NewStyle().Bold(true),
		Code: lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Background(lipgloss.Color("236")),
		Link: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
	}
}

// =============================================================================
// RENDERER
// =============================================================================

// Render parses s and renders it as styled terminal text. All node content
// is control-stripped first, so escape sequences embedded in model output
// cannot repaint the terminal; the only styling in the result is our own.
func Render(s string, styles Styles) string {
	return RenderNodes(Parse(s), styles)
}

// RenderNodes renders an already-parsed node list.
func RenderNodes(nodes []Node, styles Styles) string {
	var out string
	for _, n := range nodes {
		switch n.Kind {
		case KindLineBreak:
			out += "\n"
		case KindBold:
			out += styles.Bold.Render(util.StripControl(n.Text))
		case KindCode:
			out += styles.Code.Render(util.StripControl(n.Text))
		case KindLink:
			out += styles.Link.Render(util.StripControl(n.Text)) + " (" + util.StripControl(n.URL) + ")"
		default:
			out += util.StripControl(n.Text)
		}
	}
	return out
}

// Plain strips markup and styling, returning the raw visible text. Used for
// previews and the typewriter length calculation.
func Plain(s string) string {
	var out string
	for _, n := range Parse(s) {
		if n.Kind == KindLineBreak {
			out += "\n"
			continue
		}
		out += util.StripControl(n.Text)
	}
	return out
}
