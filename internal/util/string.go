// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across gemini-tui.
package util

import "strings"

// Ellipsize shortens s to at most maxLen runes and appends "..." whether or
// not anything was cut. Derived sidebar labels always carry the ellipsis.
// Rune-based so multi-byte text is never split mid-character.
func Ellipsize(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	runes := []rune(s)
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}
	return string(runes) + "..."
}

// CollapseNewlines replaces line breaks with single spaces, for one-line
// contexts like sidebar previews.
func CollapseNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// StripControl removes ANSI escape introducers and other control bytes from
// text that originated outside the program (user input, model output).
// Rendering untrusted text into a terminal without this would let embedded
// escape sequences repaint or spoof the UI.
func StripControl(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			sb.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			// Drop C0 controls (including ESC) and DEL.
		case r >= 0x80 && r <= 0x9f:
			// Drop C1 controls (covers 8-bit CSI).
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
