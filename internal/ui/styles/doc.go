// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for gemini-tui.
//
// Colors are defined once as lipgloss.AdaptiveColor pairs so every style
// works on both light and dark terminals. Theme bundles the composed styles
// the chat UI uses; construct one at startup with NewTheme, passing the
// configured "dark" or "light" mode. The mode forces lip gloss's background
// detection, while the color depth still comes from termenv.
package styles
