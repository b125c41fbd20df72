// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markup parses the inline markup subset used in model replies.
//
// # Supported Markup
//
//	**bold**         bold span
//	`code`           inline code span
//	[label](url)     link, rendered as label (url)
//	\n               line break
//
// Spans do not nest and unterminated markers stay literal. Everything else
// passes through as plain text with control characters stripped, so model
// output can never inject escape sequences into the terminal.
//
// # Usage
//
//	rendered := markup.Render(reply, markup.DefaultStyles())
package markup
