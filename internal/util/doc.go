// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across gemini-tui.
//
// # Key Functions
//
// String Utilities:
//   - Ellipsize: UTF-8 safe shortening with an unconditional ellipsis
//   - CollapseNewlines: Flatten text for one-line display contexts
//   - StripControl: Remove terminal control bytes from untrusted text
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Shorten long strings safely for display
//	display := util.Ellipsize(longText, 50)
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util
