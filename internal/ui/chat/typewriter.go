// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

// =============================================================================
// TYPEWRITER ANIMATION
// =============================================================================

// revealPerTick is how many runes each animation step uncovers.
const revealPerTick = 3

// Typewriter reveals a bot reply a few characters per tick. It is purely
// cosmetic: the full reply is already stored in the conversation before the
// animation starts, so quitting mid-animation loses nothing.
type Typewriter struct {
	convID   string
	content  []rune
	revealed int
}

// Start begins animating the given reply in the given conversation.
func (t *Typewriter) Start(convID, content string) {
	t.convID = convID
	t.content = []rune(content)
	t.revealed = 0
}

// Advance uncovers the next chunk. Returns false when nothing is animating.
func (t *Typewriter) Advance() bool {
	if !t.Active() {
		return false
	}
	t.revealed += revealPerTick
	if t.revealed >= len(t.content) {
		t.revealed = len(t.content)
	}
	return true
}

// Active reports whether an animation is in progress.
func (t *Typewriter) Active() bool {
	return len(t.content) > 0 && t.revealed < len(t.content)
}

// Stop ends the animation immediately.
func (t *Typewriter) Stop() {
	t.content = nil
	t.revealed = 0
	t.convID = ""
}

// Visible returns the revealed prefix for the given conversation, and
// whether that conversation's last message is being animated.
func (t *Typewriter) Visible(convID string) (string, bool) {
	if t.convID != convID || len(t.content) == 0 {
		return "", false
	}
	return string(t.content[:t.revealed]), true
}
