// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vedant159357/gemini-tui/internal/api"
	"github.com/Vedant159357/gemini-tui/internal/config"
	"github.com/Vedant159357/gemini-tui/internal/model"
	"github.com/Vedant159357/gemini-tui/internal/session"
	"github.com/Vedant159357/gemini-tui/internal/storage"
	"github.com/Vedant159357/gemini-tui/internal/ui/styles"
)

// testModel builds a ready chat model over a scripted backend.
func testModel(t *testing.T, handler http.HandlerFunc) (Model, *session.Store) {
	t.Helper()

	backend, err := storage.NewConversationStoreWithPath(filepath.Join(t.TempDir(), "conversations.json"))
	require.NoError(t, err)
	store := session.NewStore(backend)

	var client *api.Client
	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		client = api.NewClient(api.ClientConfig{BaseURL: srv.URL})
	} else {
		client = api.NewClient(api.ClientConfig{BaseURL: "http://127.0.0.1:1"})
	}

	cfg := config.DefaultClientConfig()
	cfg.UI.Typewriter = false

	m := New(store, client, cfg, styles.NewTheme(cfg.UI.Theme))
	m.state = StateReady
	m.width = 100
	m.height = 40
	m.resize()
	return m, store
}

// echoBackend answers every chat prompt with "echo: <prompt>".
func echoBackend(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":    false,
			"response": "echo: " + req.Prompt,
		})
	}
}

func pressEnter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func press(t *testing.T, m Model, keyType tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return updated.(Model), cmd
}

// =============================================================================
// CONNECTIVITY
// =============================================================================

func TestConnectivityFlow(t *testing.T) {
	m, _ := testModel(t, nil)
	m.state = StateConnecting

	// A failed probe keeps connecting and schedules a retry.
	updated, cmd := m.Update(ConnectivityMsg{Err: api.ErrUnreachable})
	m = updated.(Model)
	assert.Equal(t, StateConnecting, m.State())
	assert.NotNil(t, cmd)

	// A successful probe unlocks the UI.
	updated, _ = m.Update(ConnectivityMsg{Err: nil})
	m = updated.(Model)
	assert.Equal(t, StateReady, m.State())
}

// =============================================================================
// SUBMISSION FLOW
// =============================================================================

func TestSubmitBlankIgnored(t *testing.T) {
	m, store := testModel(t, echoBackend(t))
	m.input.SetValue("   ")

	m, cmd := pressEnter(t, m)
	assert.Nil(t, cmd)
	assert.Equal(t, StateReady, m.State())
	assert.Zero(t, store.Count())
}

func TestSubmitCreatesConversationAndAppendsUser(t *testing.T) {
	m, store := testModel(t, echoBackend(t))
	m.input.SetValue("2+2?")

	m, cmd := pressEnter(t, m)
	require.NotNil(t, cmd)
	assert.Equal(t, StateWaiting, m.State())
	assert.Empty(t, m.input.Value())

	// The user message is visible before any reply arrives.
	conv := store.Active()
	require.NotNil(t, conv)
	assert.Equal(t, "2+2?...", conv.Title)
	require.Equal(t, 1, conv.MessageCount())
	assert.Equal(t, model.TypeUser, conv.Messages[0].Type)
}

func TestSubmitRejectedWhileWaiting(t *testing.T) {
	m, store := testModel(t, echoBackend(t))
	m.input.SetValue("first")
	m, _ = pressEnter(t, m)
	require.Equal(t, StateWaiting, m.State())

	m.input.SetValue("second")
	m, cmd := pressEnter(t, m)
	assert.Nil(t, cmd)

	// Only the first prompt was recorded.
	assert.Equal(t, 1, store.Active().MessageCount())
	assert.Equal(t, "second", m.input.Value())
}

func TestReplyRoundTrip(t *testing.T) {
	m, store := testModel(t, echoBackend(t))
	m.input.SetValue("2+2?")
	m, cmd := pressEnter(t, m)
	require.NotNil(t, cmd)

	// Run the submission command synchronously.
	msg := cmd()
	reply, ok := msg.(ReplyMsg)
	require.True(t, ok)
	assert.Equal(t, "echo: 2+2?", reply.Reply)

	updated, _ := m.Update(reply)
	m = updated.(Model)

	assert.Equal(t, StateReady, m.State())
	conv := store.Active()
	require.Equal(t, 2, conv.MessageCount())
	assert.Equal(t, model.TypeBot, conv.Messages[1].Type)
	assert.Equal(t, "echo: 2+2?", conv.Messages[1].Content)
}

func TestReplyPinnedToSubmissionConversation(t *testing.T) {
	m, store := testModel(t, echoBackend(t))
	m.input.SetValue("pin me")
	m, cmd := pressEnter(t, m)
	require.NotNil(t, cmd)
	askedID := store.ActiveID()

	// User starts a new conversation while waiting.
	other, err := store.Create()
	require.NoError(t, err)
	require.NoError(t, store.Select(other.ID))

	updated, _ := m.Update(cmd().(ReplyMsg))
	m = updated.(Model)

	asked, err := store.Get(askedID)
	require.NoError(t, err)
	assert.Equal(t, 2, asked.MessageCount())

	// The conversation the user switched to stays untouched.
	assert.True(t, store.Active().IsEmpty())
	assert.Equal(t, StateReady, m.State())
}

func TestReplyForDeletedConversationDropped(t *testing.T) {
	m, store := testModel(t, echoBackend(t))
	m.input.SetValue("doomed")
	m, cmd := pressEnter(t, m)
	require.NotNil(t, cmd)

	require.NoError(t, store.Delete(store.ActiveID()))

	updated, _ := m.Update(cmd().(ReplyMsg))
	m = updated.(Model)

	assert.Equal(t, StateReady, m.State())
	assert.Zero(t, store.Count())
}

func TestBackendErrorBecomesErrorMessage(t *testing.T) {
	m, store := testModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":    true,
			"response": "API Error: quota exceeded",
		})
	})
	m.input.SetValue("2+2?")
	m, cmd := pressEnter(t, m)
	require.NotNil(t, cmd)

	updated, _ := m.Update(cmd().(ReplyMsg))
	m = updated.(Model)

	conv := store.Active()
	require.Equal(t, 2, conv.MessageCount())
	assert.Equal(t, model.TypeError, conv.Messages[1].Type)
	assert.Equal(t, "API Error: quota exceeded", conv.Messages[1].Content)
	assert.Equal(t, StateReady, m.State())
}

func TestTransportErrorUsesFallbackText(t *testing.T) {
	m, store := testModel(t, nil) // nothing listening
	m.input.SetValue("2+2?")
	m, cmd := pressEnter(t, m)
	require.NotNil(t, cmd)

	updated, _ := m.Update(cmd().(ReplyMsg))
	m = updated.(Model)

	// Raw transport diagnostics never reach the chat.
	conv := store.Active()
	require.Equal(t, 2, conv.MessageCount())
	assert.Equal(t, model.TypeError, conv.Messages[1].Type)
	assert.Equal(t, api.FallbackErrorText, conv.Messages[1].Content)
	assert.Equal(t, StateReady, m.State())
}

// =============================================================================
// CONVERSATION MANAGEMENT KEYS
// =============================================================================

func TestNewConversationKey(t *testing.T) {
	m, store := testModel(t, echoBackend(t))

	m, _ = press(t, m, tea.KeyCtrlN)

	assert.Equal(t, 1, store.Count())
	assert.NotEmpty(t, store.ActiveID())
}

func TestDeleteKeySelectsFirstRemaining(t *testing.T) {
	m, store := testModel(t, echoBackend(t))
	older, err := store.Create()
	require.NoError(t, err)
	_, err = store.Create()
	require.NoError(t, err)

	_, _ = press(t, m, tea.KeyCtrlD)

	assert.Equal(t, 1, store.Count())
	assert.Equal(t, older.ID, store.ActiveID())
}

func TestClearAllRequiresConfirmation(t *testing.T) {
	m, store := testModel(t, echoBackend(t))
	_, err := store.Create()
	require.NoError(t, err)

	m, _ = press(t, m, tea.KeyCtrlL)
	require.Equal(t, StateConfirmClear, m.State())

	// Any key but y cancels.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updated.(Model)
	assert.Equal(t, StateReady, m.State())
	assert.Equal(t, 1, store.Count())

	// y confirms.
	m, _ = press(t, m, tea.KeyCtrlL)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m = updated.(Model)
	assert.Equal(t, StateReady, m.State())
	assert.Zero(t, store.Count())
}

func TestClearAllOnlyOpensWhileReady(t *testing.T) {
	m, store := testModel(t, echoBackend(t))
	m.input.SetValue("first")
	m, _ = pressEnter(t, m)
	require.Equal(t, StateWaiting, m.State())

	// The confirm modal must not open mid-request.
	m, _ = press(t, m, tea.KeyCtrlL)
	assert.Equal(t, StateWaiting, m.State())

	// Submission stays locked while the reply is outstanding.
	m.input.SetValue("second")
	m, cmd := pressEnter(t, m)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, store.Active().MessageCount())

	// Nor from the connecting screen, which would orphan the probe loop.
	m.state = StateConnecting
	m, _ = press(t, m, tea.KeyCtrlL)
	assert.Equal(t, StateConnecting, m.State())
}

func TestRenameCommitAndBlankCancel(t *testing.T) {
	m, store := testModel(t, echoBackend(t))
	conv, err := store.Create()
	require.NoError(t, err)

	// Open rename, type a new title, commit.
	m, _ = press(t, m, tea.KeyCtrlR)
	require.True(t, m.renaming)
	m.renameInput.SetValue("Homework")
	m, _ = pressEnter(t, m)
	assert.False(t, m.renaming)

	got, err := store.Get(conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "Homework", got.Title)

	// Blank rename leaves the title alone.
	m, _ = press(t, m, tea.KeyCtrlR)
	m.renameInput.SetValue("   ")
	m, _ = pressEnter(t, m)

	got, err = store.Get(conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "Homework", got.Title)
}

func TestConversationCycling(t *testing.T) {
	m, store := testModel(t, echoBackend(t))
	older, err := store.Create()
	require.NoError(t, err)
	newer, err := store.Create()
	require.NoError(t, err)
	require.Equal(t, newer.ID, store.ActiveID())

	m, _ = press(t, m, tea.KeyCtrlJ)
	assert.Equal(t, older.ID, store.ActiveID())

	// Clamped at the end of the list.
	m, _ = press(t, m, tea.KeyCtrlJ)
	assert.Equal(t, older.ID, store.ActiveID())

	_, _ = press(t, m, tea.KeyCtrlK)
	assert.Equal(t, newer.ID, store.ActiveID())
}

// =============================================================================
// TYPEWRITER
// =============================================================================

func TestTypewriterRevealsIncrementally(t *testing.T) {
	var tw Typewriter
	tw.Start("conv_1", "abcdefgh")

	require.True(t, tw.Active())
	visible, ok := tw.Visible("conv_1")
	require.True(t, ok)
	assert.Empty(t, visible)

	tw.Advance()
	visible, _ = tw.Visible("conv_1")
	assert.Equal(t, "abc", visible)

	for tw.Advance() {
	}
	visible, _ = tw.Visible("conv_1")
	assert.Equal(t, "abcdefgh", visible)
	assert.False(t, tw.Active())

	// Other conversations are never animated.
	_, ok = tw.Visible("conv_2")
	assert.False(t, ok)
}

func TestViewRendersWithoutPanic(t *testing.T) {
	m, store := testModel(t, echoBackend(t))
	_, err := store.CreateFromPrompt("hello")
	require.NoError(t, err)
	require.NoError(t, store.AppendMessages(store.ActiveID(),
		model.NewUserMessage("hello"),
		model.NewBotMessage("**hi** there"),
		model.NewErrorMessage("API Error: nope")))
	m.refreshViewport()

	out := m.View()
	assert.Contains(t, out, "Conversations")

	m.state = StateConnecting
	assert.Contains(t, m.View(), "Connecting")

	m.state = StateConfirmClear
	assert.Contains(t, m.View(), "Delete ALL")
}
