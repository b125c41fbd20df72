// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{BaseURL: srv.URL})
}

func TestTestConnectionUp(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/test", r.URL.Path)
		json.NewEncoder(w).Encode(testResponse{Message: "Backend server is running!"})
	})

	assert.NoError(t, client.TestConnection(context.Background()))
}

func TestTestConnectionDown(t *testing.T) {
	client := NewClient(ClientConfig{BaseURL: "http://127.0.0.1:1"})

	err := client.TestConnection(context.Background())
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestTestConnectionWrongStatus(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	assert.ErrorIs(t, client.TestConnection(context.Background()), ErrUnreachable)
}

func TestSendPrompt(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2+2?", req.Prompt)

		json.NewEncoder(w).Encode(chatResponse{Error: false, Response: "4"})
	})

	reply, err := client.SendPrompt(context.Background(), "2+2?")
	require.NoError(t, err)
	assert.Equal(t, "4", reply)
}

func TestSendPromptEnvelopeError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(chatResponse{Error: true, Response: "API Error: quota exceeded"})
	})

	_, err := client.SendPrompt(context.Background(), "2+2?")
	require.Error(t, err)

	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrTypeUpstream, cerr.Type)
	assert.Equal(t, "API Error: quota exceeded", cerr.Message)
}

func TestSendPromptUnreachable(t *testing.T) {
	client := NewClient(ClientConfig{BaseURL: "http://127.0.0.1:1"})

	_, err := client.SendPrompt(context.Background(), "2+2?")
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestUserText(t *testing.T) {
	// Server envelope messages pass through verbatim.
	upstream := &ClientError{Type: ErrTypeUpstream, Message: "API Error: quota exceeded"}
	assert.Equal(t, "API Error: quota exceeded", UserText(upstream))

	// Everything else collapses to the fixed fallback.
	assert.Equal(t, FallbackErrorText, UserText(ErrUnreachable))
	assert.Equal(t, FallbackErrorText, UserText(ErrTimeout))
	assert.Equal(t, FallbackErrorText, UserText(errors.New("tls handshake failure")))
}

func TestSendPromptGarbageBody(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.SendPrompt(context.Background(), "2+2?")

	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrTypeInvalidResponse, cerr.Type)
}
