// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator scripts the generator outcome per prompt.
type fakeGenerator struct {
	reply string
	err   error
	panic bool
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if f.panic {
		panic(errors.New("generator exploded"))
	}
	return f.reply, f.err
}

func doRequest(t *testing.T, gen Generator, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	New(gen).Router().ServeHTTP(rec, req)
	return rec
}

func decodeChat(t *testing.T, rec *httptest.ResponseRecorder) ChatResponse {
	t.Helper()
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestTestEndpoint(t *testing.T) {
	rec := doRequest(t, &fakeGenerator{}, http.MethodGet, "/api/test", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp TestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Backend server is running!", resp.Message)
}

func TestChatSuccess(t *testing.T) {
	rec := doRequest(t, &fakeGenerator{reply: "4"}, http.MethodPost, "/api/chat", `{"prompt":"2+2?"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeChat(t, rec)
	assert.False(t, resp.Error)
	assert.Equal(t, "4", resp.Response)
}

func TestChatMissingPrompt(t *testing.T) {
	for _, body := range []string{`{}`, `{"prompt":""}`, `{"prompt":"   "}`} {
		rec := doRequest(t, &fakeGenerator{}, http.MethodPost, "/api/chat", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		resp := decodeChat(t, rec)
		assert.True(t, resp.Error)
		assert.Equal(t, "Prompt is required", resp.Response)
	}
}

func TestChatMalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeGenerator{}, http.MethodPost, "/api/chat", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, decodeChat(t, rec).Error)
}

func TestChatGeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("API key not valid")}
	rec := doRequest(t, gen, http.MethodPost, "/api/chat", `{"prompt":"2+2?"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeChat(t, rec)
	assert.True(t, resp.Error)
	assert.Equal(t, "API Error: API key not valid", resp.Response)
}

func TestChatPanicRecovered(t *testing.T) {
	rec := doRequest(t, &fakeGenerator{panic: true}, http.MethodPost, "/api/chat", `{"prompt":"2+2?"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeChat(t, rec)
	assert.True(t, resp.Error)
	assert.Equal(t, "Server error: generator exploded", resp.Response)
}

func TestRequestIDHeader(t *testing.T) {
	rec := doRequest(t, &fakeGenerator{}, http.MethodGet, "/api/test", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")

	rec := httptest.NewRecorder()
	New(&fakeGenerator{}).Router().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
