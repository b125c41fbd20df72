// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the TUI's client for the backend HTTP server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error talking to the backend.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeUnreachable
	ErrTypeTimeout
	ErrTypeUpstream
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeUnreachable, Message: "backend is unreachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// FallbackErrorText is what the chat shows for any failure the server did
// not describe itself. Failure subtypes are not distinguished to the user.
const FallbackErrorText = "An error occurred while processing your request."

// UserText returns the error text to show in the chat: a server envelope
// message verbatim, the fixed fallback for everything else.
func UserText(err error) string {
	var cerr *ClientError
	if errors.As(err, &cerr) && cerr.Type == ErrTypeUpstream {
		return cerr.Message
	}
	return FallbackErrorText
}

// =============================================================================
// CLIENT
// =============================================================================

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the backend base URL (default: http://127.0.0.1:5000).
	BaseURL string

	// Timeout bounds each prompt request (default: 60s).
	Timeout time.Duration

	// ProbeTimeout bounds connectivity probes (default: 2s). Probes run on
	// a cadence; a probe that outlives its interval is useless.
	ProbeTimeout time.Duration
}

// Client talks to the backend server. It is safe for concurrent use.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	probe      *http.Client
}

// NewClient creates a backend client. Zero config fields get defaults.
func NewClient(config ClientConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:5000"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if config.ProbeTimeout == 0 {
		config.ProbeTimeout = 2 * time.Second
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		probe:      &http.Client{Timeout: config.ProbeTimeout},
	}
}

// =============================================================================
// WIRE TYPES
// =============================================================================

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type chatResponse struct {
	Error    bool   `json:"error"`
	Response string `json:"response"`
}

type testResponse struct {
	Message string `json:"message"`
}

// =============================================================================
// OPERATIONS
// =============================================================================

// TestConnection probes GET /api/test. A nil return means the backend is up
// and answering with its expected banner.
func (c *Client) TestConnection(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/api/test", nil)
	if err != nil {
		return &ClientError{Type: ErrTypeUnknown, Message: "failed to create request", Cause: err}
	}

	resp, err := c.probe.Do(req)
	if err != nil {
		return ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrUnreachable
	}

	var body testResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "unexpected probe response"}
	}
	return nil
}

// SendPrompt posts a prompt to /api/chat and returns the reply text. An
// envelope with Error set becomes an ErrTypeUpstream error carrying the
// server's message verbatim.
func (c *Client) SendPrompt(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{Prompt: prompt})
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", ErrUnreachable
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to read response", Cause: err}
	}

	var envelope chatResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	if envelope.Error {
		return "", &ClientError{Type: ErrTypeUpstream, Message: envelope.Response}
	}
	return envelope.Response, nil
}
