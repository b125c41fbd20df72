// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini provides the HTTP client for the Gemini generateContent API.
package gemini

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

// ClientError represents an error from the Gemini client.
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
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeAuth
	ErrTypeRateLimited
	ErrTypeInvalidResponse
	ErrTypeAPI
)

// Sentinel errors for easy checking.
var (
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrRateLimited = &ClientError{Type: ErrTypeRateLimited, Message: "rate limited by Gemini API"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

const (
	// DefaultBaseURL is the Google generative language endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// DefaultModel is the model used for every prompt.
	DefaultModel = "gemini-2.0-flash"
)

// ClientConfig holds configuration options for the Gemini client.
type ClientConfig struct {
	// APIKey authenticates requests. Required.
	APIKey string

	// BaseURL is the API base URL (default: DefaultBaseURL). Overridable
	// for tests.
	BaseURL string

	// Model is the model name in the request path (default: DefaultModel).
	Model string

	// Timeout for requests (default: 60s). Generation can be slow; the
	// caller's context can cancel earlier.
	Timeout time.Duration
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the Gemini generateContent API.
// It is safe for concurrent use.
//
// A failed generation is reported as a *ClientError; the client performs no
// retries. Upstream callers surface the error to the user, who retries by
// resubmitting.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
}

// NewClient creates a Gemini client. Zero config fields get defaults; the
// API key is the caller's responsibility.
func NewClient(config ClientConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// =============================================================================
// GENERATION
// =============================================================================

// Generate sends a single prompt and returns the model's text reply.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(newGenerateRequest(prompt))
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to encode request", Cause: err}
	}

	url := c.config.BaseURL + "/v1beta/models/" + c.config.Model + ":generateContent?key=" + c.config.APIKey

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to reach Gemini API", Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to read response", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(resp.StatusCode, data)
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(data, &genResp); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	text, ok := genResp.Text()
	if !ok {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "response contained no candidates"}
	}
	return text, nil
}

// statusError maps a non-200 status to a typed error, using the API error
// message when the body carries one.
func (c *Client) statusError(status int, data []byte) *ClientError {
	message := http.StatusText(status)
	var genResp GenerateResponse
	if err := json.Unmarshal(data, &genResp); err == nil && genResp.Error != nil && genResp.Error.Message != "" {
		message = genResp.Error.Message
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &ClientError{Type: ErrTypeAuth, Message: message}
	case status == http.StatusTooManyRequests:
		return &ClientError{Type: ErrTypeRateLimited, Message: message}
	default:
		return &ClientError{Type: ErrTypeAPI, Message: message}
	}
}
