// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the TUI's client for the backend HTTP server.
//
// # Key Types
//
//   - Client: Thread-safe client for /api/test and /api/chat
//   - ClientError: Typed error with an ErrorType category
//
// # Usage
//
//	client := api.NewClient(api.ClientConfig{BaseURL: cfg.Server.URL})
//	if err := client.TestConnection(ctx); err != nil {
//	    // backend not up yet; retry on a cadence
//	}
//	reply, err := client.SendPrompt(ctx, "2+2?")
//
// # Error Normalization
//
// The backend wraps every chat outcome in one envelope. SendPrompt unwraps
// it: envelope errors surface as ErrTypeUpstream with the server's message
// verbatim, transport failures as ErrTypeUnreachable or ErrTypeTimeout.
package api
