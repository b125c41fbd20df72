// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server implements the HTTP backend that fronts the Gemini API.
//
// # Endpoints
//
//	GET  /api/test   connectivity probe, returns {"message": "Backend server is running!"}
//	POST /api/chat   {"prompt": "..."} -> {"error": bool, "response": "..."}
//
// # Error Envelope
//
// Every /api/chat outcome uses the same envelope. A missing prompt and a
// failed generation both come back as HTTP 400 with Error true; a handler
// panic comes back as HTTP 500 in the same shape. The client therefore
// parses exactly one response type.
//
// # Usage
//
//	client := gemini.NewClient(gemini.ClientConfig{APIKey: cfg.GeminiAPIKey})
//	srv := server.New(client)
//	err := srv.Run(ctx, cfg.Addr())
package server
