// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini provides the HTTP client for the Gemini generateContent API.
//
// # Key Types
//
//   - Client: Thread-safe client for the generateContent endpoint
//   - ClientError: Typed error with an ErrorType category
//
// # Usage
//
//	client := gemini.NewClient(gemini.ClientConfig{APIKey: key})
//	reply, err := client.Generate(ctx, "What is the capital of France?")
//	if err != nil {
//	    var cerr *gemini.ClientError
//	    if errors.As(err, &cerr) && cerr.Type == gemini.ErrTypeAuth {
//	        // bad or missing API key
//	    }
//	    return err
//	}
//
// # Error Handling
//
// The client performs no retries. Every failure is surfaced as a
// *ClientError and the user retries by resubmitting the prompt.
package gemini
