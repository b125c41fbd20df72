// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the client and server.
package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// =============================================================================
// SERVER CONFIG
// =============================================================================

// ErrMissingAPIKey is returned when GEMINI_API_KEY is not set. The server
// refuses to start without it rather than failing on the first request.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is not set")

// ServerConfig is the backend configuration, loaded from environment
// variables with an optional .env file for development.
type ServerConfig struct {
	// GeminiAPIKey authenticates against the Gemini API. Required.
	GeminiAPIKey string

	// Port is the listen port (default: 5000).
	Port string

	// GeminiBaseURL overrides the Gemini endpoint. Empty means the real
	// Google endpoint; set in tests.
	GeminiBaseURL string
}

// LoadServer loads the server configuration from the environment.
// A .env file in the working directory is loaded first if present.
func LoadServer() (*ServerConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables only")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &ServerConfig{
		GeminiAPIKey:  apiKey,
		Port:          getEnv("PORT", "5000"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
	}, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// Addr returns the listen address for net/http.
func (c *ServerConfig) Addr() string {
	return ":" + c.Port
}
