// gemini-server - The HTTP backend fronting the Gemini API.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Vedant159357/gemini-tui/internal/config"
	"github.com/Vedant159357/gemini-tui/internal/gemini"
	"github.com/Vedant159357/gemini-tui/internal/server"
)

func main() {
	log.Println("starting gemini-server...")

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	client := gemini.NewClient(gemini.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
	})
	srv := server.New(client)

	// Cancel on SIGINT/SIGTERM; Run drains connections before returning.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("listening on %s", cfg.Addr())
	if err := srv.Run(ctx, cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		if errors.Is(err, syscall.EADDRINUSE) {
			log.Printf("FATAL: port %s is already in use; is another gemini-server running?", cfg.Port)
			os.Exit(1)
		}
		log.Fatalf("FATAL: %v", err)
	}

	log.Println("server shutdown complete")
}
