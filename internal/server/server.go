// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server implements the HTTP backend that fronts the Gemini API.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// =============================================================================
// RESPONSE ENVELOPE
// =============================================================================

// ChatRequest is the POST /api/chat request body.
type ChatRequest struct {
	Prompt string `json:"prompt"`
}

// ChatResponse is the envelope for every /api/chat reply, success or not.
// Error reports whether Response carries model text or an error description.
type ChatResponse struct {
	Error    bool   `json:"error"`
	Response string `json:"response"`
}

// TestResponse is the GET /api/test reply.
type TestResponse struct {
	Message string `json:"message"`
}

// respondJSON writes a JSON payload with the given status.
func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// =============================================================================
// SERVER
// =============================================================================

// Generator produces a model reply for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	generator Generator
}

// New creates a server over the given generator.
func New(generator Generator) *Server {
	return &Server{generator: generator}
}

// Router builds the chi router with the full middleware stack.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)

	// Browser clients are served cross-origin during development.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/api/test", s.handleTest)
	r.Post("/api/chat", s.handleChat)

	return r
}

// =============================================================================
// HANDLERS
// =============================================================================

// handleTest is the connectivity probe endpoint.
func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, TestResponse{Message: "Backend server is running!"})
}

// handleChat forwards a prompt to the generator and wraps the outcome in the
// ChatResponse envelope. All failures below the transport layer come back
// as HTTP 400 with Error set, so the client handles exactly one shape.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		respondJSON(w, http.StatusBadRequest, ChatResponse{Error: true, Response: "Prompt is required"})
		return
	}

	reply, err := s.generator.Generate(r.Context(), req.Prompt)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, ChatResponse{Error: true, Response: "API Error: " + err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, ChatResponse{Error: false, Response: reply})
}

// =============================================================================
// HTTP SERVER LIFECYCLE
// =============================================================================

// NewHTTPServer wraps the router in an http.Server with sane timeouts.
// WriteTimeout leaves room for slow generations.
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// Run starts the server and blocks until ctx is cancelled, then shuts down
// gracefully with a 10s deadline.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := s.NewHTTPServer(addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutdown signal received, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
