// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api hosts the local dictionary stub on a real listener.

The versioned dictionary API comes from [dictionarytest.Service]; this
package adds the health probes and the [http.Server] lifecycle around it.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/dictionary/internal/platform/constants"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

// Handlers groups the handler sets mounted by the server.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler.
	Readiness http.HandlerFunc

	// Dictionary serves the versioned dictionary API at the root.
	Dictionary http.Handler
}

// # Server Initialization

// NewServer builds the router and binds it to addr.
func NewServer(addr string, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Dictionary API
	// The dictionary handler carries its own request id and logging chain.
	r.Mount("/", h.Dictionary)

	return &Server{
		log: log,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler returns the root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
