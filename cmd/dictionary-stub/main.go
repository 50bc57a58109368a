// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command dictionary-stub serves an in-memory dictionary service on a local
// port, for developing against the client without the real service.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and .env when present).
//  3. Seed the in-memory service from a YAML file, if configured.
//  4. Start HTTP server with graceful shutdown.
package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/dictionary/internal/api"
	"github.com/taibuivan/dictionary/internal/dictionarytest"
	"github.com/taibuivan/dictionary/internal/platform/constants"
)

// stubConfig is read from STUB_* environment variables.
type stubConfig struct {
	Addr     string `env:"STUB_ADDR" envDefault:":8080"`
	SeedFile string `env:"STUB_SEED_FILE"`
	Debug    bool   `env:"STUB_DEBUG" envDefault:"false"`
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("stub_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		must(log, err, "load .env")
	}

	var cfg stubConfig
	must(log, env.Parse(&cfg), "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("addr", cfg.Addr),
		slog.String("seed_file", cfg.SeedFile),
	)

	// ── 3. Seed ───────────────────────────────────────────────────────────
	service := dictionarytest.NewService(dictionarytest.WithLogger(log))
	if cfg.SeedFile != "" {
		seed, err := dictionarytest.LoadSeed(cfg.SeedFile)
		must(log, err, "load seed")
		must(log, service.Apply(seed), "apply seed")

		log.Info("seed_applied",
			slog.Int("tags", len(seed.Tags)),
			slog.Int("suggestions", len(seed.Suggestions)),
			slog.Int("roles", len(seed.Roles)),
		)
	}

	// The stub has no external dependencies to probe.
	liveness, readiness := api.NewHealthHandlers(nil, log)

	// ── 4. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(cfg.Addr, log, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Dictionary: service.Handler(),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "dictionary-stub"))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
// Startup wiring only.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
