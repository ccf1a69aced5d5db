// Package main implements the entry point for the medkb server, which
// serves a validated medical knowledge base over a read-only HTTP API.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/phrazzld/medkb/internal/config"
	"github.com/phrazzld/medkb/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}
	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("content_dir", cfg.Content.Dir),
		slog.Bool("fail_on_lint", cfg.Content.FailOnLint))

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		l.Error("Failed to initialize application", slog.String("error", err.Error()))
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
