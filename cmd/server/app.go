package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/phrazzld/medkb/internal/config"
	"github.com/phrazzld/medkb/internal/content"
	"github.com/phrazzld/medkb/internal/content/seed"
	"github.com/phrazzld/medkb/internal/library"
	"github.com/phrazzld/medkb/internal/lint"
)

// application holds the loaded library and everything the server needs.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	library *library.Library
}

// newApplication loads and validates the knowledge base. The server never
// starts on content that fails validation.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	lib, err := library.Load(ctx, content.NewLoader(contentFS(cfg.Content), logger), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}

	findings := lint.OneWayEdges(lib.Graph())
	for _, f := range findings {
		logger.Warn("one-way symmetric link", slog.String("finding", f.String()))
	}
	if cfg.Content.FailOnLint && len(findings) > 0 {
		return nil, fmt.Errorf("content lint failed: %d one-way symmetric link(s)", len(findings))
	}

	logger.Info("Application initialized successfully",
		slog.Any("collections", lib.Names()),
		slog.Int("lint_findings", len(findings)))

	return &application{
		config:  cfg,
		logger:  logger,
		library: lib,
	}, nil
}

func contentFS(cfg config.ContentConfig) fs.FS {
	if cfg.Dir == "" {
		return seed.Library()
	}
	return os.DirFS(cfg.Dir)
}

// cleanup releases application resources. The library is in-memory, so
// there is nothing to close beyond flushing a final log line.
func (app *application) cleanup() {
	app.logger.Info("Application cleanup completed")
}
