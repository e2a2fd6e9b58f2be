package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"papersketch/internal/api"
	"papersketch/internal/cache"
	"papersketch/internal/client"
	"papersketch/internal/config"
	"papersketch/internal/logging"
	mcpserver "papersketch/internal/mcp"
	"papersketch/internal/render"
)

// runServer constructs the shared artifact cache and both servers, then
// blocks until a signal or a server failure.
func runServer(stdio bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logging.Info("Starting PaperSketch server (export format: %s, cache TTL: %s)", cfg.ExportFormat, cfg.CacheTTL)
	if cfg.PublicBaseURL == "" {
		logging.Info("PUBLIC_BASE_URL not set; download links will be relative and will not resolve from embedded widgets")
	}

	artifactCache := cache.New(cfg.CacheTTL)
	summarizer := client.New(cfg.APIEndpoint, cfg.APIKey, cfg.RequestTimeout)

	var renderer render.Renderer
	switch cfg.ExportFormat {
	case config.FormatPDF:
		renderer = render.NewPDFRenderer()
	default:
		renderer = render.NewImageRenderer(render.Options{
			WidthPx: cfg.RenderWidthPx,
			Scale:   cfg.RenderScale,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	apiServer := api.New(cfg, artifactCache)
	mcpServer := mcpserver.NewServer(cfg, artifactCache, summarizer, renderer)

	errCh := make(chan error, 2)
	go func() {
		errCh <- apiServer.Start(ctx)
	}()
	go func() {
		if stdio {
			errCh <- mcpServer.StartStdio(ctx)
		} else {
			errCh <- mcpServer.Start(ctx, cfg.MCPPort)
		}
	}()

	select {
	case <-ctx.Done():
		logging.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := mcpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error("MCP shutdown: %v", err)
	}

	logging.Info("PaperSketch server stopped")
	return nil
}
