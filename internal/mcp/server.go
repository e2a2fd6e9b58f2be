// Package mcp exposes the papersketch tool and widget resource to the agent
// runtime over the Model Context Protocol.
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"papersketch/internal/cache"
	"papersketch/internal/client"
	"papersketch/internal/config"
	"papersketch/internal/logging"
	"papersketch/internal/render"
	"papersketch/internal/version"
)

type Server struct {
	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
	cfg        *config.Config
	cache      *cache.Cache
	summarizer client.Summarizer
	renderer   render.Renderer
}

// NewServer wires the MCP server around its collaborators. The cache is the
// same instance the download server reads; summarizer and renderer are
// injected so tests can substitute fakes.
func NewServer(cfg *config.Config, artifactCache *cache.Cache, summarizer client.Summarizer, renderer render.Renderer) *Server {
	mcpServer := server.NewMCPServer(
		"papersketch-server",
		version.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithRecovery(),
	)

	httpServer := server.NewStreamableHTTPServer(mcpServer)

	s := &Server{
		mcpServer:  mcpServer,
		httpServer: httpServer,
		cfg:        cfg,
		cache:      artifactCache,
		summarizer: summarizer,
		renderer:   renderer,
	}

	s.setupTools()
	s.setupResources()

	return s
}

// Start serves MCP over streamable HTTP transport.
func (s *Server) Start(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	logging.Info("Starting MCP server using streamable HTTP transport on %s", addr)
	logging.Info("MCP endpoint will be available at http://localhost:%d/mcp", port)

	if err := s.httpServer.Start(addr); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}

// StartStdio serves MCP over stdio transport for local agent hosts.
func (s *Server) StartStdio(ctx context.Context) error {
	logging.Info("Starting MCP server using stdio transport")

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("MCP server shutting down...")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("MCP server shutdown: %w", err)
		}
	}
	return nil
}
