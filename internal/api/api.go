// Package api provides the HTTP download server for rendered artifacts.
// It runs beside the MCP server on its own port: the tool hands out URLs
// pointing here, and clients fetch them with a plain GET.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"papersketch/internal/cache"
	internalconfig "papersketch/internal/config"
	"papersketch/internal/logging"
	"papersketch/internal/version"
)

type Server struct {
	cfg        *internalconfig.Config
	cache      *cache.Cache
	httpServer *http.Server
}

func New(cfg *internalconfig.Config, artifactCache *cache.Cache) *Server {
	return &Server{
		cfg:   cfg,
		cache: artifactCache,
	}
}

// Router builds the gin engine with all routes registered. Split out from
// Start so tests can drive it with httptest.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", s.healthCheck)

	// Canonical download route plus the legacy alias kept for widgets built
	// before the file route existed. Both resolve the same cache.
	router.GET("/papersketch/file/:token", s.handleDownload)
	router.GET("/papersketch/pdf/:token", s.handleDownload)

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.APIPort),
		Handler: s.Router(),
	}

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("download server error: %v", err)
		}
	}()

	logging.Info("Download server listening on :%d", s.cfg.APIPort)

	// Wait for context cancellation, then drain
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

// handleDownload resolves a token to cached artifact bytes. A malformed or
// unknown token is simply a miss; possession of a live token is the only
// access control by design.
func (s *Server) handleDownload(c *gin.Context) {
	token := c.Param("token")

	entry, ok := s.cache.Get(token)
	if !ok {
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.String(http.StatusNotFound, "artifact not found or expired")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", entry.Filename))
	// One-shot ephemeral artifact, intermediaries must not cache it
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, entry.MIMEType, entry.Payload)
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "papersketch-server",
		"version": version.Version,
		"cached":  s.cache.Len(),
	})
}
