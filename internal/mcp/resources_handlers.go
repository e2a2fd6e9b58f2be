package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/afero"

	"papersketch/internal/ui"
)

func (s *Server) handleWidgetResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	html, err := s.widgetBundle()
	if err != nil {
		return nil, fmt.Errorf("loading widget bundle: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: widgetMIMEType,
			Text:     ui.InjectCSP(html, ui.WidgetCSP),
		},
	}, nil
}

// widgetBundle prefers a fresh on-disk build over the compiled-in one, so a
// widget rebuild does not require recompiling the server.
func (s *Server) widgetBundle() (string, error) {
	if s.cfg.WidgetBundlePath != "" {
		return ui.LoadBundle(afero.NewOsFs(), s.cfg.WidgetBundlePath)
	}
	return ui.Bundle()
}
