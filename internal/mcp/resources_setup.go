package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// WidgetURI identifies the inline-card widget resource the embedding host
// loads in an iframe to display tool output.
const WidgetURI = "ui://papersketch/inline-card"

// widgetMIMEType marks the resource as an embeddable widget document.
const widgetMIMEType = "text/html+skybridge"

// setupResources registers read-only resources
func (s *Server) setupResources() {
	widgetResource := mcp.NewResource(
		WidgetURI,
		"PaperSketch Inline Card",
		mcp.WithResourceDescription("Prebuilt PaperSketch widget bundle, rendered by the host in an iframe with the tool output injected"),
		mcp.WithMIMEType(widgetMIMEType),
	)
	s.mcpServer.AddResource(widgetResource, s.handleWidgetResource)
}
