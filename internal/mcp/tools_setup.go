package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// setupTools registers the papersketch tool surface
func (s *Server) setupTools() {
	summarizeTool := mcp.NewTool("summarize_paper",
		mcp.WithDescription("Summarize an academic PDF from a public URL using the PaperSketch API and return a rendered visual summary"),
		mcp.WithString("url", mcp.Required(), mcp.Description("Public URL to a PDF (e.g. an arXiv link)")),
		mcp.WithString("lang", mcp.Description("Summary language: en (English) or ch (Chinese)"),
			mcp.Enum("en", "ch"), mcp.DefaultString("en")),
	)
	s.mcpServer.AddTool(summarizeTool, s.handleSummarizePaper)
}
