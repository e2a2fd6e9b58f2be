package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"papersketch/internal/client"
	"papersketch/internal/logging"
)

// summarizeResult is the structured tool payload. Exactly one of the
// image/pdf field pairs is populated, depending on the configured export
// format; both stay empty when rendering failed and the result degraded to
// text only.
type summarizeResult struct {
	Summary       string `json:"summary"`
	Version       string `json:"version,omitempty"`
	ModelInfo     string `json:"modelInfo,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
	ImageFilename string `json:"imageFilename,omitempty"`
	PDFURL        string `json:"pdfUrl,omitempty"`
	PDFFilename   string `json:"pdfFilename,omitempty"`
}

func (s *Server) handleSummarizePaper(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Each invocation doubles as the cache's cleanup pass.
	s.cache.Sweep()

	pdfURL, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Missing 'url' parameter: %v", err)), nil
	}

	lang := request.GetString("lang", "en")
	if lang != "en" && lang != "ch" {
		lang = "en"
	}

	data, err := s.summarizer.Summarize(ctx, pdfURL, lang)
	if err != nil {
		if errors.Is(err, client.ErrTimeout) {
			return mcp.NewToolResultError(fmt.Sprintf("Summarization timed out: %v", err)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Summarization failed: %v", err)), nil
	}

	result := summarizeResult{
		Summary:   client.SummaryText(data),
		Version:   client.StringField(data, "version"),
		ModelInfo: client.StringField(data, "modelInfo"),
	}

	if result.Summary != "" {
		artifact, renderErr := s.renderer.Render(ctx, result.Summary)
		if renderErr != nil {
			// Rendering is a best-effort enhancement: the text summary still
			// goes back, just without a download link.
			logging.Error("artifact render failed for %s: %v", pdfURL, renderErr)
		} else {
			token := s.cache.Put(artifact.Data, artifact.Filename, artifact.MIMEType)
			url := s.downloadURL(token)
			if artifact.MIMEType == "application/pdf" {
				result.PDFURL = url
				result.PDFFilename = artifact.Filename
			} else {
				result.ImageURL = url
				result.ImageFilename = artifact.Filename
			}
			logging.Debug("cached artifact %s (%d bytes) as %s", artifact.Filename, len(artifact.Data), token)
		}
	}

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}

// downloadURL composes the link the agent hands to the end user. Without a
// configured public base the link stays relative, which will not resolve
// from a third-party iframe context; that limitation is accepted for local
// setups where only PUBLIC_BASE_URL is missing.
func (s *Server) downloadURL(token string) string {
	path := "/papersketch/file/" + token
	base := strings.TrimRight(s.cfg.PublicBaseURL, "/")
	if base == "" {
		return path
	}
	return base + path
}
