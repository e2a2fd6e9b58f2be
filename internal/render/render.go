// Package render turns a Markdown paper summary into a downloadable visual
// artifact: a single tall PNG or an A2 poster PDF. Rasterization runs in a
// short-lived headless Chromium launched per call, so concurrent renders
// never share engine state.
package render

import "context"

// Fixed download filenames per artifact kind.
const (
	ImageFilename = "papersketch.png"
	PDFFilename   = "papersketch.pdf"
)

// Artifact is the rendered binary output plus the metadata the download
// endpoint needs to serve it.
type Artifact struct {
	Data     []byte
	Filename string
	MIMEType string
}

// Options are the fixed layout parameters for image rendering.
type Options struct {
	WidthPx int
	Scale   float64
}

// Renderer converts Markdown text into an artifact. A render failure is a
// value for the caller to handle; the tool degrades to a text-only result
// rather than failing the invocation.
type Renderer interface {
	Render(ctx context.Context, markdown string) (*Artifact, error)
}
