// Package ui serves the prebuilt PaperSketch widget bundle: a single HTML
// document the embedding host loads in an iframe. The bundle is a frontend
// build artifact loaded verbatim, either embedded at compile time or read
// from disk during development.
package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// LoadBundle reads a prebuilt widget HTML file from fsys. Used when a
// WIDGET_BUNDLE_PATH override points at a fresh frontend build.
func LoadBundle(fsys afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("reading widget bundle %s: %w", path, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("widget bundle %s is empty", path)
	}
	return string(data), nil
}

// WidgetCSP is the content-security policy injected into the widget
// document. The widget fetches figures and summary assets from the
// summarization API's origin, so that origin (and arxiv, where the papers
// live) must be allowlisted.
const WidgetCSP = "default-src 'self' 'unsafe-inline'; " +
	"img-src 'self' data: https://scholar.club https://arxiv.org; " +
	"connect-src https://scholar.club https://arxiv.org"

// InjectCSP inserts a Content-Security-Policy meta tag right after <head>.
// If the document has no head element the tag is prepended instead.
func InjectCSP(html, policy string) string {
	meta := fmt.Sprintf(`<meta http-equiv="Content-Security-Policy" content="%s" />`, policy)

	idx := strings.Index(strings.ToLower(html), "<head>")
	if idx < 0 {
		return meta + "\n" + html
	}
	insertAt := idx + len("<head>")
	return html[:insertAt] + "\n    " + meta + html[insertAt:]
}
