//go:build ui

package ui

import (
	_ "embed"
)

// Embed the prebuilt widget HTML when building with -tags ui.
// Regenerate with scripts/build_widget_html.sh after a widget build.
//
//go:embed static/papersketch-inline.html
var widgetHTML string

// Bundle returns the embedded single-file widget HTML
func Bundle() (string, error) {
	return widgetHTML, nil
}

// IsEmbedded returns true when the widget bundle is embedded (build tag enabled)
func IsEmbedded() bool {
	return true
}
