//go:build !ui

package ui

import "fmt"

// Bundle returns an error when the widget is not embedded
func Bundle() (string, error) {
	return "", fmt.Errorf("widget bundle not embedded in this build; build with -tags ui or set WIDGET_BUNDLE_PATH")
}

// IsEmbedded returns false when the widget bundle is not embedded
func IsEmbedded() bool {
	return false
}
