package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("PAPERSKETCH_API_KEY", "")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "PAPERSKETCH_API_KEY")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PAPERSKETCH_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, DefaultEndpoint, cfg.APIEndpoint)
	assert.Equal(t, 180*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "", cfg.PublicBaseURL)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 3000, cfg.MCPPort)
	assert.Equal(t, 8080, cfg.APIPort)
	assert.Equal(t, FormatPNG, cfg.ExportFormat)
	assert.Equal(t, 1200, cfg.RenderWidthPx)
	assert.Equal(t, 2.0, cfg.RenderScale)
	assert.False(t, cfg.Debug)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PAPERSKETCH_API_KEY", "k")
	t.Setenv("PAPERSKETCH_ENDPOINT", "http://localhost:9999/summarize")
	t.Setenv("REQUEST_TIMEOUT", "30")
	t.Setenv("PUBLIC_BASE_URL", "https://sketch.example.com")
	t.Setenv("CACHE_TTL", "5")
	t.Setenv("EXPORT_FORMAT", "pdf")
	t.Setenv("RENDER_WIDTH", "900")
	t.Setenv("RENDER_SCALE", "1.5")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/summarize", cfg.APIEndpoint)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "https://sketch.example.com", cfg.PublicBaseURL)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, FormatPDF, cfg.ExportFormat)
	assert.Equal(t, 900, cfg.RenderWidthPx)
	assert.Equal(t, 1.5, cfg.RenderScale)
	assert.True(t, cfg.Debug)
}

func TestLoadRejectsUnknownExportFormat(t *testing.T) {
	t.Setenv("PAPERSKETCH_API_KEY", "k")
	t.Setenv("EXPORT_FORMAT", "svg")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EXPORT_FORMAT")
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("PAPERSKETCH_API_KEY", "k")
	t.Setenv("REQUEST_TIMEOUT", "not-a-number")
	t.Setenv("RENDER_SCALE", "wide")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 180*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2.0, cfg.RenderScale)
}
