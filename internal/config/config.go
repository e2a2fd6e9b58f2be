package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultEndpoint is the production PaperSketch summarization API.
const DefaultEndpoint = "https://api.scholar.club/api/v1/papersketch_url/"

// Export formats for the rendered artifact.
const (
	FormatPNG = "png"
	FormatPDF = "pdf"
)

type Config struct {
	APIKey           string
	APIEndpoint      string
	RequestTimeout   time.Duration
	PublicBaseURL    string
	CacheTTL         time.Duration
	MCPPort          int
	APIPort          int
	ExportFormat     string
	RenderWidthPx    int
	RenderScale      float64
	WidgetBundlePath string
	Debug            bool
}

func Load() (*Config, error) {
	cfg := &Config{
		APIKey:           os.Getenv("PAPERSKETCH_API_KEY"),
		APIEndpoint:      getEnvOrDefault("PAPERSKETCH_ENDPOINT", DefaultEndpoint),
		RequestTimeout:   time.Duration(getEnvIntOrDefault("REQUEST_TIMEOUT", 180)) * time.Second,
		PublicBaseURL:    getEnvOrDefault("PUBLIC_BASE_URL", ""),
		CacheTTL:         time.Duration(getEnvIntOrDefault("CACHE_TTL", 15)) * time.Minute,
		MCPPort:          getEnvIntOrDefault("MCP_PORT", 3000),
		APIPort:          getEnvIntOrDefault("API_PORT", 8080),
		ExportFormat:     getEnvOrDefault("EXPORT_FORMAT", FormatPNG),
		RenderWidthPx:    getEnvIntOrDefault("RENDER_WIDTH", 1200),
		RenderScale:      getEnvFloatOrDefault("RENDER_SCALE", 2.0),
		WidgetBundlePath: getEnvOrDefault("WIDGET_BUNDLE_PATH", ""),
		Debug:            getEnvBoolOrDefault("DEBUG", false),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("PAPERSKETCH_API_KEY environment variable is required")
	}

	if cfg.ExportFormat != FormatPNG && cfg.ExportFormat != FormatPDF {
		return nil, fmt.Errorf("EXPORT_FORMAT must be %q or %q, got %q", FormatPNG, FormatPDF, cfg.ExportFormat)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
