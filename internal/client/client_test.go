package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeSendsQueryAndAPIKey(t *testing.T) {
	var gotURL, gotLang, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.Query().Get("url")
		gotLang = r.URL.Query().Get("lang")
		gotKey = r.Header.Get("X-API-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"paperSketch": "# Title", "version": "v2", "modelInfo": "sketch-large"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-key", 5*time.Second)
	resp, err := c.Summarize(context.Background(), "https://arxiv.org/pdf/1234.5678", "en")
	require.NoError(t, err)

	assert.Equal(t, "https://arxiv.org/pdf/1234.5678", gotURL)
	assert.Equal(t, "en", gotLang)
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "# Title", resp["paperSketch"])
	assert.Equal(t, "v2", resp["version"])
}

func TestSummarizeNon2xxIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "k", 5*time.Second)
	_, err := c.Summarize(context.Background(), "https://example.com/a.pdf", "en")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestSummarizeTimeoutIsErrTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, "k", 20*time.Millisecond)
	_, err := c.Summarize(context.Background(), "https://example.com/a.pdf", "en")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout), "expected ErrTimeout, got: %v", err)
}

func TestSummarizeBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", 5*time.Second)
	_, err := c.Summarize(context.Background(), "https://example.com/a.pdf", "en")
	assert.Error(t, err)
}

func TestSummaryTextKeyFallback(t *testing.T) {
	tests := []struct {
		name string
		resp map[string]any
		want string
	}{
		{"canonical key", map[string]any{"paperSketch": "md"}, "md"},
		{"lowercase alias", map[string]any{"papersketch": "md2"}, "md2"},
		{"summary alias", map[string]any{"summary": "md3"}, "md3"},
		{"priority order", map[string]any{"summary": "low", "paperSketch": "high"}, "high"},
		{"non-string ignored", map[string]any{"paperSketch": 42, "summary": "md4"}, "md4"},
		{"empty string skipped", map[string]any{"paperSketch": "", "markdown": "md5"}, "md5"},
		{"nothing present", map[string]any{"other": "x"}, ""},
		{"nil map", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummaryText(tt.resp))
		})
	}
}

func TestStringField(t *testing.T) {
	resp := map[string]any{"version": "v1", "modelInfo": 7}
	assert.Equal(t, "v1", StringField(resp, "version"))
	assert.Equal(t, "", StringField(resp, "modelInfo"))
	assert.Equal(t, "", StringField(resp, "missing"))
}
