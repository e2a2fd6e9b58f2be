package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"papersketch/internal/cache"
	"papersketch/internal/config"
)

func newTestServer(t *testing.T) (*Server, *cache.Cache) {
	t.Helper()
	artifactCache := cache.New(15 * time.Minute)
	cfg := &config.Config{APIPort: 0}
	return New(cfg, artifactCache), artifactCache
}

func TestDownloadHit(t *testing.T) {
	srv, artifactCache := newTestServer(t)
	router := srv.Router()

	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}
	token := artifactCache.Put(payload, "papersketch.png", "image/png")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/papersketch/file/"+token, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, payload, w.Body.Bytes())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="papersketch.png"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestDownloadMissIs404PlainText(t *testing.T) {
	srv, _ := newTestServer(t)
	router := srv.Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/papersketch/file/0123456789abcdef0123456789abcdef", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "not found or expired")
}

func TestDownloadGarbageTokenIsAMiss(t *testing.T) {
	srv, _ := newTestServer(t)
	router := srv.Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/papersketch/file/%2e%2e", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLegacyAliasServesIdenticalResponse(t *testing.T) {
	srv, artifactCache := newTestServer(t)
	router := srv.Router()

	token := artifactCache.Put([]byte("%PDF-1.7 poster"), "papersketch.pdf", "application/pdf")

	canonical := httptest.NewRecorder()
	router.ServeHTTP(canonical, httptest.NewRequest(http.MethodGet, "/papersketch/file/"+token, nil))

	legacy := httptest.NewRecorder()
	router.ServeHTTP(legacy, httptest.NewRequest(http.MethodGet, "/papersketch/pdf/"+token, nil))

	assert.Equal(t, canonical.Code, legacy.Code)
	assert.Equal(t, canonical.Body.Bytes(), legacy.Body.Bytes())
	assert.Equal(t, canonical.Header().Get("Content-Type"), legacy.Header().Get("Content-Type"))
	assert.Equal(t, canonical.Header().Get("Content-Disposition"), legacy.Header().Get("Content-Disposition"))
	assert.Equal(t, canonical.Header().Get("Cache-Control"), legacy.Header().Get("Cache-Control"))
}

func TestHealthCheck(t *testing.T) {
	srv, artifactCache := newTestServer(t)
	router := srv.Router()
	artifactCache.Put([]byte("x"), "a.png", "image/png")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"cached":1`)
}
