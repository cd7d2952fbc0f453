package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"cyberedu_admin/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		Server:   config.ServerConfig{Port: "0", Mode: "release"},
		Upstream: config.UpstreamConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second},
		Media: config.MediaConfig{
			FFmpegPath:  "ffmpeg",
			MaxUploadMB: 100,
			MaxCertMB:   10,
			SpoolDir:    dir,
			JPEGQuality: 80,
		},
		Cache:   config.CacheConfig{Type: "memory"},
		Storage: config.StorageConfig{Type: "local", LocalPath: dir},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		Log:     config.LogConfig{File: filepath.Join(dir, "app.log"), MaxSizeMB: 1},
	}
}

func TestNewApp_ProtectedRoutesRequireToken(t *testing.T) {
	application, err := NewApp(testConfig(t), "")
	require.NoError(t, err)
	assert.Nil(t, application.Redis)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/courses"},
		{http.MethodGet, "/api/dashboard"},
		{http.MethodDelete, "/api/videos/3"},
		{http.MethodGet, "/api/users/7/results/export"},
	} {
		w := httptest.NewRecorder()
		application.Router.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}
}

func TestNewApp_PublicRoutes(t *testing.T) {
	application, err := NewApp(testConfig(t), "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/media/probe")

	w = httptest.NewRecorder()
	application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewApp_RedisUnavailableFallsBackToMemory(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Type = "redis"
	cfg.Redis = config.RedisConfig{Host: "127.0.0.1", Port: 1}

	application, err := NewApp(cfg, "")
	require.NoError(t, err)
	assert.Nil(t, application.Redis)
}
