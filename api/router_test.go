package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourusername/mediaform/internal/app"
	"github.com/yourusername/mediaform/internal/domain"
	"github.com/yourusername/mediaform/internal/infrastructure"
)

type stubPrefs struct{ values map[string]string }

func (s *stubPrefs) Get(key string) (string, error) { return s.values[key], nil }
func (s *stubPrefs) Set(key, value string) error {
	s.values[key] = value
	return nil
}
func (s *stubPrefs) Close() error { return nil }

func setupTestRouter(t *testing.T, upstream http.HandlerFunc) (http.Handler, func()) {
	t.Helper()

	server := httptest.NewServer(upstream)

	log := zap.NewNop()
	client := infrastructure.NewAPIClient(&domain.APIConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, log)
	themes := app.NewThemeManager(&stubPrefs{values: make(map[string]string)}, log)

	return SetupRouter(client, themes, log), server.Close
}

func TestRouter_ServesFormPageAtRoot(t *testing.T) {
	router, closeUpstream := setupTestRouter(t, func(w http.ResponseWriter, r *http.Request) {})
	defer closeUpstream()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "MediaForm")
}

func TestRouter_UnknownPathFallsBackToFormPage(t *testing.T) {
	router, closeUpstream := setupTestRouter(t, func(w http.ResponseWriter, r *http.Request) {})
	defer closeUpstream()

	req := httptest.NewRequest(http.MethodGet, "/some/client/route", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestRouter_UnknownAPIPathIs404(t *testing.T) {
	router, closeUpstream := setupTestRouter(t, func(w http.ResponseWriter, r *http.Request) {})
	defer closeUpstream()

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not found", body["detail"])
}

func TestRouter_Health(t *testing.T) {
	router, closeUpstream := setupTestRouter(t, func(w http.ResponseWriter, r *http.Request) {})
	defer closeUpstream()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_ReadyReflectsUpstream(t *testing.T) {
	router, closeUpstream := setupTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	closeUpstream()

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
