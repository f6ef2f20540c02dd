//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourusername/mediaform/api"
	"github.com/yourusername/mediaform/internal/app"
	"github.com/yourusername/mediaform/internal/domain"
	"github.com/yourusername/mediaform/internal/infrastructure"
)

// setupStack boots the full front-end against a stub download API
func setupStack(t *testing.T, upstream http.HandlerFunc) (*httptest.Server, func()) {
	t.Helper()

	upstreamServer := httptest.NewServer(upstream)

	tmpDir, err := os.MkdirTemp("", "mediaform-test-*")
	require.NoError(t, err)
	prefs, err := infrastructure.NewSQLitePreferenceRepository(filepath.Join(tmpDir, "preferences.db"))
	require.NoError(t, err)

	log := zap.NewNop()
	client := infrastructure.NewAPIClient(&domain.APIConfig{
		BaseURL: upstreamServer.URL,
		Timeout: 10 * time.Second,
	}, log)
	themes := app.NewThemeManager(prefs, log)

	server := httptest.NewServer(api.SetupRouter(client, themes, log))

	cleanup := func() {
		server.Close()
		upstreamServer.Close()
		prefs.Close()
		os.RemoveAll(tmpDir)
	}
	return server, cleanup
}

func TestFullFlow_SubmitAndFetchFile(t *testing.T) {
	server, cleanup := setupStack(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/download":
			json.NewEncoder(w).Encode(domain.DownloadResult{
				Status:      "ok",
				Message:     "done",
				Filename:    "video.mp4",
				DownloadURL: "/files/video.mp4",
			})
		case "/files/video.mp4":
			w.Header().Set("Content-Type", "video/mp4")
			w.Write([]byte("media bytes"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	defer cleanup()

	// Submit
	payload, _ := json.Marshal(map[string]string{"url": "https://youtube.com/watch?v=abc"})
	resp, err := http.Post(server.URL+"/api/download", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.DownloadResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "video.mp4", result.Filename)

	// Fetch the produced file through the relay
	fileResp, err := http.Get(server.URL + result.DownloadURL)
	require.NoError(t, err)
	defer fileResp.Body.Close()
	assert.Equal(t, http.StatusOK, fileResp.StatusCode)
	assert.Equal(t, "video/mp4", fileResp.Header.Get("Content-Type"))
}

func TestFullFlow_ValidationNeverReachesUpstream(t *testing.T) {
	upstreamHits := 0
	server, cleanup := setupStack(t, func(w http.ResponseWriter, r *http.Request) {
		upstreamHits++
	})
	defer cleanup()

	payload, _ := json.Marshal(map[string]string{"url": "javascript:alert(1)"})
	resp, err := http.Post(server.URL+"/api/download", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["detail"], "javascript")
	assert.Equal(t, 0, upstreamHits)
}

func TestFullFlow_UpstreamDetailRelayedVerbatim(t *testing.T) {
	server, cleanup := setupStack(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"unsupported URL"}`))
	})
	defer cleanup()

	payload, _ := json.Marshal(map[string]string{"url": "https://example.com/clip"})
	resp, err := http.Post(server.URL+"/api/download", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "unsupported URL", body["detail"])
}

func TestFullFlow_ThemeRoundTrip(t *testing.T) {
	server, cleanup := setupStack(t, func(w http.ResponseWriter, r *http.Request) {})
	defer cleanup()

	// Default
	resp, err := http.Get(server.URL + "/api/theme")
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.Equal(t, "dark", body["theme"])

	// Flip
	req, _ := http.NewRequest(http.MethodPut, server.URL+"/api/theme", strings.NewReader(`{"theme":"light"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/theme")
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.Equal(t, "light", body["theme"])
}

func TestFullFlow_ServesFormPage(t *testing.T) {
	server, cleanup := setupStack(t, func(w http.ResponseWriter, r *http.Request) {})
	defer cleanup()

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
