package challengeapp_test

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubegrade/kubegrade/internal/challengeapp"
)

func newTestServer(cfg challengeapp.Config) *httptest.Server {
	logger := log.New(io.Discard, "", 0)
	return httptest.NewServer(challengeapp.NewServer(cfg, logger).Router())
}

func getJSON(t *testing.T, url string) map[string]any {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealth(t *testing.T) {
	srv := newTestServer(challengeapp.Config{AppName: "challenge"})
	defer srv.Close()

	body := getJSON(t, srv.URL+"/health")

	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "challenge", body["app"])
}

func TestHome_ListsEndpoints(t *testing.T) {
	srv := newTestServer(challengeapp.Config{AppName: "challenge", Env: "production"})
	defer srv.Close()

	body := getJSON(t, srv.URL+"/")

	assert.Equal(t, "challenge", body["app"])
	assert.Equal(t, "production", body["environment"])
	endpoints, ok := body["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, endpoints, "/health")
	assert.Contains(t, endpoints, "/secret-check")
}

func TestConfig_ReflectsConfigMapValues(t *testing.T) {
	srv := newTestServer(challengeapp.Config{AppName: "challenge", Env: "production", LogLevel: "debug"})
	defer srv.Close()

	body := getJSON(t, srv.URL+"/config")

	assert.Equal(t, "challenge", body["app_name"])
	assert.Equal(t, "debug", body["log_level"])
	assert.Equal(t, "ConfigMap (environment variables)", body["source"])
}

func TestSecretCheck_DoesNotExposeTheKey(t *testing.T) {
	srv := newTestServer(challengeapp.Config{APIKey: "s3cret"})
	defer srv.Close()

	body := getJSON(t, srv.URL+"/secret-check")

	assert.Equal(t, true, body["api_key_loaded"])
	assert.Equal(t, float64(6), body["api_key_length"])
	for _, v := range body {
		assert.NotEqual(t, "s3cret", v)
	}
}

func TestSecretCheck_NotLoaded(t *testing.T) {
	srv := newTestServer(challengeapp.Config{APIKey: "not-set"})
	defer srv.Close()

	body := getJSON(t, srv.URL+"/secret-check")

	assert.Equal(t, false, body["api_key_loaded"])
	assert.Equal(t, float64(0), body["api_key_length"])
}

func TestReady_ReportsChecks(t *testing.T) {
	srv := newTestServer(challengeapp.Config{AppName: "challenge", APIKey: "s3cret"})
	defer srv.Close()

	body := getJSON(t, srv.URL+"/ready")

	assert.Equal(t, true, body["ready"])
	checks, ok := body["checks"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, checks["config_loaded"])
	assert.Equal(t, true, checks["secret_loaded"])
}
