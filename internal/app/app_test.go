package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"thexempt/internal/config"
	"thexempt/internal/pkg/jwt"
	"thexempt/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestApp wires the full HTTP stack without a database. Only routes that
// fail before touching storage are exercised.
func newTestApp(t *testing.T, env map[string]string) *App {
	t.Helper()
	base := map[string]string{
		"DB_HOST":    "localhost",
		"DB_NAME":    "thexempt",
		"DB_USER":    "thexempt",
		"JWT_SECRET": "test-secret",
	}
	for k, v := range env {
		base[k] = v
	}
	cfg, err := config.FromLookup(func(k string) string { return base[k] })
	require.NoError(t, err)

	logger := zap.NewNop()
	c := &Container{
		Config: cfg,
		Logger: logger,
		Hub:    ws.NewHub(logger),
		JWT:    jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn),
	}
	c.wire()
	return New(cfg, logger, c)
}

func TestApp_HealthWithoutDatabase(t *testing.T) {
	a := newTestApp(t, nil)
	res, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

func TestApp_Metrics(t *testing.T) {
	a := newTestApp(t, nil)

	_, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil))
	require.NoError(t, err)

	res, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "thexempt_http_requests_total")
}

func TestApp_ProtectedRoutesRequireToken(t *testing.T) {
	a := newTestApp(t, nil)

	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodPut, "/api/v1/users/me"},
		{http.MethodPost, "/api/v1/users/me/skills"},
		{http.MethodPost, "/api/v1/projects"},
		{http.MethodPost, "/api/v1/projects/7d3f0f4e-8e43-4b8e-9c59-4d1b9a0b1c11/apply"},
		{http.MethodGet, "/api/v1/projects/7d3f0f4e-8e43-4b8e-9c59-4d1b9a0b1c11/applications"},
		{http.MethodPost, "/api/v1/projects/7d3f0f4e-8e43-4b8e-9c59-4d1b9a0b1c11/contributions"},
		{http.MethodPut, "/api/v1/applications/7d3f0f4e-8e43-4b8e-9c59-4d1b9a0b1c11/status"},
		{http.MethodGet, "/api/v1/ws"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			res, err := a.Fiber.Test(httptest.NewRequest(tc.method, tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		})
	}
}

func TestApp_InvalidIDIsBadRequest(t *testing.T) {
	a := newTestApp(t, nil)
	res, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/projects/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestApp_AuthRateLimit(t *testing.T) {
	a := newTestApp(t, map[string]string{"RATE_LIMIT_AUTH_MAX": "2"})

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		res, err := a.Fiber.Test(req)
		require.NoError(t, err)
		return res.StatusCode
	}

	assert.Equal(t, http.StatusBadRequest, send())
	assert.Equal(t, http.StatusBadRequest, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

func TestApp_CORS(t *testing.T) {
	a := newTestApp(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	res, err := a.Fiber.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("5000")
	require.NoError(t, err)
	assert.Equal(t, ":5000", addr)

	addr, err = ListenAddr(":8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	_, err = ListenAddr(" ")
	assert.Error(t, err)
}
