package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/aradsms/unisender_services/internal/platform/config"
	"github.com/aradsms/unisender_services/internal/platform/logger"
	"github.com/aradsms/unisender_services/internal/unisender_service/app"
)

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	cfg.Transport = "mock"
	gateway, err := app.NewGatewayClientFromConfig(cfg, logger.Discard())
	require.NoError(t, err)
	return newRouter(cfg, gateway, logger.Discard())
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Unisender API service is healthy", gjson.Get(rr.Body.String(), "status").String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/unisender/lists", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Mock list", gjson.Get(rr.Body.String(), "data.0.title").String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "unisender_api_http_requests_total")
	assert.Contains(t, rr.Body.String(), "unisender_gateway_calls_total")
}

func TestRouter_JWTProtectsUnisenderRoutes(t *testing.T) {
	router := newTestRouter(t, &config.Config{APIJWTSecret: "s3cret"})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/unisender/fields", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "crm"}).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/unisender/fields", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
