package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"voyage/internal/api/controllers"
	"voyage/internal/config"
	"voyage/internal/render"
	"voyage/internal/services"
	mem "voyage/pkg/memcache"
	"voyage/pkg/middleware"
	"voyage/pkg/ratelimit"
)

func newTestRouter(t *testing.T, env map[string]string, limiter *ratelimit.KeyedLimiter) *gin.Engine {
	t.Helper()
	env["GIN_MODE"] = gin.TestMode
	cfg := config.FromEnv(func(key string) string { return env[key] })

	renderer := render.MustNewRenderer()
	mock := services.NewMockPlanner(0).WithSeed(func() uint64 { return 1 })
	requests := services.BuildRequestController(cfg, mock, renderer)
	trips := controllers.NewTripController(requests, mock, renderer, mem.NewInFlight(), cfg)
	return NewRouter(cfg, trips, limiter)
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouterServesUnderBasePath(t *testing.T) {
	r := newTestRouter(t, map[string]string{"PUBLIC_HOST": "someone.github.io"}, ratelimit.New(100, 100))

	w := do(r, http.MethodGet, "/VoyageAI-Explorer/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/VoyageAI-Explorer/static/style.css"`)

	w = do(r, http.MethodGet, "/VoyageAI-Explorer/static/style.css", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".day-card")

	w = do(r, http.MethodGet, "/VoyageAI-Explorer/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterSetsTraceID(t *testing.T) {
	r := newTestRouter(t, map[string]string{}, ratelimit.New(100, 100))

	w := do(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Header().Get(middleware.TraceHeader))
	assert.NoError(t, err)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterPreflight(t *testing.T) {
	r := newTestRouter(t, map[string]string{}, ratelimit.New(100, 100))

	w := do(r, http.MethodOptions, "/plan-trip", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouterRateLimitsPlanning(t *testing.T) {
	r := newTestRouter(t, map[string]string{}, ratelimit.New(0.001, 1))

	body := `{"user_input":"beach","days":2}`
	first := do(r, http.MethodPost, "/plan-trip", body)
	assert.Equal(t, http.StatusOK, first.Code)

	second := do(r, http.MethodPost, "/plan-trip", body)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// reads are not limited
	health := do(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, health.Code)
}
