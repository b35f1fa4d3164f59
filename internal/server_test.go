package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdjurovic/liftcoach/internal/auth"
	"github.com/mdjurovic/liftcoach/internal/coach/records"
	"github.com/mdjurovic/liftcoach/internal/config"
	"github.com/mdjurovic/liftcoach/internal/telemetry/metrics"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	rdb, _ := redismock.NewClientMock()
	return &Server{
		config: &config.Config{
			LoginRateLimitAllowedPerMin: 5,
		},
		versionInfo:     "test-version",
		deviceAppSecret: "device-secret",
		ledger:          records.NewLedger(),
		redisClient:     rdb,
		authService: auth.NewService(&auth.Admin{
			Username:     "serj",
			PasswordHash: "n/a",
		}, auth.DefaultTTL, rdb),
		loginChecker:   auth.NewLoginChecker(auth.DefaultTTL, rdb),
		metricsManager: metrics.NewTestManager(),
	}
}

func TestRouterSetup_RoutesRegistered(t *testing.T) {
	server := newTestServer(t)
	router, err := server.routerSetup()
	require.NoError(t, err)

	for _, routeName := range []string{
		"root", "version", "login", "logout",
		"new-set", "new-workout",
		"new-readiness", "latest-readiness",
		"weekly-report", "quick-status",
		"records", "rebuild-records", "exercise-records",
		"exercise-history",
	} {
		assert.NotNil(t, router.GetRoute(routeName), routeName)
	}
}

func TestRouterSetup_OpenAndProtectedPaths(t *testing.T) {
	server := newTestServer(t)
	router, err := server.routerSetup()
	require.NoError(t, err)

	// version is an open path
	rec := httptest.NewRecorder()
	versionReq := httptest.NewRequest("GET", "/version", nil)
	versionReq.Header.Set("User-Agent", "test-agent")
	router.ServeHTTP(rec, versionReq)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())

	// coach endpoints require a token
	rec = httptest.NewRecorder()
	recordsReq := httptest.NewRequest("GET", "/coach/records", nil)
	recordsReq.Header.Set("User-Agent", "test-agent")
	router.ServeHTTP(rec, recordsReq)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// the device app secret is good enough for non-admin paths
	req := httptest.NewRequest("GET", "/coach/records", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-COACH-TOKEN", "device-secret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"records": null, "total": 0}`, rec.Body.String())
}

func TestRouterSetup_UnknownPath(t *testing.T) {
	server := newTestServer(t)
	router, err := server.routerSetup()
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/nope", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-COACH-TOKEN", "device-secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
