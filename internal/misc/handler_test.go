package misc_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-redis/redis_rate/v9"
	"github.com/go-redis/redismock/v8"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mdjurovic/liftcoach/internal/auth"
	"github.com/mdjurovic/liftcoach/internal/misc"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

// bcrypt hash of "password"
const testPasswordHash = "$2a$10$oHYYaXD2Cd8fHowzUY/eXeCKnI6nZMCmJ573d7TVOTQHqFekbOEB2"

type testRequestRateLimiter struct {
	// key to remaining allowed requests
	Limits map[string]int
}

func (l *testRequestRateLimiter) Allow(_ context.Context, key string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	res := &redis_rate.Result{}
	foundLimit, ok := l.Limits[key]
	if !ok || foundLimit == 0 {
		return res, nil
	}
	res.Allowed = foundLimit
	l.Limits[key]--
	return res, nil
}

func newTestHandler(t *testing.T) (*misc.Handler, redismock.ClientMock) {
	t.Helper()
	rdb, redisMock := redismock.NewClientMock()
	authService := auth.NewService(&auth.Admin{
		Username:     "serj",
		PasswordHash: testPasswordHash,
	}, auth.DefaultTTL, rdb)
	authService.RandStringFunc = func(_ int) (string, error) {
		return "test-token", nil
	}
	return misc.NewHandler("v1.2.3", authService), redisMock
}

func newRouter(handler *misc.Handler) *mux.Router {
	return newRouterWithLimiter(handler, &testRequestRateLimiter{
		Limits: map[string]int{"login": 100},
	})
}

func newRouterWithLimiter(handler *misc.Handler, limiter *testRequestRateLimiter) *mux.Router {
	r := mux.NewRouter()
	handler.SetupRoutes(r, limiter, 5)
	return r
}

func loginRequest(t *testing.T, username, password string) *http.Request {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	require.NoError(t, err)
	req, err := http.NewRequest("POST", "/a/login", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	return req
}

func TestHandler_Login(t *testing.T) {
	handler, redisMock := newTestHandler(t)
	router := newRouter(handler)

	redisMock.Regexp().
		ExpectSet("liftcoach-session||test-token", `\d+`, 0).
		SetVal("OK")
	redisMock.ExpectSAdd("liftcoach-sessions", "test-token").SetVal(1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, loginRequest(t, "serj", "password"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token": "test-token"}`, rec.Body.String())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Login_WrongCredentials(t *testing.T) {
	handler, _ := newTestHandler(t)
	router := newRouter(handler)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, loginRequest(t, "serj", "not-the-password"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, loginRequest(t, "impostor", "password"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Logout_NoToken(t *testing.T) {
	handler, _ := newTestHandler(t)
	router := newRouter(handler)

	req, err := http.NewRequest("GET", "/a/logout", nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Login_RateLimited(t *testing.T) {
	handler, redisMock := newTestHandler(t)
	router := newRouterWithLimiter(handler, &testRequestRateLimiter{
		Limits: map[string]int{"login": 1},
	})

	redisMock.Regexp().
		ExpectSet("liftcoach-session||test-token", `\d+`, 0).
		SetVal("OK")
	redisMock.ExpectSAdd("liftcoach-sessions", "test-token").SetVal(1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, loginRequest(t, "serj", "password"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, loginRequest(t, "serj", "password"))
	assert.Equal(t, http.StatusTooEarly, rec.Code)
}

func TestHandler_Version(t *testing.T) {
	handler, _ := newTestHandler(t)
	router := newRouter(handler)

	req, err := http.NewRequest("GET", "/version", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1.2.3", rec.Body.String())
}
