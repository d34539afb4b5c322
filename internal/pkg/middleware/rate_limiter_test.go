package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int, period time.Duration, message string) (*miniredis.Miniredis, echo.MiddlewareFunc) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, IPRateLimiter("otp", limit, period, message, client)
}

func doRequest(e *echo.Echo, mw echo.MiddlewareFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/send-otp", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	handler(c)
	return rec
}

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	_, mw := newTestLimiter(t, 3, time.Minute, "Too many OTP requests, please try again later")
	e := echo.New()

	for i := 0; i < 3; i++ {
		rec := doRequest(e, mw, "10.0.0.1")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	_, mw := newTestLimiter(t, 2, time.Minute, "Too many OTP requests, please try again later")
	e := echo.New()

	doRequest(e, mw, "10.0.0.1")
	doRequest(e, mw, "10.0.0.1")
	rec := doRequest(e, mw, "10.0.0.1")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["ok"])
	assert.Equal(t, "Too many OTP requests, please try again later", response["error"])
}

func TestRateLimiter_CountersArePerIP(t *testing.T) {
	_, mw := newTestLimiter(t, 1, time.Minute, "")
	e := echo.New()

	assert.Equal(t, http.StatusOK, doRequest(e, mw, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(e, mw, "10.0.0.1").Code)

	// A different client starts with a fresh window.
	assert.Equal(t, http.StatusOK, doRequest(e, mw, "10.0.0.2").Code)
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	mr, mw := newTestLimiter(t, 1, time.Minute, "")
	e := echo.New()

	assert.Equal(t, http.StatusOK, doRequest(e, mw, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(e, mw, "10.0.0.1").Code)

	mr.FastForward(time.Minute + time.Second)

	assert.Equal(t, http.StatusOK, doRequest(e, mw, "10.0.0.1").Code)
}
