package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute, testLogger())
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("192.0.2.1"))
	}
	assert.False(t, rl.Allow("192.0.2.1"))
}

func TestRateLimiter_SeparateKeys(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, testLogger())
	defer rl.Stop()

	assert.True(t, rl.Allow("192.0.2.1"))
	assert.False(t, rl.Allow("192.0.2.1"))

	// Другой IP имеет собственный bucket
	assert.True(t, rl.Allow("192.0.2.2"))
}

func TestRateLimiter_RefillsAfterWindow(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond, testLogger())
	defer rl.Stop()

	assert.True(t, rl.Allow("192.0.2.1"))
	assert.False(t, rl.Allow("192.0.2.1"))

	time.Sleep(30 * time.Millisecond)

	assert.True(t, rl.Allow("192.0.2.1"))
}

func TestRateLimitMiddleware_Returns429(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := RateLimitMiddleware(1, time.Minute, testLogger())(next)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.RemoteAddr = "192.0.2.1:12345"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{name: "remote addr only", remoteAddr: "192.0.2.1:12345", want: "192.0.2.1:12345"},
		{name: "x-forwarded-for", remoteAddr: "10.0.0.1:1", xff: "203.0.113.5", want: "203.0.113.5"},
		{name: "x-forwarded-for chain", remoteAddr: "10.0.0.1:1", xff: "203.0.113.5, 10.0.0.2", want: "203.0.113.5"},
		{name: "x-real-ip", remoteAddr: "10.0.0.1:1", xri: "203.0.113.7", want: "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}

			assert.Equal(t, tt.want, getClientIP(req))
		})
	}
}
