package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinepulse/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRateLimitType(t *testing.T) {
	tests := []struct {
		method, path string
		want         RateLimitType
	}{
		{http.MethodGet, "/health", RateLimitTypeHealth},
		{http.MethodGet, "/ping", RateLimitTypeHealth},
		{http.MethodPost, "/api/auth/login", RateLimitTypeAuth},
		{http.MethodGet, "/api/movies", RateLimitTypePublic},
		{http.MethodGet, "/api/cinemahalls/search", RateLimitTypePublic},
		{http.MethodPost, "/api/movies/getMovie/:movieId", RateLimitTypePublic},
		{http.MethodPost, "/api/movies/add", RateLimitTypeAdmin},
		{http.MethodDelete, "/api/cinemahalls/:id", RateLimitTypeAdmin},
		{http.MethodPut, "/api/cinemahalls/:id/movies/:movieId", RateLimitTypeAdmin},
		{http.MethodGet, "/swagger/*any", RateLimitTypeDefault},
		{http.MethodGet, "", RateLimitTypeDefault},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getRateLimitType(tt.method, tt.path), "%s %s", tt.method, tt.path)
	}
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(headers map[string]string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.RemoteAddr = "10.0.0.9:51234"
		for k, v := range headers {
			c.Request.Header.Set(k, v)
		}
		return c
	}

	assert.Equal(t, "203.0.113.7", getClientIP(newContext(map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"})))
	assert.Equal(t, "198.51.100.2", getClientIP(newContext(map[string]string{"X-Forwarded-For": "bogus", "X-Real-IP": "198.51.100.2"})))
	assert.Equal(t, "10.0.0.9", getClientIP(newContext(nil)))
}

func TestDisabledOrWhitelistedSkipsRedis(t *testing.T) {
	cfg := config.RateLimitConfig{
		Enabled:        false,
		WindowDuration: time.Minute,
		PublicRequests: 120,
	}
	// a nil client proves Redis is never touched
	limiter := NewRateLimiter(nil, cfg)

	result, err := limiter.IsAllowed(context.Background(), "1.2.3.4", RateLimitTypePublic)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 120, result.Limit)

	cfg.Enabled = true
	cfg.WhitelistedIPs = []string{"1.2.3.4"}
	limiter = NewRateLimiter(nil, cfg)

	result, err = limiter.IsAllowed(context.Background(), "1.2.3.4", RateLimitTypePublic)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestMiddlewareSetsHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewRateLimiter(nil, config.RateLimitConfig{Enabled: false, WindowDuration: time.Minute, HealthRequests: 300})

	r := gin.New()
	r.Use(Middleware(limiter))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "300", w.Header().Get("X-RateLimit-Limit"))
}
