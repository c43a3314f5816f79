package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinepulse/internal/shared/middleware"
	"cinepulse/internal/shared/utils/response"
	"cinepulse/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewJSONHandler(buf, nil))}
}

// logEntries decodes one JSON object per log line.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestRequestLoggerTagsRequestAndUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	engine := gin.New()
	engine.Use(RequestLoggerMiddleware(newBufferLogger(&buf)))
	engine.GET("/api/movies", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "user-42")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	req.Header.Set(requestIDHeader, "req-abc")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "req-abc", w.Header().Get(requestIDHeader))

	entries := logEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "HTTP Request", entries[0]["msg"])
	assert.Equal(t, "req-abc", entries[0]["request_id"])
	assert.Equal(t, "user-42", entries[0]["user_id"])
}

func TestRequestLoggerGeneratesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	engine := gin.New()
	engine.Use(RequestLoggerMiddleware(newBufferLogger(&buf)))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	requestID := w.Header().Get(requestIDHeader)
	assert.NotEmpty(t, requestID)

	entries := logEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, requestID, entries[0]["request_id"])
	assert.NotContains(t, entries[0], "user_id")
}

func TestServerErrorsKeepTheirCauseInTheLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	bufferLogger := newBufferLogger(&buf)

	previous := logger.GetDefault()
	t.Cleanup(func() { logger.SetDefault(previous) })
	logger.SetDefault(bufferLogger)

	engine := gin.New()
	engine.Use(RequestLoggerMiddleware(bufferLogger))
	engine.GET("/api/movies", func(c *gin.Context) {
		response.RespondError(c, "Failed to get movies", errors.New("failed to find movies: dial tcp 127.0.0.1:5432: connection refused"))
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")

	entries := logEntries(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "HTTP Error", entries[0]["msg"])
	assert.Contains(t, entries[0]["error"], "connection refused")
	assert.Equal(t, "HTTP Request", entries[1]["msg"])
	assert.Equal(t, float64(http.StatusInternalServerError), entries[1]["status"])
}
