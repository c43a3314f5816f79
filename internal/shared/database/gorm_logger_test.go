package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"cinepulse/pkg/logger"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}
}

func statement() (string, int64) {
	return "SELECT * FROM movies", 1
}

func TestGormLoggerTrace(t *testing.T) {
	ctx := context.Background()

	t.Run("record not found is not logged", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewGormLogger(newBufferLogger(&buf), time.Second, false)

		l.Trace(ctx, time.Now(), statement, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("query errors are logged", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewGormLogger(newBufferLogger(&buf), time.Second, false)

		l.Trace(ctx, time.Now(), statement, errors.New("connection reset"))
		assert.Contains(t, buf.String(), "Database Query Error")
		assert.Contains(t, buf.String(), "connection reset")
	})

	t.Run("slow queries are logged", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewGormLogger(newBufferLogger(&buf), time.Millisecond, false)

		l.Trace(ctx, time.Now().Add(-time.Second), statement, nil)
		assert.Contains(t, buf.String(), "Slow Database Query")
	})

	t.Run("fast queries only in verbose mode", func(t *testing.T) {
		var buf bytes.Buffer
		quiet := NewGormLogger(newBufferLogger(&buf), time.Hour, false)
		quiet.Trace(ctx, time.Now(), statement, nil)
		assert.Empty(t, buf.String())

		verbose := NewGormLogger(newBufferLogger(&buf), time.Hour, true)
		verbose.Trace(ctx, time.Now(), statement, nil)
		assert.Contains(t, buf.String(), "SELECT * FROM movies")
	})

	t.Run("silent mode", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewGormLogger(newBufferLogger(&buf), time.Millisecond, true).LogMode(gormlogger.Silent)

		l.Trace(ctx, time.Now().Add(-time.Second), statement, errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}
