package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_VERSION", "")
	t.Setenv("CORS_ALLOWED_ORIGIN", "")
	t.Setenv("KAFKA_ENABLED", "")

	cfg := Load()

	assert.Equal(t, "/api", cfg.GetAPIBasePath())
	assert.Equal(t, "http://localhost:5173", cfg.CORS.AllowedOrigin)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Contains(t, cfg.Database.DSN, "dbname=cinepulse_db")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_VERSION", "v2")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://cinepulse.example")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,")
	t.Setenv("JWT_EXPIRES_IN", "60")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := Load()

	assert.Equal(t, "/api/v2", cfg.GetAPIBasePath())
	assert.Equal(t, "https://cinepulse.example", cfg.CORS.AllowedOrigin)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, time.Minute, cfg.JWT.JWTExpiresIn)
	assert.False(t, cfg.RateLimit.Enabled)
}
