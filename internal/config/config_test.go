package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PLATFORM_API_URL", "")
	t.Setenv("ENV", "")
	t.Setenv("QUERY_CACHE_TTL", "")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "http://localhost:8080/api", cfg.PlatformURL)
	assert.Equal(t, 30*time.Second, cfg.QueryCacheTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("PLATFORM_API_URL", "https://platform.example.com/api/")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("VIEW_IDLE_TTL", "5m")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://platform.example.com/api", cfg.PlatformURL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 5*time.Minute, cfg.ViewIdleTTL)
}

func TestGetIntEnv_InvalidFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	assert.Equal(t, 7, GetIntEnv("REDIS_DB", 7))
}

func TestGetDurationEnv_InvalidFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	assert.Equal(t, time.Hour, GetDurationEnv("TOKEN_TTL", time.Hour))
}
