package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "sessionid", cfg.Session.CookieName)
	assert.Equal(t, 14*24*time.Hour, cfg.Session.TTL)
	assert.Empty(t, cfg.Redis.URL)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/todo-test.db")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("LOGIN_RATE_LIMIT", "3")
	t.Setenv("CSRF_ENABLED", "false")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/todo-test.db", cfg.Database.SQLitePath)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 3, cfg.Security.LoginRateLimit)
	assert.False(t, cfg.Security.CSRFEnabled)
	assert.True(t, cfg.IsProduction())
}

func TestGetDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_DURATION", "not-a-duration")
	assert.Equal(t, time.Second, getDuration("SOME_DURATION", time.Second))

	t.Setenv("SOME_DURATION", "-5s")
	assert.Equal(t, time.Second, getDuration("SOME_DURATION", time.Second))
}
