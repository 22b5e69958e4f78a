package config_test

import (
	"testing"
	"time"

	"github.com/dom/gameshelf/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.SessionStorePostgres, cfg.SessionStore)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "argon2id", cfg.HashScheme)
	assert.Equal(t, 3, cfg.MinUsernameLength)
	assert.Equal(t, 6, cfg.MinPasswordLength)
	assert.True(t, cfg.EnableGames)
	assert.Equal(t, "uk", cfg.DefaultLocale)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("SESSION_SWEEP_INTERVAL", "30s")
	t.Setenv("HASH_SCHEME", "bcrypt")
	t.Setenv("MIN_USERNAME_LENGTH", "0")
	t.Setenv("ENABLE_GAMES", "false")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.SessionStoreRedis, cfg.SessionStore)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.SessionSweepInterval)
	assert.Equal(t, "bcrypt", cfg.HashScheme)
	assert.Equal(t, 0, cfg.MinUsernameLength)
	assert.False(t, cfg.EnableGames)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 0, cfg.RedisDB, "unparsable values fall back to the default")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{"SESSION_SECRET": ""}},
		{name: "short secret", env: map[string]string{"SESSION_SECRET": "short"}},
		{name: "unknown session store", env: map[string]string{"SESSION_SECRET": testSecret, "SESSION_STORE": "memcached"}},
		{name: "negative length", env: map[string]string{"SESSION_SECRET": testSecret, "MIN_PASSWORD_LENGTH": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
