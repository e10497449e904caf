package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "default", cfg.DefaultBoardTitle)
	assert.False(t, cfg.BroadcastDeletes)
	assert.Equal(t, 5*time.Minute, cfg.RedisTTL)
	assert.Equal(t, int64(2*1024*1024), cfg.MaxMessageSize)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("DEFAULT_BOARD_TITLE", "scratchpad")
	t.Setenv("BROADCAST_DELETES", "true")
	t.Setenv("REDIS_TTL", "90s")
	t.Setenv("WS_MAX_MESSAGE_SIZE", "1024")

	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, "scratchpad", cfg.DefaultBoardTitle)
	assert.True(t, cfg.BroadcastDeletes)
	assert.Equal(t, 90*time.Second, cfg.RedisTTL)
	assert.Equal(t, int64(1024), cfg.MaxMessageSize)
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_TTL", "not-a-duration")
	t.Setenv("BROADCAST_DELETES", "not-a-bool")
	t.Setenv("WS_MAX_MESSAGE_SIZE", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 5*time.Minute, cfg.RedisTTL)
	assert.False(t, cfg.BroadcastDeletes)
	assert.Equal(t, int64(2*1024*1024), cfg.MaxMessageSize)
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{
		DBHost: "localhost",
		DBPort: "5433",
		DBUser: "wb",
		DBPass: "secret",
		DBName: "whiteboard",
	}

	assert.Equal(t,
		"host=localhost user=wb password=secret dbname=whiteboard port=5433 sslmode=disable",
		cfg.PostgresDSN(),
	)
}
