package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults fill missing keys", func(t *testing.T) {
		// Given: a config with only the redis host
		path := writeConfig(t, "redis:\n  host: cache\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: every other key has its default
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "minimax", conf.Engine.Strategy)
		assert.Equal(t, 10*time.Second, conf.Engine.SearchTimeout)
		assert.Equal(t, "lru", conf.Engine.Cache.Policy)
		assert.Equal(t, 200000, conf.Engine.Cache.Capacity)
		assert.Equal(t, "medium", conf.Board.Preset)
		assert.Equal(t, 1, conf.Board.RequiredLineLength)
		assert.True(t, conf.Board.ScoreAgain)
	})

	t.Run("File values and environment overrides", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
engine:
  strategy: winning_strategy
  depth: 4
  cache:
    policy: reset
board:
  preset: tiny
  required-line-length: 2
`)
		t.Setenv("ENGINE_DEPTH", "2")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "winning_strategy", conf.Engine.Strategy)
		assert.Equal(t, 2, conf.Engine.Depth)
		assert.Equal(t, "reset", conf.Engine.Cache.Policy)
		assert.Equal(t, "tiny", conf.Board.Preset)
		assert.Equal(t, 2, conf.Board.RequiredLineLength)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
		assert.Error(t, err)

		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}
