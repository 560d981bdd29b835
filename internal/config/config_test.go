package config

import (
	"log/slog"
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
	t.Run("Reads values from file", func(t *testing.T) {
		// Given: a config file with every section set
		path := writeConfig(t, `
log-level: debug
http-port: "8080"
socket-port: "8081"
line-strategy: windowed
storage-driver: memory
redis:
  host: cache
  port: "6380"
  game-ttl: 1h
`)

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: file values are used
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "8081", conf.SocketPort)
		assert.Equal(t, "windowed", conf.LineStrategy)
		assert.Equal(t, StorageMemory, conf.StorageDriver)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.GameTTL)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: info\n")

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: defaults fill the rest
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, "runs", conf.LineStrategy)
		assert.Equal(t, StorageRedis, conf.StorageDriver)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.GameTTL)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})

	t.Run("Unknown log level", func(t *testing.T) {
		// Given: a log level slog has no name for
		path := writeConfig(t, "log-level: verbose\n")

		// When: loading it
		conf, err := Load(path)

		// Then: loading fails instead of silently logging at another level
		require.ErrorIs(t, err, ErrInvalidLogLevel)
		assert.Contains(t, err.Error(), `"verbose"`)
		assert.Nil(t, conf)
	})

	t.Run("MustLoad panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		t.Run(name, func(t *testing.T) {
			level, err := (&Config{LogLevel: name}).SlogLevel()

			require.NoError(t, err)
			assert.Equal(t, want, level)
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := (&Config{}).SlogLevel()

		assert.ErrorIs(t, err, ErrInvalidLogLevel)
	})
}
