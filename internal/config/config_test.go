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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, DriverJSON, cfg.Storage.Driver)
	assert.Equal(t, "./data/database.json", cfg.Storage.Path)
	assert.Equal(t, int64(10*1024*1024), cfg.Uploads.MaxBytes)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Auth.Required)
	assert.Equal(t, ":8000", cfg.Addr())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  address: 127.0.0.1
  port: 9090
storage:
  driver: sqlite
  path: /tmp/consorcio.db
auth:
  jwt_secret: s3cret
  token_ttl: 2h
  required: true
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Auth.Required)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("CONSORCIO_SERVER_PORT", "7070")
	t.Setenv("CONSORCIO_STORAGE_DRIVER", "sqlite")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
}

func TestLoadErrors(t *testing.T) {
	t.Run("explicit missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Load(writeConfig(t, "storage:\n  driver: mongo\n"))
		assert.ErrorContains(t, err, "unknown storage driver")
	})

	t.Run("required auth without secret", func(t *testing.T) {
		_, err := Load(writeConfig(t, "auth:\n  required: true\n"))
		assert.ErrorContains(t, err, "jwt_secret")
	})
}
