package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  port: "9090"
  mode: production
database:
  host: db.internal
  dbname: marketplace
jwt:
  secret: file-secret
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "production", cfg.Server.Mode)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "marketplace", cfg.Database.DBName)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeConfigFile(t, `
jwt:
  secret: file-secret
`)
		t.Setenv("SERVER_PORT", "7070")
		t.Setenv("JWT_SECRET", "env-secret")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Server.Port)
		assert.Equal(t, "env-secret", cfg.JWT.Secret)
	})

	t.Run("missing file falls back to defaults plus env", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "env-only-secret")

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "env-only-secret", cfg.JWT.Secret)
	})

	t.Run("missing jwt secret rejected", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  port: "9090"
`)
		_, err := LoadConfig(path)
		require.Error(t, err)
	})
}

func TestGetPostgresConnectionString(t *testing.T) {
	t.Run("explicit url wins", func(t *testing.T) {
		cfg := &Config{}
		cfg.Database.URL = "postgres://u:p@h:5432/d"
		cfg.Database.Host = "ignored"
		assert.Equal(t, "postgres://u:p@h:5432/d", cfg.GetPostgresConnectionString())
	})

	t.Run("assembled from discrete settings", func(t *testing.T) {
		cfg := &Config{}
		cfg.Database.Host = "localhost"
		cfg.Database.Port = "5432"
		cfg.Database.User = "app"
		cfg.Database.Password = "pw"
		cfg.Database.DBName = "studyconnect"
		cfg.Database.SSLMode = "disable"
		assert.Equal(t,
			"postgres://app:pw@localhost:5432/studyconnect?sslmode=disable",
			cfg.GetPostgresConnectionString())
	})
}
