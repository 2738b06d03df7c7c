package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "app:\n  env: local\n")

	cfg, err := Load(path)

	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "content/emojis", cfg.Content.EmojiDir)
	assert.Equal(t, "content/combos", cfg.Content.ComboDir)
	assert.Equal(t, "gpt-4o-mini", cfg.Model.Name)
	assert.Equal(t, 3, cfg.Model.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Model.RetryDelay())
	assert.Equal(t, 60*time.Second, cfg.Model.RequestTimeout())
	assert.Equal(t, 5, cfg.Interpret.DailyQuota)
}

func TestLoad_FileValuesWin(t *testing.T) {
	path := writeConfig(t, `
app:
  env: production
  port: 9000
model:
  name: gpt-4o
  max_attempts: 5
  retry_delay_seconds: 1
interpret:
  daily_quota: 20
`)

	cfg, err := Load(path)

	assert.NoError(t, err)
	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, "gpt-4o", cfg.Model.Name)
	assert.Equal(t, 5, cfg.Model.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Model.RetryDelay())
	assert.Equal(t, 20, cfg.Interpret.DailyQuota)
}

func TestLoad_EnvOverridesAndSecrets(t *testing.T) {
	t.Setenv("MODEL_API_KEY", "sk-test-123")
	t.Setenv("APP_PORT", "3333")
	t.Setenv("REDIS_HOST", "cache.internal")

	path := writeConfig(t, "app:\n  port: 9000\nredis:\n  host: localhost\n")
	cfg, err := Load(path)

	assert.NoError(t, err)
	assert.Equal(t, "sk-test-123", cfg.Model.APIKey)
	assert.Equal(t, 3333, cfg.App.Port)
	assert.Equal(t, "cache.internal", cfg.Redis.Host)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 3306, User: "u", Password: "p", Name: "emojisense"}
	assert.Equal(t, "u:p@tcp(db:3306)/emojisense?charset=utf8mb4&parseTime=True&loc=UTC", d.DSN())
}
