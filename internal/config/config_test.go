package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"FundPicker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp isolates Load from any .env file in the package directory.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := chdirTemp(t)

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, SourceBuiltin, cfg.Catalog.Source)
	assert.Equal(t, "INR", cfg.Display.Currency)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL())
	assert.Equal(t, "0 */5 * * * *", cfg.Session.SweepCron)
	assert.Equal(t, 3, cfg.Telegram.SendRetries)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
	assert.Error(t, cfg.ValidateBot(), "bot token is required for the bot")
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
telegram:
  bot_token: from-file
  chat_id: "100, 200"
catalog:
  path: funds.yaml
risk:
  categories:
    low: [debt]
    medium: [index, large cap]
    high: [small cap, mid cap]
session:
  idle_ttl: 10m
display:
  currency: usd
`), 0644))
	t.Setenv("TELEGRAM_BOT_TOKEN", "from-env")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.ValidateBot())

	assert.Equal(t, "from-env", cfg.Telegram.BotToken)
	assert.Equal(t, []string{"100", "200"}, cfg.AllowedChats())
	assert.Equal(t, SourceFile, cfg.Catalog.Source, "a catalog path implies the file source")
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL())
	assert.Equal(t, "USD", cfg.Display.Currency)
	assert.Equal(t, "debug", cfg.Log.Level)

	cats, err := cfg.RiskCategories()
	require.NoError(t, err)
	assert.Equal(t, []model.Category{model.Debt}, cats[model.Low])
	assert.Equal(t, []model.Category{model.Index, model.LargeCap}, cats[model.Medium])
	assert.Equal(t, []model.Category{model.SmallCap, model.MidCap}, cats[model.High])
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CATALOG_SOURCE=sqlite\nSQLITE_PATH=/tmp/funds.db\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("CATALOG_SOURCE")
		os.Unsetenv("SQLITE_PATH")
	})

	cfg, err := Load(filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)

	assert.Equal(t, SourceSQLite, cfg.Catalog.Source)
	assert.Equal(t, "/tmp/funds.db", cfg.Database.SQLitePath)
}

func TestLoad_BadYAML(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("telegram: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown source", func(c *Config) { c.Catalog.Source = "ftp" }},
		{"file without path", func(c *Config) { c.Catalog.Source = SourceFile; c.Catalog.Path = "" }},
		{"bad currency", func(c *Config) { c.Display.Currency = "XYZW" }},
		{"bad cron", func(c *Config) { c.Session.SweepCron = "every minute" }},
		{"negative ttl", func(c *Config) { ttl := -time.Second; c.Session.IdleTTL = &ttl }},
		{"zero send rate", func(c *Config) { c.Telegram.SendPerSec = -1 }},
		{"unknown category", func(c *Config) {
			c.Risk.Categories = map[model.RiskTier][]string{model.Low: {"crypto"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_ZeroTTLDisablesSweeping(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  idle_ttl: 0s\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Zero(t, cfg.SessionTTL())

	t.Setenv("SESSION_TTL", "0")
	cfg, err = Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Zero(t, cfg.SessionTTL())
}
