package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"FundPicker/internal/model"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Catalog source kinds.
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceSQLite  = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		// ChatID restricts the bot to these chats (comma separated); empty allows all.
		ChatID      string  `yaml:"chat_id"`
		SendPerSec  float64 `yaml:"send_per_sec"`
		SendRetries int     `yaml:"send_retries"`
	} `yaml:"telegram"`
	Catalog struct {
		Source string `yaml:"source"`
		Path   string `yaml:"path"`
	} `yaml:"catalog"`
	Risk struct {
		Categories map[model.RiskTier][]string `yaml:"categories"`
	} `yaml:"risk"`
	Session struct {
		// IdleTTL defaults to 30m when unset; an explicit 0 never sweeps.
		IdleTTL   *time.Duration `yaml:"idle_ttl"`
		SweepCron string         `yaml:"sweep_cron"`
	} `yaml:"session"`
	Display struct {
		Currency string `yaml:"currency"`
	} `yaml:"display"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads an optional .env file and the YAML config at path, then applies
// environment variable overrides and defaults. A missing config file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("CATALOG_SOURCE"); v != "" {
		cfg.Catalog.Source = v
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CURRENCY"); v != "" {
		cfg.Display.Currency = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Session.IdleTTL = &d
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Catalog.Source == "" {
		switch {
		case c.Catalog.Path != "":
			c.Catalog.Source = SourceFile
		default:
			c.Catalog.Source = SourceBuiltin
		}
	}
	c.Catalog.Source = strings.ToLower(c.Catalog.Source)
	if c.Telegram.SendPerSec == 0 {
		c.Telegram.SendPerSec = 1
	}
	if c.Telegram.SendRetries == 0 {
		c.Telegram.SendRetries = 3
	}
	if c.Session.IdleTTL == nil {
		ttl := 30 * time.Minute
		c.Session.IdleTTL = &ttl
	}
	if c.Session.SweepCron == "" {
		c.Session.SweepCron = "0 */5 * * * *"
	}
	if c.Display.Currency == "" {
		c.Display.Currency = money.INR
	}
	c.Display.Currency = strings.ToUpper(c.Display.Currency)
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/fundpicker.db"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// RiskCategories converts the configured tier mapping, or returns nil when
// none is configured.
func (c *Config) RiskCategories() (map[model.RiskTier][]model.Category, error) {
	if len(c.Risk.Categories) == 0 {
		return nil, nil
	}
	out := make(map[model.RiskTier][]model.Category, len(c.Risk.Categories))
	for tier, labels := range c.Risk.Categories {
		for _, label := range labels {
			cat, err := model.ParseCategory(label)
			if err != nil {
				return nil, fmt.Errorf("risk.categories.%s: %w", tier.Key(), err)
			}
			out[tier] = append(out[tier], cat)
		}
	}
	return out, nil
}

// SessionTTL returns how long an idle session is kept; 0 keeps it forever.
func (c *Config) SessionTTL() time.Duration {
	if c.Session.IdleTTL == nil {
		return 0
	}
	return *c.Session.IdleTTL
}

// AllowedChats returns the chat allow-list; empty means every chat is served.
func (c *Config) AllowedChats() []string {
	var ids []string
	for _, id := range strings.Split(c.Telegram.ChatID, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Validate checks the settings every command depends on.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceBuiltin, SourceSQLite:
	case SourceFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog.path is required for the file source")
		}
	default:
		return fmt.Errorf("catalog.source must be builtin, file or sqlite, got %q", c.Catalog.Source)
	}
	if c.Catalog.Source == SourceSQLite && c.Database.SQLitePath == "" {
		return fmt.Errorf("database.sqlite_path is required for the sqlite source")
	}
	if money.GetCurrency(c.Display.Currency) == nil {
		return fmt.Errorf("display.currency %q is not an ISO 4217 code", c.Display.Currency)
	}
	if c.SessionTTL() < 0 {
		return fmt.Errorf("session.idle_ttl must not be negative")
	}
	if _, err := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow).Parse(c.Session.SweepCron); err != nil {
		return fmt.Errorf("session.sweep_cron: %w", err)
	}
	if c.Telegram.SendPerSec <= 0 {
		return fmt.Errorf("telegram.send_per_sec must be positive")
	}
	if _, err := c.RiskCategories(); err != nil {
		return err
	}
	return nil
}

// ValidateBot checks the settings the Telegram bot needs on top of Validate.
func (c *Config) ValidateBot() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	return nil
}
