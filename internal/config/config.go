package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/emojisense/emojisense-backend/pkg/logger"
)

// Config is the process configuration, loaded from configs/config.<env>.yaml
// with environment-variable overrides for secrets.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Content   ContentConfig   `yaml:"content"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Model     ModelConfig     `yaml:"model"`
	Interpret InterpretConfig `yaml:"interpret"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig lists allowed browser origins, comma separated
type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

// AppConfig carries process-level settings
type AppConfig struct {
	Env  string `yaml:"env"`
	Port int    `yaml:"port"`
}

// ContentConfig points at the content corpus directories
type ContentConfig struct {
	EmojiDir string `yaml:"emoji_dir"`
	ComboDir string `yaml:"combo_dir"`
}

// DatabaseConfig configures the MySQL quota store. Disabled or
// unreachable DB degrades the quota tracker to always-permitted.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// DSN builds the MySQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// RedisConfig configures the interpretation cache and rate limiter
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// ModelConfig configures the external model API. The credential comes only
// from the environment, never from the YAML file.
type ModelConfig struct {
	APIKey                string `yaml:"-"`
	BaseURL               string `yaml:"base_url"`
	Name                  string `yaml:"name"`
	MaxAttempts           int    `yaml:"max_attempts"`
	RetryDelaySeconds     int    `yaml:"retry_delay_seconds"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

// RetryDelay returns the fixed inter-attempt delay
func (m ModelConfig) RetryDelay() time.Duration {
	return time.Duration(m.RetryDelaySeconds) * time.Second
}

// RequestTimeout returns the per-request HTTP timeout
func (m ModelConfig) RequestTimeout() time.Duration {
	return time.Duration(m.RequestTimeoutSeconds) * time.Second
}

// InterpretConfig tunes the interpreter feature
type InterpretConfig struct {
	DailyQuota        int `yaml:"daily_quota"`
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

// Load reads a YAML config file and applies env overrides and defaults
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// applyEnv lets environment variables override file values. Secrets only
// live here.
func (c *Config) applyEnv() {
	c.Model.APIKey = os.Getenv("MODEL_API_KEY")

	if v := os.Getenv("APP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.App.Port = port
		}
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
}

func (c *Config) applyDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 8080
	}
	if c.Content.EmojiDir == "" {
		c.Content.EmojiDir = "content/emojis"
	}
	if c.Content.ComboDir == "" {
		c.Content.ComboDir = "content/combos"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}
	if c.Model.Name == "" {
		c.Model.Name = "gpt-4o-mini"
	}
	if c.Model.MaxAttempts == 0 {
		c.Model.MaxAttempts = 3
	}
	if c.Model.RetryDelaySeconds == 0 {
		c.Model.RetryDelaySeconds = 2
	}
	if c.Model.RequestTimeoutSeconds == 0 {
		c.Model.RequestTimeoutSeconds = 60
	}
	if c.Interpret.DailyQuota == 0 {
		c.Interpret.DailyQuota = 5
	}
	if c.Interpret.RequestsPerMinute == 0 {
		c.Interpret.RequestsPerMinute = 30
	}
	if c.CORS.AllowOrigins == "" {
		c.CORS.AllowOrigins = "http://localhost:3000"
	}
}

// LogResolved logs the non-secret resolved configuration at boot
func LogResolved(c *Config) {
	logger.Info("config: env=%s port=%d emoji_dir=%s combo_dir=%s model=%s daily_quota=%d",
		c.App.Env, c.App.Port, c.Content.EmojiDir, c.Content.ComboDir, c.Model.Name, c.Interpret.DailyQuota)
	if c.Model.APIKey == "" {
		logger.Warn("config: MODEL_API_KEY is not set; interpretation requests will be rejected")
	}
}
