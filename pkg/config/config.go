package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		RateCapacity    float64       `yaml:"rate_capacity" default:"20" validate:"gt=0"`
		RateRefill      float64       `yaml:"rate_refill" default:"10" validate:"gt=0"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error fatal panic"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"logging"`
	Universe struct {
		Extra    []string `yaml:"extra"`
		Screener struct {
			Enabled bool          `yaml:"enabled"`
			URL     string        `yaml:"url" default:"https://api.nasdaq.com/api/screener/stocks"`
			Limit   int           `yaml:"limit" default:"10000"`
			Timeout time.Duration `yaml:"timeout" default:"20s"`
		} `yaml:"screener"`
	} `yaml:"universe"`
	Fetcher struct {
		BaseURL          string        `yaml:"base_url" default:"https://query1.finance.yahoo.com"`
		HistoryRange     string        `yaml:"history_range" default:"2mo"`
		IntradayInterval string        `yaml:"intraday_interval" default:"5m"`
		IntradayRangeCap string        `yaml:"intraday_range_cap" default:"60d"`
		RecentRange      string        `yaml:"recent_range" default:"5d"`
		Timeout          time.Duration `yaml:"timeout" default:"30s"`
		MaxRetries       int           `yaml:"max_retries" default:"3" validate:"gte=0,lte=10"`
		RetryDelay       time.Duration `yaml:"retry_delay" default:"2s"`
		RateLimit        float64       `yaml:"rate_limit" default:"5"`
	} `yaml:"fetcher"`
	Analysis struct {
		MinDays         int           `yaml:"min_days" default:"5" validate:"gte=1"`
		Location        string        `yaml:"location" default:"America/New_York"`
		BatchSize       int           `yaml:"batch_size" default:"100" validate:"gte=1"`
		Workers         int           `yaml:"workers" default:"8" validate:"gte=1,lte=64"`
		RefreshInterval time.Duration `yaml:"refresh_interval"`
	} `yaml:"analysis"`
	Cache struct {
		TTL        time.Duration `yaml:"ttl" default:"1h"`
		Path       string        `yaml:"path" default:"intraday_cache.json"`
		FlushEvery int           `yaml:"flush_every" default:"5" validate:"gte=1"`
		Redis      struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr" default:"localhost:6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Key      string `yaml:"key" default:"volscan:stats_cache"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Export struct {
		Dir string `yaml:"dir" default:"output"`
	} `yaml:"export"`
	Scanner struct {
		Interval      time.Duration `yaml:"interval" default:"60s"`
		BatchSize     int           `yaml:"batch_size" default:"50" validate:"gte=1"`
		BatchPause    time.Duration `yaml:"batch_pause" default:"1s"`
		ZThreshold    float64       `yaml:"z_threshold" default:"2.0" validate:"gt=0"`
		VolWindowDays int           `yaml:"vol_window_days" default:"20" validate:"gte=1"`
		MinBars       int           `yaml:"min_bars" default:"100" validate:"gte=2"`
		Cooldown      time.Duration `yaml:"cooldown" default:"1h"`
		PruneBuffer   time.Duration `yaml:"prune_buffer" default:"1h"`
		Tickers       []string      `yaml:"tickers"`
	} `yaml:"scanner"`
	Telegram struct {
		BotToken string        `yaml:"bot_token"`
		ChatID   string        `yaml:"chat_id"`
		Timeout  time.Duration `yaml:"timeout" default:"10s"`
	} `yaml:"telegram"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Fill unset fields from default tags
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		c.Telegram.ChatID = v
	}
	if v := os.Getenv("TICKERS"); v != "" {
		c.Scanner.Tickers = strings.Split(v, ",")
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
		c.Cache.Redis.Enabled = true
	}
	if v := os.Getenv("CACHE_PATH"); v != "" {
		c.Cache.Path = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		c.Export.Dir = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Fetcher.BaseURL == "" {
		return fmt.Errorf("fetcher.base_url is required")
	}
	if c.Scanner.Cooldown <= 0 {
		return fmt.Errorf("scanner.cooldown must be positive")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	if _, err := time.LoadLocation(c.Analysis.Location); err != nil {
		return fmt.Errorf("analysis.location: %w", err)
	}
	return nil
}
