// Package config defines service configuration and its layered loading:
// defaults, then an optional YAML file, then SYNC_-prefixed environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DiningLocation is one configured dining site. ExtraMeals widens the
// standard meal allow-list for that site only.
type DiningLocation struct {
	Name       string   `koanf:"name"`
	URL        string   `koanf:"url"`
	ExtraMeals []string `koanf:"extra_meals"`
}

// Config holds all service settings.
type Config struct {
	RedisAddr string `koanf:"redis_addr"`
	RedisDB   int    `koanf:"redis_db"`
	HTTPAddr  string `koanf:"http_addr"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	EventsURL        string `koanf:"events_url"`
	DailyMessagesURL string `koanf:"daily_messages_url"`

	DiningLocations []DiningLocation `koanf:"dining_locations"`

	// Timezone keys the daily snapshot documents and anchors the cron
	// schedules.
	Timezone string `koanf:"timezone"`

	FetchTimeout time.Duration `koanf:"fetch_timeout"`
	FetchRetries int           `koanf:"fetch_retries"`

	EventsSchedule        string `koanf:"events_schedule"`
	DailyMessagesSchedule string `koanf:"daily_messages_schedule"`
	DiningSchedule        string `koanf:"dining_schedule"`

	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		RedisAddr: "localhost:6379",
		HTTPAddr:  ":8080",
		LogLevel:  "info",
		LogFormat: "json",

		EventsURL:        "https://events.williams.edu/wp-json/wms/events/v1/list?per_page=500",
		DailyMessagesURL: "https://events.williams.edu/wp-json/wms/events/v1/list/dm/",

		Timezone: "America/New_York",

		FetchTimeout: 15 * time.Second,
		FetchRetries: 2,

		EventsSchedule:        "5 0 * * *",
		DailyMessagesSchedule: "30 0 * * 1-5",
		DiningSchedule:        "0 1 * * *",

		ShutdownTimeout: 10 * time.Second,
	}
}

// Load builds a Config by layering defaults, an optional YAML file
// (SYNC_CONFIG), and environment variables (prefix SYNC_).
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("SYNC_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// SYNC_REDIS_ADDR -> redis_addr, etc. Underscores are preserved to
	// match the flat koanf tags on the struct.
	envProvider := env.Provider("SYNC_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SYNC_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.RedisAddr == "" {
		return errors.New("redis_addr must not be empty")
	}
	if c.EventsURL == "" {
		return errors.New("events_url must not be empty")
	}
	if c.DailyMessagesURL == "" {
		return errors.New("daily_messages_url must not be empty")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.FetchTimeout <= 0 {
		return errors.New("fetch_timeout must be positive")
	}
	if c.FetchRetries < 0 {
		return errors.New("fetch_retries must not be negative")
	}
	for i, loc := range c.DiningLocations {
		if loc.Name == "" || loc.URL == "" {
			return fmt.Errorf("dining_locations[%d]: name and url are required", i)
		}
	}
	return nil
}

// Location loads the configured timezone. Call after validation.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
