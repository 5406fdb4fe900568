package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath     = "configs/config.yaml"
	DefaultProvider = "synthetic"
	DefaultStart    = "2020-01-01"
	DefaultEnd      = "2025-01-01"
	DefaultCron     = "0 0 22 * * 1-5"

	dateLayout = "2006-01-02"
)

// DataSource selects the price provider and the requested date range.
type DataSource struct {
	Provider string        `yaml:"provider"`
	Start    string        `yaml:"start"`
	End      string        `yaml:"end"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// Schedule configures the watch command.
type Schedule struct {
	Cron string `yaml:"cron"`
}

// Logging configures the diagnostics stream.
type Logging struct {
	Level      string `yaml:"level"`  // trace, debug, info, warn, error
	Format     string `yaml:"format"` // pretty, json
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Config holds all application configuration.
type Config struct {
	DataSource DataSource `yaml:"data_source"`
	Schedule   Schedule   `yaml:"schedule"`
	Logging    Logging    `yaml:"logging"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
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
	if v := os.Getenv("ANALYST_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("ANALYST_START"); v != "" {
		cfg.DataSource.Start = v
	}
	if v := os.Getenv("ANALYST_END"); v != "" {
		cfg.DataSource.End = v
	}
	if v := os.Getenv("ANALYST_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse ANALYST_CACHE_TTL: %w", err)
		}
		cfg.DataSource.CacheTTL = ttl
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = DefaultProvider
	}
	if cfg.DataSource.Start == "" {
		cfg.DataSource.Start = DefaultStart
	}
	if cfg.DataSource.End == "" {
		cfg.DataSource.End = DefaultEnd
	}
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = DefaultCron
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "pretty"
	}
	if cfg.Logging.MaxSizeMB == 0 {
		cfg.Logging.MaxSizeMB = 10
	}
	if cfg.Logging.MaxAgeDays == 0 {
		cfg.Logging.MaxAgeDays = 7
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.DataSource.Provider != DefaultProvider {
		return fmt.Errorf("data_source.provider %q is not supported", c.DataSource.Provider)
	}
	start, err := time.Parse(dateLayout, c.DataSource.Start)
	if err != nil {
		return fmt.Errorf("data_source.start must be YYYY-MM-DD: %w", err)
	}
	end, err := time.Parse(dateLayout, c.DataSource.End)
	if err != nil {
		return fmt.Errorf("data_source.end must be YYYY-MM-DD: %w", err)
	}
	if start.After(end) {
		return fmt.Errorf("data_source.start %s is after data_source.end %s", c.DataSource.Start, c.DataSource.End)
	}
	if c.DataSource.CacheTTL < 0 {
		return fmt.Errorf("data_source.cache_ttl must not be negative")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of trace, debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of pretty, json", c.Logging.Format)
	}
	return nil
}
