package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Timezone           string  `yaml:"timezone"`
	DayCutoffHour      int     `yaml:"day_cutoff_hour"`
	FeeRate            float64 `yaml:"fee_rate"`
	ExcludeAlphaTokens bool    `yaml:"exclude_alpha_tokens"`
	Scrape             struct {
		BaseURL        string `yaml:"base_url"`
		HistoryPath    string `yaml:"history_path"`
		MaxPages       int    `yaml:"max_pages"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		RateLimitMS    int    `yaml:"rate_limit_ms"`
		UserAgent      string `yaml:"user_agent"`
	} `yaml:"scrape"`
	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
}

func (c *Config) Validate() error {
	if c.DayCutoffHour < 0 || c.DayCutoffHour > 23 {
		return fmt.Errorf("day_cutoff_hour must be 0-23, got %d", c.DayCutoffHour)
	}
	if c.FeeRate < 0 || c.FeeRate >= 1 {
		return fmt.Errorf("fee_rate must be in [0,1), got %g", c.FeeRate)
	}
	if c.Scrape.MaxPages <= 0 {
		return fmt.Errorf("scrape.max_pages must be positive, got %d", c.Scrape.MaxPages)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", c.Timezone, err)
	}
	return nil
}

// Location resolves the configured timezone. Validate has already checked
// it, so resolution failure falls back to the process-local zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	applyDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}

// Default returns the configuration used when no config.yaml is present.
func Default() *Config {
	var c Config
	applyDefaults(&c)
	return &c
}

func applyDefaults(c *Config) {
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.DayCutoffHour == 0 {
		c.DayCutoffHour = 8
	}
	if c.FeeRate == 0 {
		c.FeeRate = 0.0001
	}
	if c.Scrape.MaxPages == 0 {
		c.Scrape.MaxPages = 1000
	}
	if c.Scrape.TimeoutSeconds == 0 {
		c.Scrape.TimeoutSeconds = 15
	}
	if c.Scrape.RateLimitMS == 0 {
		c.Scrape.RateLimitMS = 1500
	}
	if c.Scrape.UserAgent == "" {
		c.Scrape.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "exports"
	}
}
