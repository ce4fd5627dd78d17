// Package config loads client configuration from an optional YAML file with
// environment-variable fallback. Credentials are typically supplied through
// the environment (a .env file loaded by the caller) rather than checked-in
// config files.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the resolved application configuration.
type Config struct {
	APIKey     string
	APISecret  string
	BaseURL    string // empty = exchange mainnet
	Testnet    bool
	RecvWindow int // milliseconds of clock-skew tolerance on signed calls
	TimeoutSec int // HTTP timeout in seconds

	LogLevel string
	LogFile  string
}

// fileConfig mirrors the YAML layout. Credentials are accepted here for
// completeness but the environment takes priority for them.
type fileConfig struct {
	APIKey     string `yaml:"api_key"`
	APISecret  string `yaml:"api_secret"`
	BaseURL    string `yaml:"base_url"`
	Testnet    bool   `yaml:"testnet"`
	RecvWindow int    `yaml:"recv_window"`
	TimeoutSec int    `yaml:"timeout_sec"`
	LogLevel   string `yaml:"log_level"`
	LogFile    string `yaml:"log_file"`
}

// Load reads the YAML file at path (skipped when path is empty) and merges
// it with environment variables. Priority: environment > file > default.
func Load(path string) (*Config, error) {
	var fc fileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		APIKey:     getEnv("BINANCE_API_KEY", fc.APIKey),
		APISecret:  getEnv("BINANCE_API_SECRET", fc.APISecret),
		BaseURL:    getEnv("BINANCE_BASE_URL", fc.BaseURL),
		Testnet:    getBoolEnv("BINANCE_TESTNET", fc.Testnet),
		RecvWindow: getIntEnv("BINANCE_RECV_WINDOW", orInt(fc.RecvWindow, 6000)),
		TimeoutSec: getIntEnv("BINANCE_TIMEOUT_SEC", orInt(fc.TimeoutSec, 15)),
		LogLevel:   getEnv("LOG_LEVEL", orStr(fc.LogLevel, "info")),
		LogFile:    getEnv("LOG_FILE", fc.LogFile),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields every authenticated call depends on.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("BINANCE_API_KEY is not configured")
	}
	if c.APISecret == "" {
		return fmt.Errorf("BINANCE_API_SECRET is not configured")
	}
	if c.RecvWindow <= 0 {
		return fmt.Errorf("recv_window must be positive, got %d", c.RecvWindow)
	}
	if c.TimeoutSec <= 0 {
		return fmt.Errorf("timeout_sec must be positive, got %d", c.TimeoutSec)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getBoolEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func orStr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func orInt(v, def int) int {
	if v != 0 {
		return v
	}
	return def
}
