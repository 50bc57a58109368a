// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config holds the settings of the dictionary client.

It leverages 'caarlos0/env' to map OS environment variables into a strongly
typed struct. Two optional sources can seed it first: '.env' files
('joho/godotenv') and a YAML file using the same layout as the service's
application properties ('gopkg.in/yaml.v3'):

	dictionary-service:
	  api:
	    url: https://dictionary.internal
	    version: "1"

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	client, err := dictionary.New(cfg, logger)

Architecture:

  - Precedence: environment > YAML file > built-in defaults.
  - Immutability: Once loaded, configuration is read-only.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/taibuivan/dictionary/internal/platform/constants"
	"github.com/taibuivan/dictionary/internal/platform/validate"
)

// # Configuration Schema

// Config holds all runtime configuration for the dictionary client.
type Config struct {

	// Dictionary service location
	URL     string `env:"DICTIONARY_SERVICE_API_URL"`
	Version string `env:"DICTIONARY_SERVICE_API_VERSION"`

	// Transport tuning
	Timeout    time.Duration `env:"DICTIONARY_SERVICE_TIMEOUT"`
	RetryCount int           `env:"DICTIONARY_SERVICE_RETRY_COUNT"`

	// Client-side rate limiting (requests per second, 0 disables it)
	RateLimit float64 `env:"DICTIONARY_SERVICE_RATE_LIMIT"`
	RateBurst int     `env:"DICTIONARY_SERVICE_RATE_BURST"`

	// Debug enables request/response debug output of the HTTP client.
	Debug bool `env:"DICTIONARY_SERVICE_DEBUG"`
}

// fileLayout mirrors the "dictionary-service.api" properties block.
type fileLayout struct {
	DictionaryService struct {
		API struct {
			URL        string        `yaml:"url"`
			Version    string        `yaml:"version"`
			Timeout    time.Duration `yaml:"timeout"`
			RetryCount int           `yaml:"retry-count"`
			RateLimit  float64       `yaml:"rate-limit"`
			RateBurst  int           `yaml:"rate-burst"`
			Debug      bool          `yaml:"debug"`
		} `yaml:"api"`
	} `yaml:"dictionary-service"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	return fromEnv(&Config{})
}

// LoadDotenv loads the given .env files (".env" when none is given) into the
// process environment and then calls [Load]. Missing files are skipped;
// variables already present in the environment are not overwritten.
func LoadDotenv(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("config: failed to load %s: %w", file, err)
		}
	}

	return Load()
}

// LoadFile reads a YAML configuration file, then applies environment
// overrides on top of it.
func LoadFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var layout fileLayout
	if err := yaml.Unmarshal(raw, &layout); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	api := layout.DictionaryService.API
	return fromEnv(&Config{
		URL:        api.URL,
		Version:    api.Version,
		Timeout:    api.Timeout,
		RetryCount: api.RetryCount,
		RateLimit:  api.RateLimit,
		RateBurst:  api.RateBurst,
		Debug:      api.Debug,
	})
}

// fromEnv overlays environment variables on cfg, applies defaults and
// validates the result.
func fromEnv(cfg *Config) (*Config, error) {

	// Fields whose variable is unset keep their current value.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills zero-valued tuning fields.
func (c *Config) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = constants.DefaultRequestTimeout
	}
	if c.RateLimit > 0 && c.RateBurst <= 0 {
		c.RateBurst = 1
	}
}

// Validate reports missing or malformed settings as an INVALID_QUERY error.
func (c *Config) Validate() error {
	validator := &validate.Validator{}
	validator.Required("url", c.URL).URL("url", c.URL).
		Required("version", c.Version).
		Min("retry_count", c.RetryCount, 0).
		Custom("rate_limit", c.RateLimit < 0, "Must be greater than or equal to 0")

	return validator.Err()
}

// BaseURL returns the versioned API root, e.g. "https://host/api/v1/".
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.URL, "/") + constants.APIPathPrefix + strings.TrimPrefix(c.Version, "v") + "/"
}
