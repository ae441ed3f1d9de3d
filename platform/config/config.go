// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"operations_backend/platform/validator"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides settings for the per-IP rate limiter.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
	IsRateLimitEnabled() bool
}

// AddressAPIConfig provides settings for the external address lookup service.
type AddressAPIConfig interface {
	GetAddressAPIBaseURL() string
	GetAddressAPIKey() string
	GetAddressAPITimeout() time.Duration
}

// OperationsConfig provides settings for the operations module.
type OperationsConfig interface {
	GetSeedSampleOperation() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                 string `validate:"required"`
	HTTPAddr            string `validate:"required"`
	CORSAllowAll        bool
	CORSOrigins         []string
	CORSAllowCreds      bool
	RateLimitRPS        float64       `validate:"gte=0"`
	RateLimitBurst      int           `validate:"gte=1"`
	AddressAPIBaseURL   string        `validate:"required,url"`
	AddressAPIKey       string        `validate:"required"`
	AddressAPITimeout   time.Duration `validate:"gte=0"`
	SeedSampleOperation bool
}

// fileConfig mirrors the optional YAML file referenced by CONFIG_FILE.
type fileConfig struct {
	Env        string `yaml:"env"`
	HTTPAddr   string `yaml:"httpAddr"`
	AddressAPI struct {
		BaseURL string `yaml:"baseUrl"`
		APIKey  string `yaml:"apiKey"`
		Timeout string `yaml:"timeout"`
	} `yaml:"addressApi"`
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RateLimitConfig implementation
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }
func (c *Config) IsRateLimitEnabled() bool { return c.RateLimitRPS > 0 }

// AddressAPIConfig implementation
func (c *Config) GetAddressAPIBaseURL() string        { return c.AddressAPIBaseURL }
func (c *Config) GetAddressAPIKey() string            { return c.AddressAPIKey }
func (c *Config) GetAddressAPITimeout() time.Duration { return c.AddressAPITimeout }

// OperationsConfig implementation
func (c *Config) GetSeedSampleOperation() bool { return c.SeedSampleOperation }

// Load reads configuration from an optional YAML file and environment variables.
// Environment variables take precedence over values from the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	file, err := readFile(getEnv("CONFIG_FILE", ""))
	if err != nil {
		return nil, err
	}

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	rps, err := parseFloat("RATE_LIMIT_RPS", getEnv("RATE_LIMIT_RPS", "0"))
	if err != nil {
		return nil, err
	}
	burst, err := parseInt("RATE_LIMIT_BURST", getEnv("RATE_LIMIT_BURST", "20"))
	if err != nil {
		return nil, err
	}
	timeout, err := parseDuration("ADDRESS_API_TIMEOUT", getEnv("ADDRESS_API_TIMEOUT", orDefault(file.AddressAPI.Timeout, "0s")))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:                 getEnv("APP_ENV", orDefault(file.Env, "development")),
		HTTPAddr:            getEnv("HTTP_ADDR", orDefault(file.HTTPAddr, ":8080")),
		CORSAllowAll:        corsAllowAll,
		CORSOrigins:         corsOrigins,
		CORSAllowCreds:      strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		RateLimitRPS:        rps,
		RateLimitBurst:      burst,
		AddressAPIBaseURL:   strings.TrimSpace(getEnv("ADDRESS_API_BASE_URL", file.AddressAPI.BaseURL)),
		AddressAPIKey:       getEnv("ADDRESS_API_KEY", file.AddressAPI.APIKey),
		AddressAPITimeout:   timeout,
		SeedSampleOperation: strings.EqualFold(getEnv("SEED_SAMPLE_OPERATION", "true"), "true"),
	}

	if cfg.AddressAPIBaseURL == "" || cfg.AddressAPIKey == "" {
		return nil, fmt.Errorf("ADDRESS_API_BASE_URL and ADDRESS_API_KEY are required")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var file fileConfig
	if path == "" {
		return file, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return file, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return file, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, value, err)
	}
	return d, nil
}

func parseInt(key, value string) (int, error) {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, value, err)
	}
	return result, nil
}

func parseFloat(key, value string) (float64, error) {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q: %w", key, value, err)
	}
	return result, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
