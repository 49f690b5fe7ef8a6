// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
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
	GetShutdownTimeout() time.Duration
}

// RateLimitConfig provides settings for the per-IP rate limiter.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// RulesConfig selects the rule set the engine scores with.
type RulesConfig interface {
	// GetRulesYear returns the embedded edition to load, or 0 for the latest.
	GetRulesYear() int
	// GetRulesFile returns a YAML rule set path that overrides the embedded editions.
	GetRulesFile() string
}

// BatchConfig provides limits for batch assessment.
type BatchConfig interface {
	GetBatchLimit() int
	GetBatchConcurrency() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env              string
	HTTPAddr         string
	CORSAllowAll     bool
	CORSOrigins      []string
	CORSAllowCreds   bool
	ShutdownTimeout  time.Duration
	RateLimitRPS     float64
	RateLimitBurst   int
	RulesYear        int
	RulesFile        string
	BatchLimit       int
	BatchConcurrency int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string               { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool             { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string          { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool           { return c.CORSAllowCreds }
func (c *Config) GetShutdownTimeout() time.Duration { return c.ShutdownTimeout }

// RateLimitConfig implementation
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// RulesConfig implementation
func (c *Config) GetRulesYear() int    { return c.RulesYear }
func (c *Config) GetRulesFile() string { return c.RulesFile }

// BatchConfig implementation
func (c *Config) GetBatchLimit() int       { return c.BatchLimit }
func (c *Config) GetBatchConcurrency() int { return c.BatchConcurrency }

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool { return strings.EqualFold(c.Env, "development") }

// Load reads configuration from environment variables, after applying a .env
// file when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() (*Config, error) {
	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	p := &parser{}
	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:     corsAllowAll,
		CORSOrigins:      corsOrigins,
		CORSAllowCreds:   strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		ShutdownTimeout:  p.durationVar("SHUTDOWN_TIMEOUT", "10s"),
		RateLimitRPS:     p.floatVar("RATE_LIMIT_RPS", "10"),
		RateLimitBurst:   p.intVar("RATE_LIMIT_BURST", "20"),
		RulesYear:        p.intVar("RULES_YEAR", "0"),
		RulesFile:        getEnv("RULES_FILE", ""),
		BatchLimit:       p.intVar("BATCH_LIMIT", "50"),
		BatchConcurrency: p.intVar("BATCH_CONCURRENCY", "5"),
	}
	if p.err != nil {
		return nil, p.err
	}

	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be positive and RATE_LIMIT_BURST at least 1")
	}
	if cfg.RulesYear < 0 {
		return nil, fmt.Errorf("RULES_YEAR must not be negative")
	}
	if cfg.BatchLimit < 1 || cfg.BatchConcurrency < 1 {
		return nil, fmt.Errorf("BATCH_LIMIT and BATCH_CONCURRENCY must be at least 1")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// parser keeps the first conversion error so Load can report it by variable name.
type parser struct {
	err error
}

func (p *parser) fail(key, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
}

func (p *parser) durationVar(key, fallback string) time.Duration {
	value := getEnv(key, fallback)
	d, err := time.ParseDuration(value)
	if err != nil {
		p.fail(key, value, err)
	}
	return d
}

func (p *parser) intVar(key, fallback string) int {
	value := getEnv(key, fallback)
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		p.fail(key, value, err)
	}
	return result
}

func (p *parser) floatVar(key, fallback string) float64 {
	value := getEnv(key, fallback)
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		p.fail(key, value, err)
	}
	return result
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
