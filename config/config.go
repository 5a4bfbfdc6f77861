// Package config manages application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"yt2alt/internal/retry"
	"yt2alt/invidious"
	"yt2alt/profile"
)

// Config holds all application configuration for an export run.
type Config struct {
	// FeedLimit is the maximum number of videos read per feed.
	// -1 means unbounded; unbounded is unsafe for the home feed.
	FeedLimit int

	// CallbackPort is the local port the Invidious token callback
	// listens on.
	CallbackPort int

	// HTTPTimeout is the per-request timeout for upstream calls.
	HTTPTimeout time.Duration

	// OAuthClientID and OAuthClientSecret identify the OAuth
	// application used for the device sign-in flow.
	OAuthClientID     string
	OAuthClientSecret string

	// MaxRetries caps retries of transient upstream failures.
	MaxRetries int
	// InitialBackoff is the initial retry delay.
	InitialBackoff time.Duration
	// MaxBackoff is the maximum retry delay.
	MaxBackoff time.Duration
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		FeedLimit:      profile.DefaultFeedLimit,
		CallbackPort:   invidious.DefaultCallbackPort,
		HTTPTimeout:    30 * time.Second,
		MaxRetries:     3,
		InitialBackoff: 1 * time.Second,
		MaxBackoff:     30 * time.Second,
	}
}

// Load loads configuration from environment variables over defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromEnv overrides config with YT2ALT_* environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YT2ALT_FEED_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FeedLimit = n
		}
	}
	if v := os.Getenv("YT2ALT_CALLBACK_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.CallbackPort = n
		}
	}
	if v := os.Getenv("YT2ALT_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTPTimeout = d
		}
	}
	if v := os.Getenv("YT2ALT_OAUTH_CLIENT_ID"); v != "" {
		c.OAuthClientID = v
	}
	if v := os.Getenv("YT2ALT_OAUTH_CLIENT_SECRET"); v != "" {
		c.OAuthClientSecret = v
	}
	if v := os.Getenv("YT2ALT_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRetries = n
		}
	}
	if v := os.Getenv("YT2ALT_INITIAL_BACKOFF"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.InitialBackoff = d
		}
	}
	if v := os.Getenv("YT2ALT_MAX_BACKOFF"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.MaxBackoff = d
		}
	}
}

// RetryConfig builds the retry configuration for the upstream layer.
func (c *Config) RetryConfig() retry.Config {
	cfg := retry.DefaultConfig()
	cfg.MaxRetries = c.MaxRetries
	cfg.InitialBackoff = c.InitialBackoff
	cfg.MaxBackoff = c.MaxBackoff
	return cfg
}

// Validate checks that configuration values are valid and consistent.
func (c *Config) Validate() error {
	if c.FeedLimit < -1 {
		return fmt.Errorf("feed limit must be -1 or non-negative")
	}
	if c.CallbackPort < 1 || c.CallbackPort > 65535 {
		return fmt.Errorf("callback port must be in 1-65535")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max retries must be non-negative")
	}
	if c.InitialBackoff <= 0 {
		return fmt.Errorf("initial backoff must be positive")
	}
	if c.MaxBackoff < c.InitialBackoff {
		return fmt.Errorf("max backoff must be >= initial backoff")
	}
	return nil
}
