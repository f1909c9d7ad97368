package config

import (
	"fmt"
	"net/url"
	"strings"
)

// MaxFetchRetries caps wiktionary.max_retries.
const MaxFetchRetries = 5

// Validate checks cross-field rules. It does not modify c; Load normalizes
// values before calling it.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if err := c.Wiktionary.validate(); err != nil {
		return fmt.Errorf("wiktionary: %w", err)
	}

	if strings.TrimSpace(c.Parser.DefaultLanguage) == "" {
		return fmt.Errorf("parser.default_language must not be empty")
	}

	if c.Database.Enabled && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required when the database is enabled")
	}

	if c.Cache.Enabled {
		if c.Cache.Addr == "" {
			return fmt.Errorf("cache.addr is required when the cache is enabled")
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be > 0 (got %s)", c.Cache.TTL)
		}
	}

	if c.Lookup.MaxAge < 0 {
		return fmt.Errorf("lookup.max_age must be >= 0 (got %s)", c.Lookup.MaxAge)
	}
	if c.Lookup.Retention <= 0 {
		return fmt.Errorf("lookup.retention must be > 0 (got %s)", c.Lookup.Retention)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

func (w *WiktionaryConfig) validate() error {
	if w.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	u, err := url.Parse(w.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q is not an absolute URL", w.BaseURL)
	}

	if w.MaxRetries < 0 || w.MaxRetries > MaxFetchRetries {
		return fmt.Errorf("max_retries must be in [0, %d] (got %d)", MaxFetchRetries, w.MaxRetries)
	}
	if w.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", w.Timeout)
	}
	return nil
}

// StoreEnabled reports whether parsed lookups are persisted.
func (c *Config) StoreEnabled() bool {
	return c.Database.Enabled && c.Lookup.StoreEnabled
}
