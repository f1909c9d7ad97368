package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	Parser     ParserConfig     `yaml:"parser"`
	Wiktionary WiktionaryConfig `yaml:"wiktionary"`
	Cache      CacheConfig      `yaml:"cache"`
	Database   DatabaseConfig   `yaml:"database"`
	Lookup     LookupConfig     `yaml:"lookup"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-client request limits for the lookup API.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"60"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ParserConfig holds page parsing settings.
type ParserConfig struct {
	// DefaultLanguage is the language section read when a request names none.
	DefaultLanguage string `yaml:"default_language" env:"PARSER_DEFAULT_LANGUAGE" env-default:"english"`
}

// WiktionaryConfig holds settings for fetching rendered pages.
type WiktionaryConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"WIKTIONARY_BASE_URL"    env-default:"https://en.wiktionary.org/wiki"`
	UserAgent  string        `yaml:"user_agent"  env:"WIKTIONARY_USER_AGENT"  env-default:"wikiparse/1.0"`
	Timeout    time.Duration `yaml:"timeout"     env:"WIKTIONARY_TIMEOUT"     env-default:"10s"`
	MaxRetries int           `yaml:"max_retries" env:"WIKTIONARY_MAX_RETRIES" env-default:"2"`
	RetryDelay time.Duration `yaml:"retry_delay" env:"WIKTIONARY_RETRY_DELAY" env-default:"500ms"`
	Printable  bool          `yaml:"printable"   env:"WIKTIONARY_PRINTABLE"   env-default:"true"`
}

// CacheConfig holds Redis page cache settings.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"CACHE_ENABLED"  env-default:"false"`
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	TTL      time.Duration `yaml:"ttl"      env:"CACHE_TTL"      env-default:"24h"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Enabled         bool          `yaml:"enabled"            env:"DATABASE_ENABLED"            env-default:"false"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// LookupConfig holds lookup service settings.
type LookupConfig struct {
	// StoreEnabled saves parsed results and serves repeat lookups from the
	// database. Requires database.enabled.
	StoreEnabled bool `yaml:"store_enabled" env:"LOOKUP_STORE_ENABLED" env-default:"true"`
	// MaxAge is how long a stored result is served before the page is parsed again.
	MaxAge time.Duration `yaml:"max_age" env:"LOOKUP_MAX_AGE" env-default:"168h"`
	// Retention is how long stored results are kept before cleanup removes them.
	Retention time.Duration `yaml:"retention" env:"LOOKUP_RETENTION" env-default:"720h"`
}
