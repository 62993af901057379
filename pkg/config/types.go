package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Catalog      CatalogConfig   `mapstructure:"catalog"`
	Cache        CacheConfig     `mapstructure:"cache"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Logging      LoggingConfig   `mapstructure:"logging"`
	Browser      BrowserConfig   `mapstructure:"browser"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	EnableGzip      bool          `mapstructure:"enable_gzip"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`

	// PruneAfter drops mirror rows not seen for this long; zero keeps them forever
	PruneAfter    time.Duration `mapstructure:"prune_after"`
	PruneInterval time.Duration `mapstructure:"prune_interval"`
}

// CatalogConfig contains upstream podcast catalog settings
type CatalogConfig struct {
	BaseURL        string        `mapstructure:"base_url" validate:"required,url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	RetryAttempts  int           `mapstructure:"retry_attempts" validate:"min=0,max=10"`
	RetryBackoff   time.Duration `mapstructure:"retry_backoff"`
	RateLimit      int           `mapstructure:"rate_limit" validate:"min=0"`
	Burst          int           `mapstructure:"burst" validate:"min=0"`
	DefaultLimit   int           `mapstructure:"default_limit" validate:"min=1,max=100"`
	MaxLimit       int           `mapstructure:"max_limit" validate:"min=1,max=100,gtefield=DefaultLimit"`
	MirrorFallback bool          `mapstructure:"mirror_fallback"`
	UserAgent      string        `mapstructure:"user_agent"`
}

// CacheConfig contains search response cache settings
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	SearchTTL       time.Duration `mapstructure:"search_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RateLimitConfig contains per-client API rate limiting settings
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerSecond int  `mapstructure:"requests_per_second" validate:"min=0"`
	Burst             int  `mapstructure:"burst" validate:"min=0"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json console"`
}

// BrowserConfig contains settings for the terminal browser
type BrowserConfig struct {
	APIURL   string        `mapstructure:"api_url" validate:"required,url"`
	PageSize int           `mapstructure:"page_size" validate:"min=1,max=100"`
	Debounce time.Duration `mapstructure:"debounce"`
	Timeout  time.Duration `mapstructure:"timeout"`
}
