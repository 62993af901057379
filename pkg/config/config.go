package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides (PODCAST_SERVER_PORT, ...)
const EnvPrefix = "PODCAST"

// DefaultCatalogURL is the public mock catalog used when none is configured
const DefaultCatalogURL = "https://601f1754b5a0e9001706a292.mockapi.io/podcasts"

var (
	once    sync.Once
	initErr error

	validate = validator.New()
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load("./config/settings.yaml", ".env")
	})

	return initErr
}

// Reset clears the one-shot guard and viper state (for tests)
func Reset() {
	once = sync.Once{}
	initErr = nil
	viper.Reset()
}

func load(configPath, envFile string) error {
	setDefaults()

	// .env is optional; variables already set in the environment win
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading env file %s: %w", envFile, err)
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configPath = filepath.Clean(configPath)
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	cfg, err := GetConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// Validate checks struct tags and cross-field rules
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return err
	}

	if c.Catalog.Timeout < 0 || c.Browser.Timeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	if c.Database.PruneAfter < 0 {
		return fmt.Errorf("database prune_after must not be negative")
	}
	if c.Database.PruneAfter > 0 && c.Database.PruneInterval <= 0 {
		return fmt.Errorf("database prune_interval must be positive when pruning is enabled")
	}
	if c.Browser.Debounce < 0 {
		return fmt.Errorf("browser debounce must not be negative")
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.enable_gzip", true)

	// Database defaults (empty path disables the mirror)
	viper.SetDefault("database.path", "./data/podcasts.db")
	viper.SetDefault("database.verbose", false)
	viper.SetDefault("database.prune_after", 30*24*time.Hour)
	viper.SetDefault("database.prune_interval", time.Hour)

	// Catalog defaults
	viper.SetDefault("catalog.base_url", DefaultCatalogURL)
	viper.SetDefault("catalog.timeout", 10*time.Second)
	viper.SetDefault("catalog.retry_attempts", 3)
	viper.SetDefault("catalog.retry_backoff", 500*time.Millisecond)
	viper.SetDefault("catalog.rate_limit", 10)
	viper.SetDefault("catalog.burst", 5)
	viper.SetDefault("catalog.default_limit", 10)
	viper.SetDefault("catalog.max_limit", 100)
	viper.SetDefault("catalog.mirror_fallback", true)
	viper.SetDefault("catalog.user_agent", "PodcastSearch/1.0")

	// Cache defaults
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.search_ttl", 5*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 10)
	viper.SetDefault("rate_limiting.burst", 20)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")

	// Browser defaults
	viper.SetDefault("browser.api_url", "http://localhost:8080")
	viper.SetDefault("browser.page_size", 10)
	viper.SetDefault("browser.debounce", 500*time.Millisecond)
	viper.SetDefault("browser.timeout", 15*time.Second)
}
