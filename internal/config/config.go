// Package config loads the service configuration from the environment and an optional HCL file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

// EnvPrefix is prepended to every environment variable name (ARTICLE_DATABASE_URL, ...).
const EnvPrefix = "ARTICLE"

// DefaultFiles are looked up in order; missing files are skipped.
var DefaultFiles = []string{"./article-desk.hcl", "./article-desk.local.hcl", "/etc/article-desk/config.hcl"}

// Config is the whole service configuration.
type Config struct {
	// HTTP server
	HTTPAddr          string        `hcl:"http_addr" env:"HTTP_ADDR" default:":8080"`
	ReadHeaderTimeout time.Duration `hcl:"read_header_timeout" env:"READ_HEADER_TIMEOUT" default:"10s"`
	ShutdownTimeout   time.Duration `hcl:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" default:"5s"`
	RequestTimeout    time.Duration `hcl:"request_timeout" env:"REQUEST_TIMEOUT" default:"15s"` // 0 disables
	MaxBodyBytes      int64         `hcl:"max_body_bytes" env:"MAX_BODY_BYTES" default:"1048576"`

	// Database
	DatabaseURL       string        `hcl:"database_url" env:"DATABASE_URL"`
	DBMaxOpenConns    int           `hcl:"db_max_open_conns" env:"DB_MAX_OPEN_CONNS" default:"25"`
	DBMaxIdleConns    int           `hcl:"db_max_idle_conns" env:"DB_MAX_IDLE_CONNS" default:"10"`
	DBConnMaxLifetime time.Duration `hcl:"db_conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" default:"1h"`
	DBConnMaxIdleTime time.Duration `hcl:"db_conn_max_idle_time" env:"DB_CONN_MAX_IDLE_TIME" default:"30m"`

	// Logging
	LogLevel  string `hcl:"log_level" env:"LOG_LEVEL" default:"info"`
	LogFormat string `hcl:"log_format" env:"LOG_FORMAT" default:"json"`

	// Media service; an empty base URL disables attachment lookups.
	MediaBaseURL           string        `hcl:"media_base_url" env:"MEDIA_BASE_URL"`
	MediaTimeout           time.Duration `hcl:"media_timeout" env:"MEDIA_TIMEOUT" default:"5s"`
	MediaRequestsPerSecond float64       `hcl:"media_requests_per_second" env:"MEDIA_REQUESTS_PER_SECOND" default:"20"`
	MediaBurst             int           `hcl:"media_burst" env:"MEDIA_BURST" default:"40"`
	MediaMaxAttempts       int           `hcl:"media_max_attempts" env:"MEDIA_MAX_ATTEMPTS" default:"2"`

	// Pagination
	PaginationDefaultLimit int `hcl:"pagination_default_limit" env:"PAGINATION_DEFAULT_LIMIT" default:"20"`
	PaginationMaxLimit     int `hcl:"pagination_max_limit" env:"PAGINATION_MAX_LIMIT" default:"100"`

	Version string `hcl:"version" env:"VERSION" default:"dev"`
}

// Load reads DefaultFiles and the environment.
func Load() (Config, error) {
	return LoadFiles(DefaultFiles...)
}

// LoadFiles reads the given HCL files (later files win) and then the environment,
// which overrides file values. The result is validated.
func LoadFiles(files ...string) (Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix:        EnvPrefix,
		SkipFlags:        true,
		AllowUnknownEnvs: true,
		MergeFiles:       true,
		Files:            files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})

	if err := loader.Load(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("database_url is required"))
	}
	if c.DBMaxOpenConns <= 0 {
		errs = append(errs, errors.New("db_max_open_conns must be positive"))
	}
	if c.DBMaxIdleConns < 0 || c.DBMaxIdleConns > c.DBMaxOpenConns {
		errs = append(errs, errors.New("db_max_idle_conns must be between 0 and db_max_open_conns"))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, errors.New("request_timeout must not be negative"))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", c.LogLevel))
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log_format must be json or text (got %q)", c.LogFormat))
	}
	if c.MediaTimeout <= 0 {
		errs = append(errs, errors.New("media_timeout must be positive"))
	}
	if c.MediaRequestsPerSecond <= 0 || c.MediaBurst <= 0 {
		errs = append(errs, errors.New("media rate limit must be positive"))
	}
	if c.MediaMaxAttempts < 1 {
		errs = append(errs, errors.New("media_max_attempts must be at least 1"))
	}
	if c.PaginationDefaultLimit < 1 || c.PaginationDefaultLimit > c.PaginationMaxLimit {
		errs = append(errs, errors.New("pagination_default_limit must be between 1 and pagination_max_limit"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// MediaEnabled reports whether attachment lookups go to a media service.
func (c Config) MediaEnabled() bool {
	return c.MediaBaseURL != ""
}
