package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"
)

// Backend selects the persistence medium.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
	BackendNone   Backend = "none"
)

// Config holds all configuration options for my-admin
type Config struct {
	Storage       StorageConfig
	Time          TimeConfig
	Validation    ValidationConfig
	Display       DisplayConfig
	Application   ApplicationConfig
	Subscriptions SubscriptionsConfig
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	Dir            string        `env:"MYADMIN_DATA_DIR"`
	Filename       string        `env:"MYADMIN_DB_FILENAME"`
	Backend        Backend       `env:"MYADMIN_STORAGE_BACKEND"`
	QueryTimeout   time.Duration `env:"MYADMIN_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"MYADMIN_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"MYADMIN_DB_DIR_PERMISSIONS"`
}

// TimeConfig holds time formatting configuration
type TimeConfig struct {
	DisplayFormat string `env:"MYADMIN_TIME_DISPLAY_FORMAT"`
	// Timezone is an IANA name. Empty means the local zone.
	Timezone string `env:"MYADMIN_TIMEZONE"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength int           `env:"MYADMIN_VALIDATION_TITLE_MIN"`
	TitleMaxLength int           `env:"MYADMIN_VALIDATION_TITLE_MAX"`
	MaxDuration    time.Duration `env:"MYADMIN_VALIDATION_MAX_DURATION"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	SummaryWidth  int    `env:"MYADMIN_DISPLAY_SUMMARY_WIDTH"`
	RunningStatus string `env:"MYADMIN_DISPLAY_RUNNING_STATUS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout       time.Duration `env:"MYADMIN_APP_TIMEOUT"`
	Verbose       bool          `env:"MYADMIN_APP_VERBOSE"`
	WatchInterval time.Duration `env:"MYADMIN_WATCH_INTERVAL"`
}

// SubscriptionsConfig holds subscription reminder configuration
type SubscriptionsConfig struct {
	RenewalWindowDays int `env:"MYADMIN_RENEWAL_WINDOW_DAYS"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Dir:            DefaultDataDir(runtime.GOOS, os.Getenv("APPDATA"), homeDir),
			Filename:       "myadmin.db",
			Backend:        BackendSQLite,
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Time: TimeConfig{
			DisplayFormat: "2006-01-02 15:04:05",
		},
		Validation: ValidationConfig{
			TitleMinLength: 1,
			TitleMaxLength: 255,
			MaxDuration:    24 * time.Hour,
		},
		Display: DisplayConfig{
			SummaryWidth:  75,
			RunningStatus: "running",
		},
		Application: ApplicationConfig{
			Timeout:       60 * time.Second,
			WatchInterval: time.Second,
		},
		Subscriptions: SubscriptionsConfig{
			RenewalWindowDays: 30,
		},
	}
}

// DefaultDataDir returns the per-platform application data directory.
func DefaultDataDir(goos, appData, homeDir string) string {
	switch goos {
	case "windows":
		if appData == "" {
			appData = filepath.Join(homeDir, "AppData", "Roaming")
		}
		return filepath.Join(appData, "myadmin")
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "myadmin")
	default:
		return filepath.Join(homeDir, ".local", "share", "myadmin")
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Time.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Time.Timezone)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	return c.loadFrom(os.LookupEnv)
}

// lookupFunc reports the value of a named variable.
type lookupFunc func(key string) (string, bool)

func (c *Config) loadFrom(lookup lookupFunc) error {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	// Storage configuration
	if dir := get("MYADMIN_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := get("MYADMIN_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if backend := get("MYADMIN_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = Backend(backend)
	}
	if timeout := get("MYADMIN_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Storage.QueryTimeout = ParseDurationWithFallback(timeout, c.Storage.QueryTimeout)
	}
	if timeout := get("MYADMIN_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Storage.WriteTimeout = ParseDurationWithFallback(timeout, c.Storage.WriteTimeout)
	}
	if perms := get("MYADMIN_DB_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Time configuration
	if format := get("MYADMIN_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}
	if tz := get("MYADMIN_TIMEZONE"); tz != "" {
		c.Time.Timezone = tz
	}

	// Validation configuration
	if minLen := get("MYADMIN_VALIDATION_TITLE_MIN"); minLen != "" {
		c.Validation.TitleMinLength = ParseIntWithFallback(minLen, c.Validation.TitleMinLength)
	}
	if maxLen := get("MYADMIN_VALIDATION_TITLE_MAX"); maxLen != "" {
		c.Validation.TitleMaxLength = ParseIntWithFallback(maxLen, c.Validation.TitleMaxLength)
	}
	if maxDur := get("MYADMIN_VALIDATION_MAX_DURATION"); maxDur != "" {
		c.Validation.MaxDuration = ParseDurationWithFallback(maxDur, c.Validation.MaxDuration)
	}

	// Display configuration
	if width := get("MYADMIN_DISPLAY_SUMMARY_WIDTH"); width != "" {
		c.Display.SummaryWidth = ParseIntWithFallback(width, c.Display.SummaryWidth)
	}
	if status := get("MYADMIN_DISPLAY_RUNNING_STATUS"); status != "" {
		c.Display.RunningStatus = status
	}

	// Application configuration
	if timeout := get("MYADMIN_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := get("MYADMIN_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}
	if interval := get("MYADMIN_WATCH_INTERVAL"); interval != "" {
		c.Application.WatchInterval = ParseDurationWithFallback(interval, c.Application.WatchInterval)
	}

	// Subscription configuration
	if days := get("MYADMIN_RENEWAL_WINDOW_DAYS"); days != "" {
		c.Subscriptions.RenewalWindowDays = ParseIntWithFallback(days, c.Subscriptions.RenewalWindowDays)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	switch c.Storage.Backend {
	case BackendSQLite, BackendMemory, BackendNone:
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be one of sqlite, memory, none"}
	}
	if c.Storage.Backend == BackendSQLite {
		if c.Storage.Dir == "" {
			return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
		}
		if c.Storage.Filename == "" {
			return &ConfigError{Field: "storage.filename", Message: "database filename cannot be empty"}
		}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate time configuration
	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}
	if _, err := c.Location(); err != nil {
		return &ConfigError{Field: "time.timezone", Message: "unknown timezone " + strconv.Quote(c.Time.Timezone)}
	}

	// Validate validation configuration
	if c.Validation.TitleMinLength < 1 {
		return &ConfigError{Field: "validation.title_min_length", Message: "title minimum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be greater than minimum length"}
	}
	if c.Validation.MaxDuration <= 0 {
		return &ConfigError{Field: "validation.max_duration", Message: "max duration must be positive"}
	}

	// Validate display configuration
	if c.Display.SummaryWidth < 10 {
		return &ConfigError{Field: "display.summary_width", Message: "summary width must be at least 10"}
	}
	if c.Display.RunningStatus == "" {
		return &ConfigError{Field: "display.running_status", Message: "running status text cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	if c.Application.WatchInterval <= 0 {
		return &ConfigError{Field: "application.watch_interval", Message: "watch interval must be positive"}
	}

	if c.Subscriptions.RenewalWindowDays < 0 {
		return &ConfigError{Field: "subscriptions.renewal_window_days", Message: "renewal window cannot be negative"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
