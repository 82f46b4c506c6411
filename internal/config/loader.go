package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	envFiles []string
	lookup   lookupFunc
}

// NewLoader creates a new configuration loader reading DefaultEnvFile.
func NewLoader() *Loader {
	return NewLoaderWithEnvFiles(DefaultEnvFile)
}

// NewLoaderWithEnvFiles creates a loader that reads the given dotenv files.
// Missing files are skipped.
func NewLoaderWithEnvFiles(files ...string) *Loader {
	return &Loader{
		config:   NewConfig(),
		envFiles: files,
		lookup:   os.LookupEnv,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with dotenv files
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	fileValues, err := l.readEnvFiles()
	if err != nil {
		return nil, err
	}

	lookup := func(key string) (string, bool) {
		if v, ok := l.lookup(key); ok && v != "" {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	}

	if err := l.config.loadFrom(lookup); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// readEnvFiles merges the dotenv files. Earlier files win, as with godotenv.Load.
func (l *Loader) readEnvFiles() (map[string]string, error) {
	values := make(map[string]string)
	for _, file := range l.envFiles {
		parsed, err := godotenv.Read(file)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, &ConfigError{Field: "env_file", Message: file + ": " + err.Error()}
		}
		for k, v := range parsed {
			if _, exists := values[k]; !exists {
				values[k] = v
			}
		}
	}
	return values, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	config.ApplyOverrides(overrides)

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	DataDir      *string
	DBFilename   *string
	Backend      *string
	QueryTimeout *time.Duration
	WriteTimeout *time.Duration

	// Time overrides
	TimeFormat *string
	Timezone   *string

	// Validation overrides
	TitleMinLength *int
	TitleMaxLength *int
	MaxDuration    *time.Duration

	// Display overrides
	SummaryWidth  *int
	RunningStatus *string

	// Application overrides
	Timeout       *time.Duration
	Verbose       *bool
	WatchInterval *time.Duration

	RenewalWindowDays *int
}

// ApplyOverrides copies every set override into c. A nil overrides is a no-op.
func (c *Config) ApplyOverrides(overrides *ConfigOverrides) {
	if overrides == nil {
		return
	}
	if overrides.DataDir != nil {
		c.Storage.Dir = *overrides.DataDir
	}
	if overrides.DBFilename != nil {
		c.Storage.Filename = *overrides.DBFilename
	}
	if overrides.Backend != nil {
		c.Storage.Backend = Backend(*overrides.Backend)
	}
	if overrides.QueryTimeout != nil {
		c.Storage.QueryTimeout = *overrides.QueryTimeout
	}
	if overrides.WriteTimeout != nil {
		c.Storage.WriteTimeout = *overrides.WriteTimeout
	}

	if overrides.TimeFormat != nil {
		c.Time.DisplayFormat = *overrides.TimeFormat
	}
	if overrides.Timezone != nil {
		c.Time.Timezone = *overrides.Timezone
	}

	if overrides.TitleMinLength != nil {
		c.Validation.TitleMinLength = *overrides.TitleMinLength
	}
	if overrides.TitleMaxLength != nil {
		c.Validation.TitleMaxLength = *overrides.TitleMaxLength
	}
	if overrides.MaxDuration != nil {
		c.Validation.MaxDuration = *overrides.MaxDuration
	}

	if overrides.SummaryWidth != nil {
		c.Display.SummaryWidth = *overrides.SummaryWidth
	}
	if overrides.RunningStatus != nil {
		c.Display.RunningStatus = *overrides.RunningStatus
	}

	if overrides.Timeout != nil {
		c.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		c.Application.Verbose = *overrides.Verbose
	}
	if overrides.WatchInterval != nil {
		c.Application.WatchInterval = *overrides.WatchInterval
	}

	if overrides.RenewalWindowDays != nil {
		c.Subscriptions.RenewalWindowDays = *overrides.RenewalWindowDays
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
