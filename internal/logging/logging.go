// Package logging configures structured logging for the CLI.
//
// Output goes to stderr through a tint handler so it never mixes with command output.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: warn)
//	MYADMIN_DEBUG: any non-empty value forces debug level
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Field names shared by every component.
const (
	FieldComponent = "component"
	FieldKey       = "key"
	FieldID        = "id"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldCount     = "count"
)

// Component names.
const (
	ComponentStore    = "store"
	ComponentTimer    = "timer"
	ComponentReports  = "reports"
	ComponentSQLite   = "sqlite"
	ComponentCLI      = "cli"
	ComponentServices = "services"
)

// Setup installs a tint handler on stderr as the default logger. The level comes
// from LOG_LEVEL, raised to debug when verbose is set or MYADMIN_DEBUG is present.
func Setup(verbose bool) *slog.Logger {
	level := LevelFromEnv()
	if verbose || DebugEnabled() {
		level = slog.LevelDebug
	}
	return SetupWithLevel(level)
}

// SetupWithLevel installs a tint handler at the given level as the default logger.
func SetupWithLevel(level slog.Level) *slog.Logger {
	logger := New(os.Stderr, level)
	slog.SetDefault(logger)
	return logger
}

// New builds a tint logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(w),
	}))
}

// WithComponent returns logger tagged with the component name. A nil logger
// falls back to slog.Default().
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(FieldComponent, component)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LevelFromEnv reads LOG_LEVEL.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}

// ParseLevel maps a level name to a slog level, defaulting to warn so
// routine commands stay quiet.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
