package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// DebugEnabled returns true if debug mode is enabled via the MYADMIN_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("MYADMIN_DEBUG") != ""
}

// Debugf logs a formatted debug message on the default logger only if debug mode is enabled
func Debugf(format string, args ...any) {
	if DebugEnabled() {
		slog.Debug(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
	}
}

// Debugln logs its arguments, space separated, on the default logger only if debug mode is enabled
func Debugln(args ...any) {
	if DebugEnabled() {
		slog.Debug(strings.TrimRight(fmt.Sprintln(args...), "\n"))
	}
}
