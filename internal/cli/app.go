package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"my-admin/internal/config"
	"my-admin/internal/domain"
	"my-admin/internal/errors"
	"my-admin/internal/logging"
	"my-admin/internal/services"
	"my-admin/internal/validation"
)

// dateTimeLayouts are accepted for --start and --end, tried in order.
var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
}

// App represents the CLI application state shared by every command handler
type App struct {
	services       *services.ServiceContainer
	config         *config.Config
	loc            *time.Location
	entryValidator *validation.TimeEntryValidator
	errorHandler   *ErrorHandler
	out            io.Writer
	in             *bufio.Reader
	logger         *slog.Logger
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(container *services.ServiceContainer, cfg *config.Config, out io.Writer, in io.Reader) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	loc, err := cfg.Location()
	if err != nil {
		loc = time.Local
	}
	return &App{
		services:       container,
		config:         cfg,
		loc:            loc,
		entryValidator: validation.NewTimeEntryValidatorWith(validation.NewValidatorWithConfig(cfg)),
		errorHandler:   NewErrorHandler(),
		out:            out,
		in:             bufio.NewReader(in),
		logger:         logging.WithComponent(nil, logging.ComponentCLI),
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// formatTime renders an instant in the configured zone and display format.
func (a *App) formatTime(t time.Time) string {
	return t.In(a.loc).Format(a.config.Time.DisplayFormat)
}

func (a *App) formatEnd(entry domain.TimeEntry) string {
	if entry.EndTime == nil {
		return a.config.Display.RunningStatus
	}
	return a.formatTime(*entry.EndTime)
}

func (a *App) rule(char string) string {
	return strings.Repeat(char, a.config.Display.SummaryWidth)
}

// readLine reads one trimmed line of user input. End of input yields "".
func (a *App) readLine() string {
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// confirm asks a yes/no question, defaulting to no.
func (a *App) confirm(question string) bool {
	a.printf("%s [y/N]: ", question)
	switch strings.ToLower(a.readLine()) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// parseID parses a positive record id argument.
func parseID(field, value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError(field, value, "must be a positive number")
	}
	return id, nil
}

// firstArg returns args[0], or "" when there are no arguments.
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// errNothingToChange is returned by edit commands given no field flags.
func errNothingToChange() error {
	return errors.NewInvalidInputError("flags", nil, "nothing to change; pass at least one field flag")
}

// parseDate parses a YYYY-MM-DD flag value. Empty means unset.
func parseDate(field, value string) (*domain.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return nil, errors.NewInvalidInputError(field, value, "expected YYYY-MM-DD")
	}
	return &d, nil
}

// parseDateTime parses a wall-clock time in loc using the accepted layouts.
func parseDateTime(field, value string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewInvalidInputError(field, value, "expected YYYY-MM-DD HH:MM")
}

// rangeFlags are the shared date range selectors of reporting and listing commands.
type rangeFlags struct {
	preset    string
	from      string
	to        string
	shorthand string
}

// resolve picks an explicit --from/--to first, then --range, then --preset.
// It returns nil when nothing was selected.
func (f rangeFlags) resolve(app *App) (*services.DateRange, error) {
	if f.from != "" || f.to != "" {
		if f.from == "" || f.to == "" {
			return nil, errors.NewInvalidInputError("range", f.from+".."+f.to, "both --from and --to are required")
		}
		from, err := parseDate("from", f.from)
		if err != nil {
			return nil, err
		}
		to, err := parseDate("to", f.to)
		if err != nil {
			return nil, err
		}
		return &services.DateRange{Start: *from, End: *to}, nil
	}
	if f.shorthand != "" {
		r, err := app.services.TimeService.ParseTimeRange(f.shorthand)
		if err != nil {
			return nil, err
		}
		return &r, nil
	}
	if f.preset != "" {
		r, err := app.services.ReportingService.PresetRange(services.Preset(f.preset))
		if err != nil {
			return nil, errors.NewInvalidInputError("preset", f.preset, "unknown preset")
		}
		return &r, nil
	}
	return nil, nil
}
