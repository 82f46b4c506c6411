package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"my-admin/internal/clock"
	"my-admin/internal/domain"
	"my-admin/internal/errors"
	"my-admin/internal/logging"
	"my-admin/internal/repository"
	"my-admin/internal/validation"
)

var timeShorthandPattern = regexp.MustCompile(`^(\d+)(mo|m|h|d|w|y)$`)

// timeServiceImpl implements the TimeService interface
type timeServiceImpl struct {
	store              *repository.Store[domain.TimeEntry]
	timer              ActiveTimer
	clock              clock.Clock
	aggregator         Aggregator
	timeEntryValidator *validation.TimeEntryValidator
	logger             *slog.Logger
}

// NewTimeService creates a new TimeService instance. timer may be nil when no
// timer guards the running entry.
func NewTimeService(store *repository.Store[domain.TimeEntry], timer ActiveTimer, clk clock.Clock, v *validation.Validator, loc *time.Location, logger *slog.Logger) TimeService {
	if clk == nil {
		clk = clock.System()
	}
	if v == nil {
		v = validation.NewValidator()
	}
	return &timeServiceImpl{
		store:              store,
		timer:              timer,
		clock:              clk,
		aggregator:         NewAggregator(loc),
		timeEntryValidator: validation.NewTimeEntryValidatorWith(v),
		logger:             logging.WithComponent(logger, logging.ComponentServices),
	}
}

// ListEntries returns entries newest first, optionally limited to a date range.
func (t *timeServiceImpl) ListEntries(ctx context.Context, r *DateRange) ([]domain.TimeEntry, error) {
	entries, err := t.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if r != nil {
		if err := t.timeEntryValidator.ValidateDateRange(r.Start, r.End); err != nil {
			return nil, err
		}
		entries = t.aggregator.FilterByDateRange(entries, r.Start, r.End)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartTime.After(entries[j].StartTime)
	})
	return entries, nil
}

// GetEntry returns the entry with the given identity.
func (t *timeServiceImpl) GetEntry(ctx context.Context, id int64) (domain.TimeEntry, error) {
	if err := t.timeEntryValidator.ValidateTimeEntryID(id); err != nil {
		return domain.TimeEntry{}, err
	}
	entry, found, err := t.store.GetByID(ctx, id)
	if err != nil {
		return domain.TimeEntry{}, err
	}
	if !found {
		return domain.TimeEntry{}, errors.NewNotFoundError("time entry", strconv.FormatInt(id, 10))
	}
	return entry, nil
}

// CreateEntry records a finished block of time.
func (t *timeServiceImpl) CreateEntry(ctx context.Context, title, category string, start, end time.Time) (domain.TimeEntry, error) {
	if err := t.timeEntryValidator.ValidateManualEntry(title, category, start, &end); err != nil {
		return domain.TimeEntry{}, err
	}

	entry := domain.NewTimeEntry(strings.TrimSpace(title), strings.TrimSpace(category), start.UTC()).Stop(end.UTC())
	saved, err := t.store.Save(ctx, entry)
	if err != nil {
		return domain.TimeEntry{}, err
	}

	id, _ := saved.Identity()
	t.logger.Debug("time entry created", logging.FieldID, id, "minutes", saved.Minutes())
	return saved, nil
}

// UpdateEntry replaces a stored entry. Elapsed minutes are recomputed from the
// instants, and an update may not remove the end time.
func (t *timeServiceImpl) UpdateEntry(ctx context.Context, entry domain.TimeEntry) (domain.TimeEntry, error) {
	id, ok := entry.Identity()
	if !ok {
		return domain.TimeEntry{}, errors.NewInvalidInputError("id", nil, "an existing entry is required")
	}
	if err := t.guardRunning("update time entry", id); err != nil {
		return domain.TimeEntry{}, err
	}
	if err := t.timeEntryValidator.ValidateManualEntry(entry.Title, entry.Category, entry.StartTime, entry.EndTime); err != nil {
		return domain.TimeEntry{}, err
	}
	if _, err := t.GetEntry(ctx, id); err != nil {
		return domain.TimeEntry{}, err
	}

	updated := domain.NewTimeEntry(strings.TrimSpace(entry.Title), strings.TrimSpace(entry.Category), entry.StartTime.UTC()).
		WithIdentity(id).
		Stop(entry.EndTime.UTC())
	return t.store.Save(ctx, updated)
}

// DeleteEntry removes a stored entry.
func (t *timeServiceImpl) DeleteEntry(ctx context.Context, id int64) error {
	if err := t.timeEntryValidator.ValidateTimeEntryID(id); err != nil {
		return err
	}
	if err := t.guardRunning("delete time entry", id); err != nil {
		return err
	}

	removed, err := t.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errors.NewNotFoundError("time entry", strconv.FormatInt(id, 10))
	}
	t.logger.Debug("time entry deleted", logging.FieldID, id)
	return nil
}

func (t *timeServiceImpl) guardRunning(operation string, id int64) error {
	if t.timer == nil {
		return nil
	}
	if activeID, running := t.timer.ActiveID(); running && activeID == id {
		return errors.NewConflictError(operation, "the entry is still running; stop the timer first")
	}
	return nil
}

// ParseTimeRange converts a shorthand such as "7d" into the date range ending
// today. Day, week, month and year units cover exactly that many days back,
// today included; minute and hour units start on the day the span begins.
func (t *timeServiceImpl) ParseTimeRange(shorthand string) (DateRange, error) {
	if err := t.timeEntryValidator.ValidateTimeShorthand(shorthand); err != nil {
		return DateRange{}, err
	}

	matches := timeShorthandPattern.FindStringSubmatch(shorthand)
	n, _ := strconv.Atoi(matches[1])
	now := t.clock.Now()
	today := domain.DateOf(now, t.aggregator.loc())

	var start domain.Date
	switch matches[2] {
	case "m":
		start = domain.DateOf(now.Add(-time.Duration(n)*time.Minute), t.aggregator.loc())
	case "h":
		start = domain.DateOf(now.Add(-time.Duration(n)*time.Hour), t.aggregator.loc())
	case "d":
		start = today.AddDays(1 - n)
	case "w":
		start = today.AddDays(1 - 7*n)
	case "mo":
		start = today.AddMonths(-n).AddDays(1)
	case "y":
		start = today.AddMonths(-12 * n).AddDays(1)
	}

	return DateRange{Start: start, End: today}, nil
}

// FormatDuration formats minutes as "Xh Ym", or "Ym" under an hour.
func (t *timeServiceImpl) FormatDuration(minutes int) string {
	return FormatDuration(minutes)
}

// FormatDuration formats minutes as "Xh Ym", or "Ym" under an hour.
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
