package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"my-admin/internal/clock"
	"my-admin/internal/domain"
	"my-admin/internal/logging"
	"my-admin/internal/repository"
	"my-admin/internal/validation"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	stores     *repository.Stores
	timer      ActiveTimer
	clock      clock.Clock
	aggregator Aggregator
	validator  *validation.TimeEntryValidator
	logger     *slog.Logger
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(stores *repository.Stores, timer ActiveTimer, clk clock.Clock, v *validation.Validator, loc *time.Location, logger *slog.Logger) ReportingService {
	if clk == nil {
		clk = clock.System()
	}
	if v == nil {
		v = validation.NewValidator()
	}
	return &reportingServiceImpl{
		stores:     stores,
		timer:      timer,
		clock:      clk,
		aggregator: NewAggregator(loc),
		validator:  validation.NewTimeEntryValidatorWith(v),
		logger:     logging.WithComponent(logger, logging.ComponentReports),
	}
}

// snapshot is one consistent-enough read of every collection.
type snapshot struct {
	entries []domain.TimeEntry
	tasks   []domain.Task
	plans   []domain.SubscriptionPlan
}

// load reads the three collections concurrently. Each store reads under its own key.
func (r *reportingServiceImpl) load(ctx context.Context) (*snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, err := r.stores.TimeEntries.GetAll(gctx)
		snap.entries = entries
		return err
	})
	g.Go(func() error {
		tasks, err := r.stores.Tasks.GetAll(gctx)
		snap.tasks = tasks
		return err
	})
	g.Go(func() error {
		plans, err := r.stores.Subscriptions.GetAll(gctx)
		snap.plans = plans
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	r.logger.Debug("loaded snapshot",
		"entries", len(snap.entries), "tasks", len(snap.tasks), "subscriptions", len(snap.plans))
	return &snap, nil
}

// PeriodStats computes statistics for the range.
func (r *reportingServiceImpl) PeriodStats(ctx context.Context, dr DateRange) (PeriodStatistics, error) {
	if err := r.validator.ValidateDateRange(dr.Start, dr.End); err != nil {
		return PeriodStatistics{}, err
	}
	snap, err := r.load(ctx)
	if err != nil {
		return PeriodStatistics{}, err
	}
	return r.aggregator.PeriodStats(snap.entries, snap.tasks, snap.plans, dr.Start, dr.End), nil
}

// ChartSeries buckets tracked hours over the range.
func (r *reportingServiceImpl) ChartSeries(ctx context.Context, dr DateRange) ([]ChartBucket, error) {
	if err := r.validator.ValidateDateRange(dr.Start, dr.End); err != nil {
		return nil, err
	}
	entries, err := r.stores.TimeEntries.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return r.aggregator.ChartSeries(entries, dr.Start, dr.End), nil
}

// Dashboard combines statistics, chart, deadlines and the running timer from one snapshot.
func (r *reportingServiceImpl) Dashboard(ctx context.Context, dr DateRange) (*Dashboard, error) {
	if err := r.validator.ValidateDateRange(dr.Start, dr.End); err != nil {
		return nil, err
	}
	snap, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	today := domain.DateOf(r.clock.Now(), r.aggregator.loc())
	dashboard := &Dashboard{
		Stats:     r.aggregator.PeriodStats(snap.entries, snap.tasks, snap.plans, dr.Start, dr.End),
		Series:    r.aggregator.ChartSeries(snap.entries, dr.Start, dr.End),
		Deadlines: upcomingDeadlines(snap.tasks, today, DeadlineWindowDays, DeadlineLimit),
		Elapsed:   "00:00:00",
	}
	if r.timer != nil {
		if active, running := r.timer.Active(); running {
			dashboard.Active = &active
			dashboard.Elapsed = r.timer.ElapsedTime()
		}
	}
	return dashboard, nil
}

// PresetRange resolves a preset against today.
func (r *reportingServiceImpl) PresetRange(p Preset) (DateRange, error) {
	today := domain.DateOf(r.clock.Now(), r.aggregator.loc())
	weekStart := today.StartOfWeek()
	monthStart := domain.NewDate(today.Year, today.Month, 1)

	switch p {
	case PresetToday:
		return DateRange{Start: today, End: today}, nil
	case PresetWeek:
		return DateRange{Start: weekStart, End: today}, nil
	case PresetMonth:
		return DateRange{Start: monthStart, End: today}, nil
	case PresetLastWeek:
		return DateRange{Start: weekStart.AddDays(-7), End: weekStart.AddDays(-1)}, nil
	case PresetLastMonth:
		return DateRange{Start: domain.NewDate(today.Year, today.Month-1, 1), End: monthStart.AddDays(-1)}, nil
	default:
		return DateRange{}, fmt.Errorf("unknown preset %q: expected one of %v", p, Presets)
	}
}

// StorageInfo describes the medium behind every store.
func (r *reportingServiceImpl) StorageInfo(ctx context.Context) (repository.StorageInfo, error) {
	return r.stores.Describe(ctx)
}
