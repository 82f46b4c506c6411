package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"my-admin/internal/domain"
	"my-admin/internal/logging"
	"my-admin/internal/repository"
	"my-admin/internal/validation"
)

func seedScenario(t *testing.T, container *ServiceContainer, stores *repository.Stores) {
	t.Helper()
	ctx := context.Background()

	for _, e := range []domain.TimeEntry{
		stoppedEntry("design", at(10, 9, 0), 30),
		stoppedEntry("review", at(10, 11, 0), 45),
	} {
		_, err := stores.TimeEntries.Save(ctx, e)
		require.NoError(t, err)
	}
	_, err := container.Timer.Start(ctx, "coding", "Development")
	require.NoError(t, err)

	_, err = container.TaskService.CreateTask(ctx, "Write design doc", nil)
	require.NoError(t, err)
	done, err := container.TaskService.CreateTask(ctx, "Review PR", nil)
	require.NoError(t, err)
	_, err = container.TaskService.ToggleComplete(ctx, *done.ID)
	require.NoError(t, err)

	for _, p := range []domain.SubscriptionPlan{
		planOf("Cloud", 1200, domain.FrequencyYearly),
		planOf("Music", 500, domain.FrequencyMonthly),
	} {
		_, err := container.SubscriptionService.CreateSubscription(ctx, p)
		require.NoError(t, err)
	}
}

func TestReportingService_PeriodStats(t *testing.T) {
	clk := newTestClock(at(10, 14, 0))
	container, stores := newTestContainer(t, clk)
	seedScenario(t, container, stores)

	stats, err := container.ReportingService.PeriodStats(context.Background(), DateRange{Start: march(10), End: march(10)})
	require.NoError(t, err)

	assert.Equal(t, 75, stats.TotalMinutes)
	require.NotNil(t, stats.TodayMinutes)
	assert.Equal(t, 75, *stats.TodayMinutes)
	assert.Equal(t, 2, stats.TotalTasks)
	assert.Equal(t, 1, stats.CompletedTasks)
	assert.InDelta(t, 500.0, stats.MonthlySubscriptionCost, 1e-9)
	assert.InDelta(t, 600.0, stats.MonthlyEquivalentTotal, 1e-9)

	_, err = container.ReportingService.PeriodStats(context.Background(), DateRange{Start: march(11), End: march(10)})
	assert.True(t, validation.IsValidationError(err))
}

func TestReportingService_Dashboard(t *testing.T) {
	clk := newTestClock(at(10, 14, 0))
	container, stores := newTestContainer(t, clk)
	seedScenario(t, container, stores)
	clk.Set(at(10, 15, 2).Add(3 * time.Second))

	dashboard, err := container.ReportingService.Dashboard(context.Background(), DateRange{Start: march(8), End: march(10)})
	require.NoError(t, err)

	assert.Equal(t, 75, dashboard.Stats.TotalMinutes)
	assert.Nil(t, dashboard.Stats.TodayMinutes)
	require.Len(t, dashboard.Series, 3)
	assert.Equal(t, 1.3, dashboard.Series[2].Hours)
	require.NotNil(t, dashboard.Active)
	assert.Equal(t, "coding", dashboard.Active.Title)
	assert.Equal(t, "01:02:03", dashboard.Elapsed)

	_, _, err = container.Timer.Stop(context.Background())
	require.NoError(t, err)

	dashboard, err = container.ReportingService.Dashboard(context.Background(), DateRange{Start: march(10), End: march(10)})
	require.NoError(t, err)
	assert.Nil(t, dashboard.Active)
	assert.Equal(t, "00:00:00", dashboard.Elapsed)
	assert.Equal(t, 137, dashboard.Stats.TotalMinutes)
}

func TestReportingService_DashboardDeadlines(t *testing.T) {
	ctx := context.Background()
	clk := newTestClock(at(10, 14, 0))
	container, _ := newTestContainer(t, clk)

	for i := 0; i < 7; i++ {
		_, err := container.TaskService.CreateTask(ctx, fmt.Sprintf("due in %d", 6-i), datePtr(march(16-i)))
		require.NoError(t, err)
	}
	done, err := container.TaskService.CreateTask(ctx, "finished", datePtr(march(9)))
	require.NoError(t, err)
	_, err = container.TaskService.ToggleComplete(ctx, *done.ID)
	require.NoError(t, err)

	// The range is last month; deadlines still count from today.
	dashboard, err := container.ReportingService.Dashboard(ctx, DateRange{Start: domain.NewDate(2025, time.February, 1), End: domain.NewDate(2025, time.February, 28)})
	require.NoError(t, err)

	require.Len(t, dashboard.Deadlines, DeadlineLimit)
	for i, deadline := range dashboard.Deadlines {
		assert.Equal(t, i, deadline.DaysLeft)
		assert.Equal(t, fmt.Sprintf("due in %d", i), deadline.Task.Title)
	}
	assert.Equal(t, UrgencyImminent, dashboard.Deadlines[0].Urgency)
}

func TestReportingService_UsesConfiguredValidator(t *testing.T) {
	v := validation.NewValidatorWithLimits(validation.Limits{TitleMinLength: 3, TitleMaxLength: 10, MaxDuration: time.Hour})
	svc := NewReportingService(newTestStores(), nil, newTestClock(at(10, 9, 0)), v, time.UTC, logging.Discard())

	_, err := svc.Dashboard(context.Background(), DateRange{Start: march(11), End: march(10)})
	assert.True(t, validation.IsValidationError(err))

	dashboard, err := svc.Dashboard(context.Background(), DateRange{Start: march(10), End: march(11)})
	require.NoError(t, err)
	assert.Empty(t, dashboard.Deadlines)
}

func TestReportingService_ChartSeries(t *testing.T) {
	ctx := context.Background()
	clk := newTestClock(at(20, 9, 0))
	container, stores := newTestContainer(t, clk)
	seedScenario(t, container, stores)

	daily, err := container.ReportingService.ChartSeries(ctx, DateRange{Start: march(10), End: march(12)})
	require.NoError(t, err)
	require.Len(t, daily, 3)

	stats, err := container.ReportingService.PeriodStats(ctx, DateRange{Start: march(10), End: march(12)})
	require.NoError(t, err)
	sum := 0.0
	for _, b := range daily {
		sum += b.Hours
	}
	assert.InDelta(t, float64(stats.TotalMinutes)/60, sum, 0.1*float64(len(daily)))

	weekly, err := container.ReportingService.ChartSeries(ctx, DateRange{Start: march(1), End: march(20)})
	require.NoError(t, err)
	assert.Equal(t, "2/24~", weekly[0].Label)
	assert.Len(t, weekly, 4)
}

func TestReportingService_PresetRange(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		preset   Preset
		expected DateRange
	}{
		{"today", at(12, 9, 0), PresetToday, DateRange{Start: march(12), End: march(12)}},
		{"week", at(12, 9, 0), PresetWeek, DateRange{Start: march(10), End: march(12)}},
		{"week on a sunday", at(16, 9, 0), PresetWeek, DateRange{Start: march(10), End: march(16)}},
		{"month", at(12, 9, 0), PresetMonth, DateRange{Start: march(1), End: march(12)}},
		{"last week", at(12, 9, 0), PresetLastWeek, DateRange{Start: march(3), End: march(9)}},
		{"last month", at(12, 9, 0), PresetLastMonth, DateRange{
			Start: domain.NewDate(2025, time.February, 1),
			End:   domain.NewDate(2025, time.February, 28),
		}},
		{"last month in january", time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC), PresetLastMonth, DateRange{
			Start: domain.NewDate(2024, time.December, 1),
			End:   domain.NewDate(2024, time.December, 31),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewReportingService(newTestStores(), nil, newTestClock(tt.now), nil, time.UTC, logging.Discard())
			got, err := svc.PresetRange(tt.preset)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	svc := NewReportingService(newTestStores(), nil, nil, nil, nil, nil)
	_, err := svc.PresetRange("fortnight")
	assert.Error(t, err)
}

func TestReportingService_LoadFailure(t *testing.T) {
	stores := repository.NewStores(brokenMedium{}, logging.Discard())
	svc := NewReportingService(stores, nil, newTestClock(at(10, 9, 0)), nil, time.UTC, nil)

	_, err := svc.Dashboard(context.Background(), DateRange{Start: march(10), End: march(10)})
	assert.ErrorIs(t, err, errBroken)
}

func TestReportingService_UnavailableStorage(t *testing.T) {
	stores := repository.NewStores(repository.Unavailable(), logging.Discard())
	svc := NewReportingService(stores, nil, newTestClock(at(10, 9, 0)), nil, time.UTC, nil)

	dashboard, err := svc.Dashboard(context.Background(), DateRange{Start: march(10), End: march(10)})
	require.NoError(t, err)
	assert.Zero(t, dashboard.Stats.TotalMinutes)
	assert.Len(t, dashboard.Series, 1)
}

func TestReportingService_StorageInfo(t *testing.T) {
	clk := newTestClock(at(10, 14, 0))
	container, stores := newTestContainer(t, clk)
	seedScenario(t, container, stores)

	info, err := container.ReportingService.StorageInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "memory", info.Backend)
	keys := make([]string, len(info.Collections))
	for i, c := range info.Collections {
		keys[i] = c.Key
		assert.Positive(t, c.Bytes)
	}
	assert.Equal(t, []string{repository.SubscriptionsKey, repository.TimeEntriesKey, repository.TasksKey}, keys)
}

func TestDateRange(t *testing.T) {
	single := DateRange{Start: march(10), End: march(10)}
	assert.True(t, single.IsSingleDay())
	assert.Equal(t, 1, single.Days())
	assert.Equal(t, "2025-03-10", single.String())

	week := DateRange{Start: march(10), End: march(16)}
	assert.False(t, week.IsSingleDay())
	assert.Equal(t, 7, week.Days())
	assert.Equal(t, "2025-03-10 to 2025-03-16", week.String())
}
