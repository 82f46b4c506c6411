package services

import (
	"fmt"
	"math"
	"time"

	"my-admin/internal/domain"
)

// dailyChartMaxDays is the longest range charted one bar per day.
const dailyChartMaxDays = 7

// Monthly-equivalent factors.
const (
	daysPerMonth  = 30
	weeksPerMonth = 4.33
	monthsPerYear = 12
)

// Aggregator computes derived views over record snapshots. It never touches
// storage. An entry belongs to the calendar day of its start instant in Location.
type Aggregator struct {
	Location *time.Location
}

// NewAggregator returns an aggregator for loc. A nil loc means UTC.
func NewAggregator(loc *time.Location) Aggregator {
	return Aggregator{Location: loc}
}

func (a Aggregator) loc() *time.Location {
	if a.Location == nil {
		return time.UTC
	}
	return a.Location
}

// EntryDate returns the calendar day an entry is counted on.
func (a Aggregator) EntryDate(entry domain.TimeEntry) domain.Date {
	return domain.DateOf(entry.StartTime, a.loc())
}

// DayCount returns the inclusive number of days from start to end. It is zero
// or negative when end precedes start.
func DayCount(start, end domain.Date) int {
	return start.DaysUntil(end) + 1
}

// FilterByDateRange keeps entries whose start day falls within [start, end].
func (a Aggregator) FilterByDateRange(entries []domain.TimeEntry, start, end domain.Date) []domain.TimeEntry {
	filtered := make([]domain.TimeEntry, 0, len(entries))
	for _, entry := range entries {
		day := a.EntryDate(entry)
		if day.Before(start) || day.After(end) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

// PeriodStats totals the minutes of stopped entries in range and counts tasks
// and subscriptions globally.
func (a Aggregator) PeriodStats(entries []domain.TimeEntry, tasks []domain.Task, plans []domain.SubscriptionPlan, start, end domain.Date) PeriodStatistics {
	inRange := a.FilterByDateRange(entries, start, end)

	stats := PeriodStatistics{
		Range:              DateRange{Start: start, End: end},
		TotalMinutes:       sumMinutes(inRange),
		EntryCount:         len(inRange),
		TotalTasks:         len(tasks),
		TotalSubscriptions: len(plans),
	}
	if start == end {
		today := stats.TotalMinutes
		stats.TodayMinutes = &today
	}

	stats.TaskCounts = countTasks(tasks)
	stats.CompletedTasks = stats.TaskCounts.Completed

	for _, plan := range plans {
		if plan.Frequency == domain.FrequencyMonthly {
			stats.MonthlySubscriptionCost += plan.AmountOrZero()
		}
	}
	stats.MonthlyEquivalentTotal = MonthlyEquivalentTotal(plans)

	return stats
}

// ChartSeries buckets tracked hours per day for ranges of up to a week and per
// Monday-to-Sunday week otherwise. Weekly buckets are labelled by their Monday
// but only count days inside the range.
func (a Aggregator) ChartSeries(entries []domain.TimeEntry, start, end domain.Date) []ChartBucket {
	days := DayCount(start, end)
	if days <= 0 {
		return []ChartBucket{}
	}

	byDay := make(map[domain.Date]int)
	for _, entry := range a.FilterByDateRange(entries, start, end) {
		byDay[a.EntryDate(entry)] += entry.Minutes()
	}

	if days <= dailyChartMaxDays {
		series := make([]ChartBucket, 0, days)
		for day := start; !day.After(end); day = day.AddDays(1) {
			series = append(series, ChartBucket{
				Label: dailyLabel(day),
				Hours: RoundHours(byDay[day]),
				Date:  day,
			})
		}
		return series
	}

	var series []ChartBucket
	for weekStart := start.StartOfWeek(); !weekStart.After(end); weekStart = weekStart.AddDays(7) {
		minutes := 0
		for day := weekStart; day.Before(weekStart.AddDays(7)) && !day.After(end); day = day.AddDays(1) {
			minutes += byDay[day]
		}
		series = append(series, ChartBucket{
			Label: weeklyLabel(weekStart),
			Hours: RoundHours(minutes),
			Date:  weekStart,
		})
	}
	return series
}

// RoundHours converts minutes to hours rounded to one decimal place.
func RoundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}

// MonthlyEquivalent normalizes a plan's amount to a 30-day month.
func MonthlyEquivalent(plan domain.SubscriptionPlan) float64 {
	amount := plan.AmountOrZero()
	switch plan.Frequency {
	case domain.FrequencyDaily:
		return amount * daysPerMonth
	case domain.FrequencyWeekly:
		return amount * weeksPerMonth
	case domain.FrequencyMonthly:
		return amount
	case domain.FrequencyYearly:
		return amount / monthsPerYear
	default:
		return 0
	}
}

// MonthlyEquivalentTotal sums MonthlyEquivalent over plans.
func MonthlyEquivalentTotal(plans []domain.SubscriptionPlan) float64 {
	total := 0.0
	for _, plan := range plans {
		total += MonthlyEquivalent(plan)
	}
	return total
}

func sumMinutes(entries []domain.TimeEntry) int {
	total := 0
	for _, entry := range entries {
		total += entry.Minutes()
	}
	return total
}

func countTasks(tasks []domain.Task) TaskCounts {
	var counts TaskCounts
	for _, task := range tasks {
		switch task.Status {
		case domain.TaskStatusPending:
			counts.Pending++
		case domain.TaskStatusInProgress:
			counts.InProgress++
		case domain.TaskStatusCompleted:
			counts.Completed++
		}
	}
	return counts
}

func dailyLabel(day domain.Date) string {
	return fmt.Sprintf("%d/%d (%s)", int(day.Month), day.Day, day.Weekday().String()[:3])
}

func weeklyLabel(weekStart domain.Date) string {
	return fmt.Sprintf("%d/%d~", int(weekStart.Month), weekStart.Day)
}
