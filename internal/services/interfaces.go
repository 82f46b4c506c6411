package services

import (
	"context"
	"time"

	"my-admin/internal/domain"
	"my-admin/internal/repository"
	"my-admin/internal/timer"
)

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start domain.Date `json:"start"`
	End   domain.Date `json:"end"`
}

// Days returns the inclusive number of days in the range.
func (r DateRange) Days() int {
	return DayCount(r.Start, r.End)
}

// IsSingleDay reports whether the range covers exactly one day.
func (r DateRange) IsSingleDay() bool {
	return r.Start == r.End
}

func (r DateRange) String() string {
	if r.IsSingleDay() {
		return r.Start.String()
	}
	return r.Start.String() + " to " + r.End.String()
}

// Preset names a commonly used reporting range relative to today.
type Preset string

const (
	PresetToday     Preset = "today"
	PresetWeek      Preset = "week"
	PresetMonth     Preset = "month"
	PresetLastWeek  Preset = "last-week"
	PresetLastMonth Preset = "last-month"
)

// Presets lists every preset in display order.
var Presets = []Preset{PresetToday, PresetWeek, PresetMonth, PresetLastWeek, PresetLastMonth}

// TaskCounts holds the number of tasks in each status.
type TaskCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// Total returns the number of tasks counted.
func (c TaskCounts) Total() int {
	return c.Pending + c.InProgress + c.Completed
}

// PeriodStatistics summarizes a date range. Only the time totals are scoped
// to the range; task and subscription figures cover every record.
type PeriodStatistics struct {
	Range                   DateRange  `json:"range"`
	TotalMinutes            int        `json:"total_minutes"`
	TodayMinutes            *int       `json:"today_minutes,omitempty"`
	EntryCount              int        `json:"entry_count"`
	TotalTasks              int        `json:"total_tasks"`
	CompletedTasks          int        `json:"completed_tasks"`
	TaskCounts              TaskCounts `json:"task_counts"`
	TotalSubscriptions      int        `json:"total_subscriptions"`
	MonthlySubscriptionCost float64    `json:"monthly_subscription_cost"`
	MonthlyEquivalentTotal  float64    `json:"monthly_equivalent_total"`
}

// ChartBucket is one day or one week of tracked hours.
type ChartBucket struct {
	Label string      `json:"label"`
	Hours float64     `json:"hours"`
	Date  domain.Date `json:"date"`
}

// Dashboard is everything the overview screen shows for a range.
// Deadlines are relative to today, not to the range.
type Dashboard struct {
	Stats     PeriodStatistics  `json:"stats"`
	Series    []ChartBucket     `json:"series"`
	Deadlines []Deadline        `json:"deadlines"`
	Active    *domain.TimeEntry `json:"active,omitempty"`
	Elapsed   string            `json:"elapsed"`
}

// CostSummary totals subscription spending normalized to a month.
type CostSummary struct {
	Count   int     `json:"count"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// Urgency classifies how close a renewal or a due date is.
type Urgency string

const (
	UrgencyNone     Urgency = "none"
	UrgencyOverdue  Urgency = "overdue"
	UrgencyImminent Urgency = "imminent"
	UrgencySoon     Urgency = "soon"
	UrgencyUpcoming Urgency = "upcoming"
	UrgencyLater    Urgency = "later"
)

// Task due date thresholds in days.
const (
	imminentDays = 1
	dueSoonDays  = 3
)

// Dashboard deadline defaults: open tasks due within a week, five at most.
const (
	DeadlineWindowDays = 7
	DeadlineLimit      = 5
)

// Deadline is an open task with a due date and the days left until it.
type Deadline struct {
	Task     domain.Task `json:"task"`
	DaysLeft int         `json:"days_left"`
	Urgency  Urgency     `json:"urgency"`
}

// Renewal is a subscription with a renewal date and the days left until it.
type Renewal struct {
	Plan     domain.SubscriptionPlan `json:"plan"`
	DaysLeft int                     `json:"days_left"`
	Urgency  Urgency                 `json:"urgency"`
}

// ActiveTimer is the view of the timer the services need.
type ActiveTimer interface {
	Active() (domain.TimeEntry, bool)
	ActiveID() (int64, bool)
	ElapsedTime() string
}

// TimeService manages recorded time entries outside the running timer.
type TimeService interface {
	// Listing and lookup
	ListEntries(ctx context.Context, r *DateRange) ([]domain.TimeEntry, error)
	GetEntry(ctx context.Context, id int64) (domain.TimeEntry, error)

	// Manual edits. The running entry belongs to the timer and is refused.
	CreateEntry(ctx context.Context, title, category string, start, end time.Time) (domain.TimeEntry, error)
	UpdateEntry(ctx context.Context, entry domain.TimeEntry) (domain.TimeEntry, error)
	DeleteEntry(ctx context.Context, id int64) error

	// Time helpers
	ParseTimeRange(shorthand string) (DateRange, error)
	FormatDuration(minutes int) string
}

// TaskService handles the to-do list.
type TaskService interface {
	CreateTask(ctx context.Context, title string, due *domain.Date) (domain.Task, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	ListTasks(ctx context.Context, status *domain.TaskStatus) ([]domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	SetStatus(ctx context.Context, id int64, status domain.TaskStatus) (domain.Task, error)
	ToggleComplete(ctx context.Context, id int64) (domain.Task, error)
	ToggleWork(ctx context.Context, id int64) (domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (TaskCounts, error)
	UpcomingDeadlines(ctx context.Context, windowDays, limit int) ([]Deadline, error)
	DueUrgency(task domain.Task) (Urgency, int)
}

// SubscriptionService handles the subscription ledger.
type SubscriptionService interface {
	CreateSubscription(ctx context.Context, plan domain.SubscriptionPlan) (domain.SubscriptionPlan, error)
	GetSubscription(ctx context.Context, id int64) (domain.SubscriptionPlan, error)
	ListSubscriptions(ctx context.Context) ([]domain.SubscriptionPlan, error)
	UpdateSubscription(ctx context.Context, plan domain.SubscriptionPlan) (domain.SubscriptionPlan, error)
	DeleteSubscription(ctx context.Context, id int64) error
	CostSummary(ctx context.Context) (CostSummary, error)
	UpcomingRenewals(ctx context.Context, windowDays int) ([]Renewal, error)
	Urgency(plan domain.SubscriptionPlan) (Urgency, int)
}

// ReportingService produces derived views across all record kinds.
type ReportingService interface {
	PeriodStats(ctx context.Context, r DateRange) (PeriodStatistics, error)
	ChartSeries(ctx context.Context, r DateRange) ([]ChartBucket, error)
	Dashboard(ctx context.Context, r DateRange) (*Dashboard, error)
	PresetRange(p Preset) (DateRange, error)
	StorageInfo(ctx context.Context) (repository.StorageInfo, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TimeService         TimeService
	TaskService         TaskService
	SubscriptionService SubscriptionService
	ReportingService    ReportingService
	Timer               *timer.Machine
}
