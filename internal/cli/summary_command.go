package cli

import (
	"context"
	"math"
	"strings"

	"my-admin/internal/services"
)

// defaultPreset is used when no range flag is given to stats or chart.
const defaultPreset = services.PresetWeek

// StatsCommand handles the stats command
type StatsCommand struct {
	app    *App
	ranges rangeFlags
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{app: app}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	dateRange, err := resolveReportRange(c.app, c.ranges)
	if err != nil {
		return c.app.errorHandler.Handle("show statistics", err)
	}

	dashboard, err := c.app.services.ReportingService.Dashboard(ctx, dateRange)
	if err != nil {
		return c.app.errorHandler.Handle("show statistics", err)
	}
	c.printStats(dateRange, dashboard)
	return nil
}

func (c *StatsCommand) printStats(dateRange services.DateRange, d *services.Dashboard) {
	format := c.app.services.TimeService.FormatDuration
	stats := d.Stats

	title := "Statistics for " + dateRange.String()
	c.app.printf("\n%s\n", title)
	c.app.println(strings.Repeat("=", len(title)))

	c.app.printf("%-24s %s (%d entries)\n", "Tracked time:", format(stats.TotalMinutes), stats.EntryCount)
	if stats.TodayMinutes != nil {
		c.app.printf("%-24s %s\n", "Today:", format(*stats.TodayMinutes))
	}
	c.app.printf("%-24s %d of %d completed (%d in progress)\n", "Tasks:",
		stats.CompletedTasks, stats.TotalTasks, stats.TaskCounts.InProgress)
	c.app.printf("%-24s %d\n", "Subscriptions:", stats.TotalSubscriptions)
	c.app.printf("%-24s %.2f\n", "Monthly plans:", stats.MonthlySubscriptionCost)
	c.app.printf("%-24s %.2f\n", "Monthly equivalent:", stats.MonthlyEquivalentTotal)

	if len(d.Deadlines) > 0 {
		c.app.println(c.app.rule("-"))
		c.app.println("Upcoming deadlines:")
		for _, deadline := range d.Deadlines {
			id, _ := deadline.Task.Identity()
			c.app.printf("  %-13s #%d %s\n", dueLabel(deadline.Urgency, deadline.DaysLeft), id, deadline.Task.Title)
		}
	}

	c.app.println(c.app.rule("-"))
	if d.Active != nil {
		c.app.printf("Running: %s [%s] %s\n", d.Active.Title, d.Active.Category, d.Elapsed)
	} else {
		c.app.println("No timer is running")
	}
}

// ChartCommand handles the chart command
type ChartCommand struct {
	app    *App
	ranges rangeFlags
}

// NewChartCommand creates a new chart command handler
func NewChartCommand(app *App) *ChartCommand {
	return &ChartCommand{app: app}
}

// Execute runs the chart command. Ranges of up to a week are drawn per day,
// longer ranges per week.
func (c *ChartCommand) Execute(ctx context.Context, args []string) error {
	dateRange, err := resolveReportRange(c.app, c.ranges)
	if err != nil {
		return c.app.errorHandler.Handle("draw chart", err)
	}

	series, err := c.app.services.ReportingService.ChartSeries(ctx, dateRange)
	if err != nil {
		return c.app.errorHandler.Handle("draw chart", err)
	}
	c.printChart(dateRange, series)
	return nil
}

// chartLabelWidth leaves room for labels such as "12/31 (Wed)".
const chartLabelWidth = 12

func (c *ChartCommand) printChart(dateRange services.DateRange, series []services.ChartBucket) {
	c.app.printf("Hours tracked, %s\n", dateRange.String())
	c.app.println(c.app.rule("-"))

	peak := 0.0
	for _, bucket := range series {
		peak = math.Max(peak, bucket.Hours)
	}
	barWidth := c.app.config.Display.SummaryWidth - chartLabelWidth - 10
	if barWidth < 1 {
		barWidth = 1
	}

	for _, bucket := range series {
		bar := 0
		if peak > 0 {
			bar = int(math.Round(bucket.Hours / peak * float64(barWidth)))
		}
		c.app.printf("%-*s %s %.1fh\n", chartLabelWidth, bucket.Label, strings.Repeat("#", bar), bucket.Hours)
	}
}

// resolveReportRange applies the range flags, falling back to the current week.
func resolveReportRange(app *App, ranges rangeFlags) (services.DateRange, error) {
	dateRange, err := ranges.resolve(app)
	if err != nil {
		return services.DateRange{}, err
	}
	if dateRange != nil {
		return *dateRange, nil
	}
	return app.services.ReportingService.PresetRange(defaultPreset)
}
