package cli

import (
	"context"
	"strconv"
	"strings"

	"my-admin/internal/domain"
)

// ListCommand handles the log list command
type ListCommand struct {
	app    *App
	ranges rangeFlags
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command. A trailing argument is a case-insensitive
// title filter.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	dateRange, err := c.ranges.resolve(c.app)
	if err != nil {
		return c.app.errorHandler.Handle("list time entries", err)
	}

	entries, err := c.app.services.TimeService.ListEntries(ctx, dateRange)
	if err != nil {
		return c.app.errorHandler.Handle("list time entries", err)
	}

	if len(args) > 0 {
		entries = filterByTitle(entries, strings.Join(args, " "))
	}
	return c.printEntries(entries)
}

func filterByTitle(entries []domain.TimeEntry, text string) []domain.TimeEntry {
	needle := strings.ToLower(text)
	var matched []domain.TimeEntry
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Title), needle) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// printEntries prints one line per entry, newest first:
// id  start  end  duration  [category] title
// A running entry shows the running status in place of its end time.
func (c *ListCommand) printEntries(entries []domain.TimeEntry) error {
	if len(entries) == 0 {
		c.app.println("No time entries found")
		return nil
	}

	c.app.printf("%-5s %-20s %-20s %-10s %s\n", "ID", "Start", "End", "Duration", "Entry")
	c.app.println(c.app.rule("-"))

	total := 0
	for _, entry := range entries {
		id, _ := entry.Identity()
		duration := c.app.services.TimeService.FormatDuration(entry.Minutes())
		if entry.IsRunning() {
			duration = c.app.services.Timer.ElapsedTime()
		}
		c.app.printf("%-5s %-20s %-20s %-10s [%s] %s\n",
			strconv.FormatInt(id, 10),
			c.app.formatTime(entry.StartTime),
			c.app.formatEnd(entry),
			duration,
			entry.Category,
			entry.Title)
		total += entry.Minutes()
	}

	c.app.println(c.app.rule("-"))
	c.app.printf("%d entries, %s recorded\n", len(entries), c.app.services.TimeService.FormatDuration(total))
	return nil
}
