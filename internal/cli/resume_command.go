package cli

import (
	"context"
	"strconv"
	"strings"

	"my-admin/internal/domain"
	"my-admin/internal/errors"
	"my-admin/internal/services"
)

// ResumeCommand handles the resume command
type ResumeCommand struct {
	app *App
}

// NewResumeCommand creates a new resume command handler
func NewResumeCommand(app *App) *ResumeCommand {
	return &ResumeCommand{app: app}
}

// Execute runs the resume command
func (c *ResumeCommand) Execute(ctx context.Context, args []string) error {
	return c.resumeEntry(ctx, args)
}

// resumeEntry offers the recent title and category pairs, most recent first,
// and starts a new timer for the chosen one. The optional argument is a time
// shorthand; the default is today.
func (c *ResumeCommand) resumeEntry(ctx context.Context, args []string) error {
	var (
		dateRange services.DateRange
		err       error
	)
	if len(args) > 0 {
		dateRange, err = c.app.services.TimeService.ParseTimeRange(args[0])
	} else {
		dateRange, err = c.app.services.ReportingService.PresetRange(services.PresetToday)
	}
	if err != nil {
		return c.app.errorHandler.Handle("resume timer", err)
	}

	entries, err := c.app.services.TimeService.ListEntries(ctx, &dateRange)
	if err != nil {
		return c.app.errorHandler.Handle("resume timer", err)
	}

	candidates := distinctRecent(entries)
	if len(candidates) == 0 {
		c.app.println("No entries found in the selected period.")
		return nil
	}

	c.app.println("Select an entry to resume:")
	for i, entry := range candidates {
		c.app.printf("%d. %s [%s] (last worked: %s)\n", i+1, entry.Title, entry.Category, c.app.formatTime(entry.StartTime))
	}
	c.app.printf("Enter number to resume, or 'q' to quit: ")

	input := c.app.readLine()
	if strings.EqualFold(input, "q") {
		c.app.println("Resume cancelled.")
		return nil
	}
	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > len(candidates) {
		return errors.NewInvalidInputError("selection", input, "invalid selection")
	}
	selected := candidates[idx-1]

	entry, err := c.app.services.Timer.Start(ctx, selected.Title, selected.Category)
	if err != nil {
		return c.app.errorHandler.Handle("resume timer", err)
	}
	c.app.printf("Resumed: %s [%s]\n", entry.Title, entry.Category)
	return nil
}

// distinctRecent keeps the first entry of every title and category pair.
// entries are expected newest first.
func distinctRecent(entries []domain.TimeEntry) []domain.TimeEntry {
	type key struct{ title, category string }
	seen := make(map[key]bool)
	var result []domain.TimeEntry
	for _, entry := range entries {
		k := key{entry.Title, entry.Category}
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, entry)
	}
	return result
}
